package entities

import (
	"time"
)

type FoodListing struct {
	FoodID       uint       `gorm:"column:food_id;primaryKey;autoIncrement" json:"food_id"`
	FoodName     string     `gorm:"column:food_name" json:"food_name"`
	Quantity     int        `gorm:"column:quantity" json:"quantity"`
	ExpiryDate   *time.Time `gorm:"column:expiry_date;type:date" json:"expiry_date,omitempty"`
	ProviderID   uint       `gorm:"column:provider_id;index" json:"provider_id"`
	ProviderType string     `gorm:"column:provider_type" json:"provider_type"`
	City         string     `gorm:"column:city;index" json:"city"`
	FoodType     string     `gorm:"column:food_type" json:"food_type"`
	MealType     string     `gorm:"column:meal_type" json:"meal_type"`

	Provider *Provider `gorm:"foreignKey:ProviderID;references:ProviderID" json:"-"`
}

func (FoodListing) TableName() string {
	return "food_listings"
}
