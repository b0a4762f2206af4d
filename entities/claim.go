package entities

import (
	"time"
)

const (
	ClaimStatusPending   = "Pending"
	ClaimStatusCompleted = "Completed"
	ClaimStatusCancelled = "Cancelled"
)

// Claim.FoodID has no database foreign key: deleting a listing leaves its
// claims in place.
type Claim struct {
	ClaimID    uint       `gorm:"column:claim_id;primaryKey;autoIncrement:false" json:"claim_id"`
	FoodID     uint       `gorm:"column:food_id;index" json:"food_id"`
	ReceiverID uint       `gorm:"column:receiver_id;index" json:"receiver_id"`
	Status     string     `gorm:"column:status" json:"status"` // Pending, Completed, Cancelled
	Timestamp  *time.Time `gorm:"column:timestamp" json:"timestamp,omitempty"`
}

func (Claim) TableName() string {
	return "claims"
}
