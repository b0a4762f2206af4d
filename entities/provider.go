package entities

type Provider struct {
	ProviderID uint   `gorm:"column:provider_id;primaryKey;autoIncrement:false" json:"provider_id"`
	Name       string `gorm:"column:name" json:"name"`
	Type       string `gorm:"column:type" json:"type"`
	Address    string `gorm:"column:address" json:"address"`
	City       string `gorm:"column:city;index" json:"city"`
	Contact    string `gorm:"column:contact" json:"contact"`
}

func (Provider) TableName() string {
	return "providers"
}
