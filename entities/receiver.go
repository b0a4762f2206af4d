package entities

type Receiver struct {
	ReceiverID uint   `gorm:"column:receiver_id;primaryKey;autoIncrement:false" json:"receiver_id"`
	Name       string `gorm:"column:name" json:"name"`
	Type       string `gorm:"column:type" json:"type"`
	City       string `gorm:"column:city;index" json:"city"`
	Contact    string `gorm:"column:contact" json:"contact"`

	Claims []*Claim `gorm:"foreignKey:ReceiverID;references:ReceiverID" json:"-"`
}

func (Receiver) TableName() string {
	return "receivers"
}
