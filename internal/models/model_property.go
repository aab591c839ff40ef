package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property is owned by its landlord account. Only approved rows are visible
// in the public listing; approval is an admin action.
type Property struct {
	ID            uint            `gorm:"column:id;primary_key" json:"id"`
	Name          string          `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description   string          `gorm:"column:description;type:text" json:"description"`
	PricePerMonth decimal.Decimal `gorm:"column:price_per_month;type:numeric(10,2);not null" json:"price_per_month"`
	ImageURL      string          `gorm:"column:image_url;type:varchar(200)" json:"image_url"`
	LandlordID    *uint           `gorm:"column:landlord_id;index" json:"landlord_id"`
	Landlord      *UserAccount    `gorm:"foreignKey:LandlordID" json:"-"`
	Approved      bool            `gorm:"column:approved;not null;default:false" json:"approved"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Property) TableName() string { return "property" }
