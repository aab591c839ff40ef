package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/nyumbani/rentals/pkg/types"
)

// Booking links a tenant to a property for a date. Email may duplicate the
// tenant's account email; the callback flow uses it as a secondary match key.
type Booking struct {
	ID          uint                `gorm:"column:id;primary_key" json:"id"`
	TenantID    uint                `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	Tenant      *Tenant             `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	PropertyID  uint                `gorm:"column:property_id;not null;index" json:"property_id"`
	Property    *Property           `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	BookingDate datatypes.Date      `gorm:"column:booking_date;not null" json:"booking_date"`
	Email       string              `gorm:"column:email;type:varchar(254);not null" json:"email"`
	Status      types.BookingStatus `gorm:"column:status;type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func (Booking) TableName() string { return "booking" }
