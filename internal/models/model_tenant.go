package models

import "time"

// Tenant is provisioned automatically when an account registers with the
// tenant role. The account link is optional: walk-in tenants created through
// the public endpoint have no user behind them.
type Tenant struct {
	ID          uint         `gorm:"column:id;primary_key" json:"id"`
	UserID      *uint        `gorm:"column:user_id;uniqueIndex" json:"user_id"`
	User        *UserAccount `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PhoneNumber string       `gorm:"column:phone_number;type:varchar(20)" json:"phone_number"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (Tenant) TableName() string { return "tenant" }
