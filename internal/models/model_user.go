package models

import (
	"time"

	"github.com/nyumbani/rentals/pkg/types"
)

type UserAccount struct {
	ID           uint      `gorm:"column:id;primary_key" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	FirstName    string    `gorm:"column:first_name;type:varchar(150)" json:"first_name"`
	LastName     string    `gorm:"column:last_name;type:varchar(150)" json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (UserAccount) TableName() string { return "user_account" }

// UserProfile carries the account role. Exactly one profile exists per
// account; provisioning creates it in the same transaction as the account.
type UserProfile struct {
	ID        uint        `gorm:"column:id;primary_key" json:"id"`
	UserID    uint        `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	User      UserAccount `gorm:"foreignKey:UserID" json:"-"`
	Role      types.Role  `gorm:"column:role;type:varchar(20);not null;default:'tenant'" json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profile" }
