package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/nyumbani/rentals/pkg/types"
)

// Payment is an append-only record of one gateway interaction. Rows are
// never mutated after insert; repeated callbacks for the same receipt are
// deduplicated by the unique (booking_id, mpesa_receipt) index.
type Payment struct {
	ID                uint                `gorm:"column:id;primary_key" json:"id"`
	BookingID         *uint               `gorm:"column:booking_id;index;uniqueIndex:uniq_booking_receipt,priority:1" json:"booking_id"`
	Booking           *Booking            `gorm:"foreignKey:BookingID" json:"-"`
	Amount            decimal.Decimal     `gorm:"column:amount;type:numeric(10,2);not null" json:"amount"`
	PaymentDate       time.Time           `gorm:"column:payment_date;autoCreateTime" json:"payment_date"`
	Status            types.PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'Pending'" json:"payment_status"`
	MpesaReceipt      *string             `gorm:"column:mpesa_receipt;type:varchar(64);uniqueIndex:uniq_booking_receipt,priority:2" json:"mpesa_receipt"`
	CheckoutRequestID string              `gorm:"column:checkout_request_id;type:varchar(64)" json:"checkout_request_id"`
	PhoneNumber       string              `gorm:"column:phone_number;type:varchar(20)" json:"phone_number"`
	ResultCode        int                 `gorm:"column:result_code" json:"result_code"`
	ResultDesc        string              `gorm:"column:result_desc;type:varchar(255)" json:"result_desc"`
	TransactionTime   *time.Time          `gorm:"column:transaction_time" json:"transaction_time"`
	RawCallback       datatypes.JSON      `gorm:"column:raw_callback;type:jsonb" json:"raw_callback"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func (Payment) TableName() string { return "payment" }
