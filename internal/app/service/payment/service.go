package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nyumbani/rentals/internal/models"
	"github.com/nyumbani/rentals/internal/platform/mail"
	"github.com/nyumbani/rentals/internal/platform/mpesa"
	"github.com/nyumbani/rentals/pkg/config"
	"github.com/nyumbani/rentals/pkg/types"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidStatus   = errors.New("invalid payment status")
	ErrGateway         = errors.New("payment gateway error")
)

// CallbackRequest is the notification relayed from the gateway. Fields map
// the Daraja STK callback after flattening by the relay.
type CallbackRequest struct {
	BookingID       uint            `json:"booking_id"`
	Email           string          `json:"email"`
	ResultCode      int             `json:"result_code"`
	ResultDesc      string          `json:"result_desc"`
	Amount          decimal.Decimal `json:"amount"`
	MpesaReceipt    string          `json:"mpesa_receipt"`
	PhoneNumber     string          `json:"phone_number"`
	TransactionDate string          `json:"transaction_date"`
	RawCallback     json.RawMessage `json:"raw_callback"`
}

// ReconcileResult summarizes one processed notification.
type ReconcileResult struct {
	BookingStatus types.BookingStatus `json:"booking_status"`
	Payment       *models.Payment     `json:"payment"`
	Duplicate     bool                `json:"duplicate"`

	booking *models.Booking
}

type CreateRequest struct {
	BookingID uint            `json:"booking_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"payment_status"`
}

type CheckoutRequest struct {
	BookingID   uint   `json:"booking_id" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// Manager records payments: direct inserts, STK push initiation and the
// callback reconciliation flow.
type Manager interface {
	Reconcile(ctx context.Context, req *CallbackRequest) (*ReconcileResult, error)
	Create(ctx context.Context, req *CreateRequest) (*models.Payment, error)
	InitiateCheckout(ctx context.Context, req *CheckoutRequest) (*models.Payment, error)
}

// Gateway is the outbound side of the payment provider.
type Gateway interface {
	InitiateSTKPush(ctx context.Context, req *mpesa.STKPushRequest) (*mpesa.STKPushResult, error)
}

// Mailer delivers the booking confirmation after a successful reconcile.
type Mailer interface {
	SendBookingConfirmation(to, propertyName, bookingDate string) error
}

type Service struct {
	cfg     *config.Config
	db      *gorm.DB
	log     *zap.SugaredLogger
	gateway Gateway
	mailer  Mailer
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger, client *mpesa.Client, mailer *mail.Client) Manager {
	s := &Service{cfg: cfg, db: db, log: log, gateway: client}
	if mailer.Enabled() {
		s.mailer = mailer
	}
	return s
}

// Create inserts a payment row directly, without touching the booking.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*models.Payment, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", req.BookingID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check booking: %w", err)
	}
	if count == 0 {
		return nil, ErrBookingNotFound
	}

	status := types.PaymentStatusPending
	if req.Status != "" {
		status = types.PaymentStatus(req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
		}
	}
	row := &models.Payment{
		BookingID: &req.BookingID,
		Amount:    req.Amount,
		Status:    status,
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return row, nil
}
