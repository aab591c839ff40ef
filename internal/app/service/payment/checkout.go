package payment

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nyumbani/rentals/internal/models"
	"github.com/nyumbani/rentals/internal/platform/mpesa"
	"github.com/nyumbani/rentals/pkg/logctx"
	"github.com/nyumbani/rentals/pkg/tool"
	"github.com/nyumbani/rentals/pkg/types"
)

// InitiateCheckout asks the gateway to prompt the customer's phone for the
// property's monthly price and records a pending payment carrying the
// checkout request id. The outcome arrives later on the callback endpoint.
func (s *Service) InitiateCheckout(ctx context.Context, req *CheckoutRequest) (*models.Payment, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).Preload("Property").First(&booking, req.BookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if booking.Property == nil {
		return nil, fmt.Errorf("booking %d has no property", booking.ID)
	}

	amount := booking.Property.PricePerMonth
	push, err := s.gateway.InitiateSTKPush(ctx, &mpesa.STKPushRequest{
		PhoneNumber:      req.PhoneNumber,
		Amount:           amount,
		AccountReference: fmt.Sprintf("booking-%d-%s", booking.ID, tool.GenerateUUIDV7()),
		Description:      "Payment for property booking",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	row := &models.Payment{
		BookingID:         &booking.ID,
		Amount:            amount,
		Status:            types.PaymentStatusPending,
		PhoneNumber:       req.PhoneNumber,
		CheckoutRequestID: push.CheckoutRequestID,
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to record pending payment: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("stk_push_initiated",
		"booking_id", booking.ID,
		"checkout_request_id", push.CheckoutRequestID,
	)
	return row, nil
}
