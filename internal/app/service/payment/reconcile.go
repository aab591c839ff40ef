package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nyumbani/rentals/internal/models"
	"github.com/nyumbani/rentals/internal/platform/mpesa"
	"github.com/nyumbani/rentals/pkg/logctx"
	"github.com/nyumbani/rentals/pkg/types"
)

// Reconcile matches a gateway notification to its booking and records the
// outcome. The booking is matched on (id, tenant account email) jointly; a
// forged or mismatched booking id fails the lookup. Booking update and
// payment insert happen in one transaction, so a mid-flight failure cannot
// leave a Paid booking without its payment row.
func (s *Service) Reconcile(ctx context.Context, req *CallbackRequest) (*ReconcileResult, error) {
	txnTime := mpesa.ParseTransactionTime(req.TransactionDate)
	status := types.StatusForResultCode(req.ResultCode)

	var result *ReconcileResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.matchBooking(ctx, tx, req.BookingID, req.Email)
		if err != nil {
			return err
		}

		// Duplicate delivery: same booking and receipt already recorded.
		// Acknowledge without a second insert.
		if req.MpesaReceipt != "" {
			var existing models.Payment
			err := tx.Where("booking_id = ? AND mpesa_receipt = ?", booking.ID, req.MpesaReceipt).
				First(&existing).Error
			if err == nil {
				result = &ReconcileResult{BookingStatus: booking.Status, Payment: &existing, Duplicate: true, booking: booking}
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check existing payment: %w", err)
			}
		}

		// A failed payment leaves the booking status untouched.
		if status == types.PaymentStatusPaid {
			if err := tx.Model(booking).Update("status", types.BookingStatusPaid).Error; err != nil {
				return fmt.Errorf("failed to update booking status: %w", err)
			}
			booking.Status = types.BookingStatusPaid
		}

		row := &models.Payment{
			BookingID:       &booking.ID,
			Amount:          req.Amount,
			Status:          status,
			PhoneNumber:     req.PhoneNumber,
			ResultCode:      req.ResultCode,
			ResultDesc:      req.ResultDesc,
			TransactionTime: txnTime,
		}
		if req.MpesaReceipt != "" {
			row.MpesaReceipt = lo.ToPtr(req.MpesaReceipt)
		}
		if len(req.RawCallback) > 0 {
			row.RawCallback = datatypes.JSON(req.RawCallback)
		}
		if err := tx.Create(row).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		result = &ReconcileResult{BookingStatus: booking.Status, Payment: row, booking: booking}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("payment_reconciled",
		"booking_id", req.BookingID,
		"payment_status", result.Payment.Status,
		"duplicate", result.Duplicate,
	)

	// Best-effort confirmation mail on the Pending -> Paid transition. A
	// delivery failure never fails the callback; the relay must see 201.
	if s.mailer != nil && result.BookingStatus == types.BookingStatusPaid && !result.Duplicate {
		s.sendConfirmation(ctx, req.Email, result.booking)
	}
	return result, nil
}

func (s *Service) sendConfirmation(ctx context.Context, email string, booking *models.Booking) {
	propertyName := ""
	if booking.Property != nil {
		propertyName = booking.Property.Name
	}
	date := time.Time(booking.BookingDate).Format("2006-01-02")
	if err := s.mailer.SendBookingConfirmation(email, propertyName, date); err != nil {
		logctx.FromCtx(ctx, s.log).Warnw("confirmation_mail_failed", "booking_id", booking.ID, "error", err.Error())
	}
}

// matchBooking loads the booking whose id and tenant account email both
// match. Either condition failing yields ErrBookingNotFound.
func (s *Service) matchBooking(ctx context.Context, tx *gorm.DB, bookingID uint, email string) (*models.Booking, error) {
	var booking models.Booking
	err := tx.WithContext(ctx).
		Preload("Property").
		Joins("JOIN tenant ON tenant.id = booking.tenant_id").
		Joins("JOIN user_account ON user_account.id = tenant.user_id").
		Where("booking.id = ? AND user_account.email = ?", bookingID, email).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to match booking: %w", err)
	}
	return &booking, nil
}
