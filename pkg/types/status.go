package types

// BookingStatus tracks payment progress on a booking. The set is closed:
// a booking starts Pending and only moves to Paid when a successful gateway
// callback is reconciled against it.
type BookingStatus string

const (
	BookingStatusPending BookingStatus = "Pending"
	BookingStatusPaid    BookingStatus = "Paid"
	BookingStatusFailed  BookingStatus = "Failed"
)

// PaymentStatus is the outcome recorded on a payment row. Payment rows are
// append-only, so the status never changes after insert.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// StatusForResultCode maps a gateway result code to the payment outcome.
// Zero is the only success code M-Pesa emits.
func StatusForResultCode(code int) PaymentStatus {
	if code == 0 {
		return PaymentStatusPaid
	}
	return PaymentStatusFailed
}
