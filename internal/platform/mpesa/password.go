package mpesa

import (
	"encoding/base64"
	"time"

	"github.com/samber/lo"
)

// TimestampFormat is the lexical form Daraja expects for STK push timestamps
// and emits for transaction dates in callbacks.
const TimestampFormat = "20060102150405"

// LipaPassword derives the STK push password for a request issued at ts:
// base64(shortcode + passkey + timestamp).
func LipaPassword(shortCode, passkey string, ts time.Time) (password, timestamp string) {
	timestamp = ts.Format(TimestampFormat)
	password = base64.StdEncoding.EncodeToString([]byte(shortCode + passkey + timestamp))
	return password, timestamp
}

// ParseTransactionTime parses a callback transaction date. Unparseable input
// yields nil rather than an error: the reconciliation flow records the
// payment regardless.
func ParseTransactionTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(TimestampFormat, s)
	if err != nil {
		return nil
	}
	return lo.ToPtr(t)
}
