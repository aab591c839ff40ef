package payment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackRequestDecode(t *testing.T) {
	body := `{
		"booking_id": 5,
		"email": "a@b.com",
		"result_code": 0,
		"result_desc": "The service request is processed successfully.",
		"amount": 1000,
		"mpesa_receipt": "QK12XYZ890",
		"phone_number": "254712345678",
		"transaction_date": "20240101120000",
		"raw_callback": {"Body": {"stkCallback": {"ResultCode": 0}}}
	}`

	var req CallbackRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, uint(5), req.BookingID)
	assert.Equal(t, "a@b.com", req.Email)
	assert.Equal(t, 0, req.ResultCode)
	assert.Equal(t, "1000", req.Amount.String())
	assert.Equal(t, "QK12XYZ890", req.MpesaReceipt)
	assert.JSONEq(t, `{"Body": {"stkCallback": {"ResultCode": 0}}}`, string(req.RawCallback))
}

func TestCallbackRequestDecode_AmountDefaultsToZero(t *testing.T) {
	var req CallbackRequest
	require.NoError(t, json.Unmarshal([]byte(`{"booking_id": 5, "email": "a@b.com", "result_code": 1}`), &req))
	assert.True(t, req.Amount.IsZero())
	assert.Empty(t, req.RawCallback)
}
