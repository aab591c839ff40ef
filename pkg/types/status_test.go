package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForResultCode(t *testing.T) {
	assert.Equal(t, PaymentStatusPaid, StatusForResultCode(0))
	assert.Equal(t, PaymentStatusFailed, StatusForResultCode(1))
	assert.Equal(t, PaymentStatusFailed, StatusForResultCode(1032))
	assert.Equal(t, PaymentStatusFailed, StatusForResultCode(-1))
}

func TestPaymentStatusValid(t *testing.T) {
	assert.True(t, PaymentStatusPending.Valid())
	assert.True(t, PaymentStatusPaid.Valid())
	assert.True(t, PaymentStatusFailed.Valid())
	assert.False(t, PaymentStatus("Whatever").Valid())
	assert.False(t, PaymentStatus("").Valid())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleTenant.Valid())
	assert.True(t, RoleLandlord.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("manager").Valid())
	assert.False(t, Role("").Valid())
}
