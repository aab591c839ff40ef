package mpesa

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLipaPassword(t *testing.T) {
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	password, timestamp := LipaPassword("174379", "passkey", ts)

	require.Equal(t, "20240101120000", timestamp)

	decoded, err := base64.StdEncoding.DecodeString(password)
	require.NoError(t, err)
	assert.Equal(t, "174379passkey20240101120000", string(decoded))
}

func TestParseTransactionTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *time.Time
	}{
		{name: "valid", input: "20240101120000", want: func() *time.Time {
			v := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
			return &v
		}()},
		{name: "empty", input: "", want: nil},
		{name: "garbage", input: "not-a-date", want: nil},
		{name: "truncated", input: "20240101", want: nil},
		{name: "impossible month", input: "20241301120000", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTransactionTime(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got))
		})
	}
}
