package account

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nyumbani/rentals/internal/models"
	"github.com/nyumbani/rentals/pkg/types"
)

func TestCapabilityPredicates(t *testing.T) {
	tests := []struct {
		name         string
		profile      *models.UserProfile
		wantLandlord bool
		wantAdmin    bool
	}{
		{name: "no profile", profile: nil},
		{name: "tenant", profile: &models.UserProfile{Role: types.RoleTenant}},
		{name: "landlord", profile: &models.UserProfile{Role: types.RoleLandlord}, wantLandlord: true},
		{name: "admin", profile: &models.UserProfile{Role: types.RoleAdmin}, wantAdmin: true},
		{name: "unknown role", profile: &models.UserProfile{Role: types.Role("manager")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLandlord, IsLandlord(tt.profile))
			assert.Equal(t, tt.wantAdmin, IsAdmin(tt.profile))
		})
	}
}
