package account

import (
	"github.com/nyumbani/rentals/internal/models"
	"github.com/nyumbani/rentals/pkg/types"
)

// Capability predicates gating restricted endpoints. A caller without a
// profile fails the check; that is an ordinary false, not an error.

func IsLandlord(profile *models.UserProfile) bool {
	return profile != nil && profile.Role == types.RoleLandlord
}

func IsAdmin(profile *models.UserProfile) bool {
	return profile != nil && profile.Role == types.RoleAdmin
}
