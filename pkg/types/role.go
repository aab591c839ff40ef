package types

// Role is the account role stored on a user profile.
type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleTenant, RoleLandlord, RoleAdmin:
		return true
	}
	return false
}
