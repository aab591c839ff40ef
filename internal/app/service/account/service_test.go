package account

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nyumbani/rentals/internal/models"
	"github.com/nyumbani/rentals/pkg/config"
	"github.com/nyumbani/rentals/pkg/types"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserAccount{}, &models.UserProfile{}, &models.Tenant{}))

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return &Service{cfg: cfg, db: db, log: zap.NewNop().Sugar()}, db
}

func registerReq(role types.Role) *RegisterRequest {
	return &RegisterRequest{
		Username:    "wanjiku",
		Email:       "wanjiku@example.com",
		Password:    "s3cret",
		PhoneNumber: "0712345678",
		Role:        role,
	}
}

func TestRegister_TenantProvisioning(t *testing.T) {
	svc, db := newTestService(t)

	acct, err := svc.Register(context.Background(), registerReq(types.RoleTenant))
	require.NoError(t, err)
	require.NotZero(t, acct.ID)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte("s3cret")))

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", acct.ID).First(&profile).Error)
	require.Equal(t, types.RoleTenant, profile.Role)

	var tenant models.Tenant
	require.NoError(t, db.Where("user_id = ?", acct.ID).First(&tenant).Error)
	require.Equal(t, "0712345678", tenant.PhoneNumber)
}

func TestRegister_LandlordGetsNoTenantRow(t *testing.T) {
	svc, db := newTestService(t)

	acct, err := svc.Register(context.Background(), registerReq(types.RoleLandlord))
	require.NoError(t, err)

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", acct.ID).First(&profile).Error)
	require.Equal(t, types.RoleLandlord, profile.Role)

	var tenantCount int64
	require.NoError(t, db.Model(&models.Tenant{}).Count(&tenantCount).Error)
	require.Zero(t, tenantCount)
}

func TestRegister_RoleDefaultsToTenant(t *testing.T) {
	svc, db := newTestService(t)

	acct, err := svc.Register(context.Background(), registerReq(""))
	require.NoError(t, err)

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", acct.ID).First(&profile).Error)
	require.Equal(t, types.RoleTenant, profile.Role)
}

func TestRegister_DuplicateLeavesNothingBehind(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.Register(context.Background(), registerReq(types.RoleTenant))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq(types.RoleTenant))
	require.ErrorIs(t, err, ErrAccountExists)

	var accounts, profiles, tenants int64
	require.NoError(t, db.Model(&models.UserAccount{}).Count(&accounts).Error)
	require.NoError(t, db.Model(&models.UserProfile{}).Count(&profiles).Error)
	require.NoError(t, db.Model(&models.Tenant{}).Count(&tenants).Error)
	require.EqualValues(t, 1, accounts)
	require.EqualValues(t, 1, profiles)
	require.EqualValues(t, 1, tenants)
}

func TestRegister_InvalidRole(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), registerReq("manager"))
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), registerReq(types.RoleTenant))
	require.NoError(t, err)

	acct, err := svc.Authenticate(context.Background(), "wanjiku", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "wanjiku", acct.Username)

	_, err = svc.Authenticate(context.Background(), "wanjiku", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody", "s3cret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
