package account

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nyumbani/rentals/internal/models"
	"github.com/nyumbani/rentals/pkg/config"
	"github.com/nyumbani/rentals/pkg/logctx"
	"github.com/nyumbani/rentals/pkg/types"
)

var (
	ErrAccountExists      = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("invalid role")
)

type RegisterRequest struct {
	Username    string     `json:"username" binding:"required"`
	Email       string     `json:"email" binding:"required,email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Password    string     `json:"password" binding:"required"`
	PhoneNumber string     `json:"phone_number" binding:"required"`
	Role        types.Role `json:"role"`
}

// Manager creates accounts, authenticates credentials and issues tokens.
type Manager interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.UserAccount, error)
	Authenticate(ctx context.Context, username, password string) (*models.UserAccount, error)
	ProfileFor(ctx context.Context, userID uint) (*models.UserProfile, error)
	IssueTokens(ctx context.Context, user *models.UserAccount) (*TokenPair, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	ParseAccessToken(raw string) (uint, error)
}

type Service struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) Manager {
	return &Service{cfg: cfg, db: db, log: log}
}

// Register creates the account and runs role provisioning in one
// transaction, so a profile row exists whenever an account does.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*models.UserAccount, error) {
	role := req.Role
	if role == "" {
		role = types.RoleTenant
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, req.Role)
	}

	cost := s.cfg.Auth.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.UserAccount{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.UserAccount{}).
			Where("username = ? OR email = ?", req.Username, req.Email).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check existing account: %w", err)
		}
		if count > 0 {
			return ErrAccountExists
		}
		if err := tx.Create(account).Error; err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
		return s.provisionRelated(ctx, tx, account, role, req.PhoneNumber)
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("account_registered", "user_id", account.ID, "role", role)
	return account, nil
}

// provisionRelated is the post-creation hook: every account gets a profile,
// tenants additionally get a Tenant row. The phone number is applied in a
// second write because the tenant row does not exist until provisioning ran.
func (s *Service) provisionRelated(ctx context.Context, tx *gorm.DB, account *models.UserAccount, role types.Role, phone string) error {
	profile := &models.UserProfile{UserID: account.ID, Role: role}
	if err := tx.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if role != types.RoleTenant {
		return nil
	}

	tenant := &models.Tenant{UserID: &account.ID}
	if err := tx.Create(tenant).Error; err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}
	if phone != "" {
		if err := tx.Model(tenant).Update("phone_number", phone).Error; err != nil {
			return fmt.Errorf("failed to set tenant phone: %w", err)
		}
	}
	return nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.UserAccount, error) {
	var account models.UserAccount
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &account, nil
}

func (s *Service) ProfileFor(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}
