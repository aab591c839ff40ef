package tenant

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nyumbani/rentals/internal/models"
)

type CreateRequest struct {
	UserID      *uint  `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
}

// Manager lists and creates tenant records. Listing is searchable by the
// linked account's email.
type Manager interface {
	List(ctx context.Context, emailSearch string) ([]*models.Tenant, error)
	Create(ctx context.Context, req *CreateRequest) (*models.Tenant, error)
}

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) Manager {
	return &Service{db: db, log: log}
}

func (s *Service) List(ctx context.Context, emailSearch string) ([]*models.Tenant, error) {
	q := s.db.WithContext(ctx).Model(&models.Tenant{}).Preload("User")
	if emailSearch != "" {
		q = q.Joins("JOIN user_account ON user_account.id = tenant.user_id").
			Where("user_account.email ILIKE ?", "%"+emailSearch+"%")
	}
	var rows []*models.Tenant
	if err := q.Order("tenant.id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return rows, nil
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*models.Tenant, error) {
	row := &models.Tenant{UserID: req.UserID, PhoneNumber: req.PhoneNumber}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	return row, nil
}
