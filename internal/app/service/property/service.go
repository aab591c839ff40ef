package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nyumbani/rentals/internal/models"
	"github.com/nyumbani/rentals/pkg/logctx"
)

var ErrPropertyNotFound = errors.New("property not found")

type CreateRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	PricePerMonth decimal.Decimal `json:"price_per_month" binding:"required"`
	ImageURL      string          `json:"image_url"`
}

// Manager covers the three access tiers over properties: public listing,
// landlord scope, and admin approval.
type Manager interface {
	PublicList(ctx context.Context) ([]*models.Property, error)
	ListByLandlord(ctx context.Context, landlordID uint) ([]*models.Property, error)
	Create(ctx context.Context, landlordID uint, req *CreateRequest) (*models.Property, error)
	Approve(ctx context.Context, id uint) (*models.Property, error)
}

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) Manager {
	return &Service{db: db, log: log}
}

// PublicList returns approved rows only.
func (s *Service) PublicList(ctx context.Context) ([]*models.Property, error) {
	var rows []*models.Property
	if err := s.db.WithContext(ctx).Where("approved = ?", true).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return rows, nil
}

// ListByLandlord returns all rows owned by the landlord regardless of
// approval state.
func (s *Service) ListByLandlord(ctx context.Context, landlordID uint) ([]*models.Property, error) {
	var rows []*models.Property
	if err := s.db.WithContext(ctx).Where("landlord_id = ?", landlordID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list landlord properties: %w", err)
	}
	return rows, nil
}

// Create inserts a property for the calling landlord. Ownership and the
// approved flag are server-set; client-supplied values never win.
func (s *Service) Create(ctx context.Context, landlordID uint, req *CreateRequest) (*models.Property, error) {
	row := &models.Property{
		Name:          req.Name,
		Description:   req.Description,
		PricePerMonth: req.PricePerMonth,
		ImageURL:      req.ImageURL,
		LandlordID:    &landlordID,
		Approved:      false,
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("property_created", "property_id", row.ID, "landlord_id", landlordID)
	return row, nil
}

// Approve flips the approved flag on an existing row and touches nothing
// else.
func (s *Service) Approve(ctx context.Context, id uint) (*models.Property, error) {
	var row models.Property
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&row).Update("approved", true).Error; err != nil {
		return nil, fmt.Errorf("failed to approve property: %w", err)
	}
	row.Approved = true
	logctx.FromCtx(ctx, s.log).Infow("property_approved", "property_id", row.ID)
	return &row, nil
}
