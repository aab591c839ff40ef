package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nyumbani/rentals/internal/models"
	"github.com/nyumbani/rentals/pkg/logctx"
	"github.com/nyumbani/rentals/pkg/types"
)

var (
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrPropertyNotFound = errors.New("property not found")
)

type CreateRequest struct {
	TenantID    uint   `json:"tenant_id" binding:"required"`
	PropertyID  uint   `json:"property_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

type ScanRequest struct {
	Filters   []*types.ListFilter `json:"filters"`
	From      int                 `json:"from"`
	Size      int                 `json:"size"`
	SortBy    string              `json:"sort_by"`
	SortOrder string              `json:"sort_order"`
}

type ScanResponse struct {
	Items []*models.Booking `json:"items"`
	Total int64             `json:"total"`
}

// Manager covers the three views over bookings: the public flow, the
// landlord scope and the unfiltered admin scan.
type Manager interface {
	Create(ctx context.Context, req *CreateRequest) (*models.Booking, error)
	List(ctx context.Context) ([]*models.Booking, error)
	ListByLandlord(ctx context.Context, landlordID uint) ([]*models.Booking, error)
	Scan(ctx context.Context, req *ScanRequest) (*ScanResponse, error)
}

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) Manager {
	return &Service{db: db, log: log}
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*models.Booking, error) {
	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking_date: %w", err)
	}

	var tenantCount int64
	if err := s.db.WithContext(ctx).Model(&models.Tenant{}).Where("id = ?", req.TenantID).Count(&tenantCount).Error; err != nil {
		return nil, fmt.Errorf("failed to check tenant: %w", err)
	}
	if tenantCount == 0 {
		return nil, ErrTenantNotFound
	}
	var propertyCount int64
	if err := s.db.WithContext(ctx).Model(&models.Property{}).Where("id = ?", req.PropertyID).Count(&propertyCount).Error; err != nil {
		return nil, fmt.Errorf("failed to check property: %w", err)
	}
	if propertyCount == 0 {
		return nil, ErrPropertyNotFound
	}

	row := &models.Booking{
		TenantID:    req.TenantID,
		PropertyID:  req.PropertyID,
		BookingDate: datatypes.Date(date),
		Email:       req.Email,
		Status:      types.BookingStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("booking_created", "booking_id", row.ID, "property_id", row.PropertyID)
	return row, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Booking, error) {
	var rows []*models.Booking
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return rows, nil
}

// ListByLandlord returns bookings against properties the landlord owns.
func (s *Service) ListByLandlord(ctx context.Context, landlordID uint) ([]*models.Booking, error) {
	var rows []*models.Booking
	err := s.db.WithContext(ctx).
		Joins("JOIN property ON property.id = booking.property_id").
		Where("property.landlord_id = ?", landlordID).
		Order("booking.id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list landlord bookings: %w", err)
	}
	return rows, nil
}

// filtersAnd combines multiple ListFilter into a single clause.Expression
type filtersAnd struct{ filters []*types.ListFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

// Scan implements the paginated/filterable admin listing.
func (s *Service) Scan(ctx context.Context, req *ScanRequest) (*ScanResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.Booking{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	var rows []*models.Booking

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	if req.SortBy != "" {
		q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: req.SortBy}, Desc: req.SortOrder != "asc"}}})
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return &ScanResponse{Items: rows, Total: total}, nil
}
