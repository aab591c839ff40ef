package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	mw "github.com/nyumbani/rentals/internal/app/api/middleware"
	"github.com/nyumbani/rentals/internal/app/service/booking"
	"github.com/nyumbani/rentals/internal/models"
	"github.com/nyumbani/rentals/pkg/types"
)

type stubBookingMgr struct {
	landlordListed []uint
	lastScan       *booking.ScanRequest
}

func (s *stubBookingMgr) Create(_ context.Context, req *booking.CreateRequest) (*models.Booking, error) {
	return &models.Booking{ID: 10, TenantID: req.TenantID, PropertyID: req.PropertyID, Email: req.Email, Status: types.BookingStatusPending}, nil
}

func (s *stubBookingMgr) List(_ context.Context) ([]*models.Booking, error) {
	return []*models.Booking{{ID: 1}, {ID: 2}}, nil
}

func (s *stubBookingMgr) ListByLandlord(_ context.Context, landlordID uint) ([]*models.Booking, error) {
	s.landlordListed = append(s.landlordListed, landlordID)
	return []*models.Booking{{ID: 3}}, nil
}

func (s *stubBookingMgr) Scan(_ context.Context, req *booking.ScanRequest) (*booking.ScanResponse, error) {
	s.lastScan = req
	return &booking.ScanResponse{Items: []*models.Booking{{ID: 4}}, Total: 1}, nil
}

func newBookingRouter(mgr booking.Manager, userID uint, role types.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pub := r.Group("/api/v1")
	landlord := r.Group("/api/v1/landlord", asRole(userID, role), mw.RequireLandlord())
	admin := r.Group("/api/v1/admin", asRole(userID, role), mw.RequireAdmin())
	RegisterBookingRoutes(pub, landlord, admin, mgr)
	return r
}

func TestApiCreateBooking(t *testing.T) {
	r := newBookingRouter(&stubBookingMgr{}, 0, "")

	body, _ := json.Marshal(map[string]any{
		"tenant_id": 1, "property_id": 2, "booking_date": "2024-06-01", "email": "a@b.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"status":"Pending"`)
}

func TestApiListLandlordBookings_ScopedToCaller(t *testing.T) {
	mgr := &stubBookingMgr{}
	r := newBookingRouter(mgr, 9, types.RoleLandlord)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/landlord/bookings", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []uint{9}, mgr.landlordListed)
}

func TestApiListLandlordBookings_ForbiddenWithoutProfile(t *testing.T) {
	mgr := &stubBookingMgr{}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pub := r.Group("/api/v1")
	// no profile injected at all
	landlord := r.Group("/api/v1/landlord", mw.RequireLandlord())
	admin := r.Group("/api/v1/admin", mw.RequireAdmin())
	RegisterBookingRoutes(pub, landlord, admin, mgr)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/landlord/bookings", nil))

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Empty(t, mgr.landlordListed)
}

func TestApiScanBookings_Admin(t *testing.T) {
	mgr := &stubBookingMgr{}
	r := newBookingRouter(mgr, 1, types.RoleAdmin)

	body, _ := json.Marshal(map[string]any{
		"filters": []map[string]any{{"field": "status", "operator": "eq", "values": []any{"Paid"}}},
		"size":    20,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mgr.lastScan)
	require.Len(t, mgr.lastScan.Filters, 1)
	require.Equal(t, "status", mgr.lastScan.Filters[0].Field)
}
