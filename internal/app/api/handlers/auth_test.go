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

	"github.com/nyumbani/rentals/internal/app/service/account"
	"github.com/nyumbani/rentals/internal/models"
)

type stubAccountMgr struct {
	registerErr error
	authErr     error
	refreshErr  error
	lastReg     *account.RegisterRequest
}

func (s *stubAccountMgr) Register(_ context.Context, req *account.RegisterRequest) (*models.UserAccount, error) {
	s.lastReg = req
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &models.UserAccount{ID: 1, Username: req.Username, Email: req.Email}, nil
}

func (s *stubAccountMgr) Authenticate(_ context.Context, username, _ string) (*models.UserAccount, error) {
	if s.authErr != nil {
		return nil, s.authErr
	}
	return &models.UserAccount{ID: 1, Username: username}, nil
}

func (s *stubAccountMgr) ProfileFor(_ context.Context, userID uint) (*models.UserProfile, error) {
	return &models.UserProfile{UserID: userID}, nil
}

func (s *stubAccountMgr) IssueTokens(_ context.Context, _ *models.UserAccount) (*account.TokenPair, error) {
	return &account.TokenPair{Access: "access-token", Refresh: "refresh-token"}, nil
}

func (s *stubAccountMgr) RefreshAccessToken(_ context.Context, _ string) (*account.TokenPair, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return &account.TokenPair{Access: "new-access", Refresh: "new-refresh"}, nil
}

func (s *stubAccountMgr) ParseAccessToken(_ string) (uint, error) {
	return 1, nil
}

func newAuthRouter(mgr account.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/api/v1")
	RegisterAuthRoutes(grp, mgr)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApiRegister(t *testing.T) {
	mgr := &stubAccountMgr{}
	r := newAuthRouter(mgr)

	w := postJSON(r, "/api/v1/register", map[string]any{
		"username": "wanjiku", "email": "wanjiku@example.com",
		"password": "s3cret", "phone_number": "254712345678", "role": "tenant",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mgr.lastReg)
	require.Equal(t, "254712345678", mgr.lastReg.PhoneNumber)
}

func TestApiRegister_MissingFieldsIs400(t *testing.T) {
	mgr := &stubAccountMgr{}
	r := newAuthRouter(mgr)

	// phone_number missing
	w := postJSON(r, "/api/v1/register", map[string]any{
		"username": "wanjiku", "email": "wanjiku@example.com", "password": "s3cret",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Nil(t, mgr.lastReg)
}

func TestApiRegister_DuplicateIs400(t *testing.T) {
	mgr := &stubAccountMgr{registerErr: account.ErrAccountExists}
	r := newAuthRouter(mgr)

	w := postJSON(r, "/api/v1/register", map[string]any{
		"username": "wanjiku", "email": "wanjiku@example.com",
		"password": "s3cret", "phone_number": "254712345678",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), account.ErrAccountExists.Error())
}

func TestApiLogin(t *testing.T) {
	r := newAuthRouter(&stubAccountMgr{})

	for _, path := range []string{"/api/v1/login", "/api/v1/token"} {
		w := postJSON(r, path, map[string]any{"username": "wanjiku", "password": "s3cret"})
		require.Equal(t, http.StatusOK, w.Code)

		var pair account.TokenPair
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
		require.Equal(t, "access-token", pair.Access)
		require.Equal(t, "refresh-token", pair.Refresh)
	}
}

func TestApiLogin_BadCredentialsIs401(t *testing.T) {
	r := newAuthRouter(&stubAccountMgr{authErr: account.ErrInvalidCredentials})

	w := postJSON(r, "/api/v1/login", map[string]any{"username": "wanjiku", "password": "nope"})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApiTokenRefresh_InvalidIs401(t *testing.T) {
	r := newAuthRouter(&stubAccountMgr{refreshErr: account.ErrInvalidToken})

	w := postJSON(r, "/api/v1/token/refresh", map[string]any{"refresh": "garbage"})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
