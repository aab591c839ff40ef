package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nyumbani/rentals/internal/app/service/account"
	"github.com/nyumbani/rentals/internal/models"
	"github.com/nyumbani/rentals/pkg/response"
)

const (
	ctxUserIDKey  = "user_id"
	ctxProfileKey = "profile"
)

// Authenticate validates a Bearer access token and loads the caller's
// profile into the request context. The role check itself lives in the
// Require* middleware; a valid token with no profile still passes here.
func Authenticate(accounts account.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Err("missing bearer token"))
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		userID, err := accounts.ParseAccessToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Err("invalid token"))
			return
		}

		profile, err := accounts.ProfileFor(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxProfileKey, profile)
		c.Next()
	}
}

// RequireLandlord aborts with 403 unless the caller's profile role is
// landlord. Callers with no profile fail the predicate.
func RequireLandlord() gin.HandlerFunc {
	return requirePredicate(account.IsLandlord)
}

// RequireAdmin is the admin-role equivalent.
func RequireAdmin() gin.HandlerFunc {
	return requirePredicate(account.IsAdmin)
}

func requirePredicate(pred func(*models.UserProfile) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !pred(ProfileFromContext(c)) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Err("forbidden"))
			return
		}
		c.Next()
	}
}

// UserIDFromContext returns the authenticated account id, or 0.
func UserIDFromContext(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// ProfileFromContext returns the caller's profile, or nil.
func ProfileFromContext(c *gin.Context) *models.UserProfile {
	if v, ok := c.Get(ctxProfileKey); ok {
		if p, ok := v.(*models.UserProfile); ok {
			return p
		}
	}
	return nil
}
