package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nyumbani/rentals/internal/app/service/account"
	"github.com/nyumbani/rentals/pkg/response"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// ApiRegister handles POST /register. Registration provisions the profile
// (and tenant row, for the tenant role) atomically with the account.
func ApiRegister(accounts account.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(err.Error()))
			return
		}
		user, err := accounts.Register(c.Request.Context(), &req)
		if err != nil {
			if errors.Is(err, account.ErrAccountExists) || errors.Is(err, account.ErrInvalidRole) {
				c.JSON(http.StatusBadRequest, response.Err(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// ApiLogin handles POST /login and POST /token: credentials in, token pair out.
func ApiLogin(accounts account.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(err.Error()))
			return
		}
		user, err := accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, account.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, response.Err(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		pair, err := accounts.IssueTokens(c.Request.Context(), user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusOK, pair)
	}
}

// ApiTokenRefresh handles POST /token/refresh.
func ApiTokenRefresh(accounts account.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(err.Error()))
			return
		}
		pair, err := accounts.RefreshAccessToken(c.Request.Context(), req.Refresh)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusOK, pair)
	}
}

func RegisterAuthRoutes(r gin.IRouter, accounts account.Manager) {
	r.POST("/register", ApiRegister(accounts))
	r.POST("/login", ApiLogin(accounts))
	r.POST("/token", ApiLogin(accounts))
	r.POST("/token/refresh", ApiTokenRefresh(accounts))
}
