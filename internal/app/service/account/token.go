package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/nyumbani/rentals/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (s *Service) signToken(userID uint, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", userID),
		"type": kind,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.JWTSecret))
}

func (s *Service) IssueTokens(ctx context.Context, user *models.UserAccount) (*TokenPair, error) {
	access, err := s.signToken(user.ID, "access", s.cfg.Auth.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.signToken(user.ID, "refresh", s.cfg.Auth.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *Service) parseToken(raw, wantKind string) (uint, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	if kind, _ := claims["type"].(string); kind != wantKind {
		return 0, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	var userID uint
	if _, err := fmt.Sscanf(sub, "%d", &userID); err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

// ParseAccessToken validates an access token and returns the account id.
func (s *Service) ParseAccessToken(raw string) (uint, error) {
	return s.parseToken(raw, "access")
}

// RefreshAccessToken exchanges a valid refresh token for a fresh pair.
func (s *Service) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.parseToken(refreshToken, "refresh")
	if err != nil {
		return nil, err
	}
	var account models.UserAccount
	if err := s.db.WithContext(ctx).First(&account, userID).Error; err != nil {
		return nil, ErrInvalidToken
	}
	return s.IssueTokens(ctx, &account)
}
