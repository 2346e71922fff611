// util/token_manager.go
package util

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apierrors "github.com/snipvault/api/errors"
	"github.com/snipvault/api/model"
)

// TokenManager issues and validates the HS256 access/refresh token
// pair.
type TokenManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret, issuer string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

type TokenClaims struct {
	UserID    int64  `json:"uid"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func (m *TokenManager) IssuePair(userID int64, role string) (*model.TokenPair, error) {
	access, err := m.issue(userID, role, "access", m.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := m.issue(userID, role, "refresh", m.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &model.TokenPair{Access: access, Refresh: refresh}, nil
}

func (m *TokenManager) issue(userID int64, role, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := TokenClaims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ParseAccess validates an access token and returns its claims.
func (m *TokenManager) ParseAccess(raw string) (*TokenClaims, error) {
	return m.parse(raw, "access")
}

// ParseRefresh validates a refresh token and returns its claims.
func (m *TokenManager) ParseRefresh(raw string) (*TokenClaims, error) {
	return m.parse(raw, "refresh")
}

func (m *TokenManager) parse(raw, tokenType string) (*TokenClaims, error) {
	var claims TokenClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, apierrors.ErrInvalidToken
	}
	if !token.Valid || claims.TokenType != tokenType {
		return nil, apierrors.ErrInvalidToken
	}
	return &claims, nil
}
