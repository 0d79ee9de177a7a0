package service

import (
	"errors"
	"slices"
	"time"

	"gestionpos/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token kinds carried in the token_type claim.
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

// Claims are the custom claims embedded in every signed token.
type Claims struct {
	UserID    string   `json:"user_id"`
	Username  string   `json:"username"`
	Roles     []string `json:"roles"`
	TokenType string   `json:"token_type"`
	jwt.RegisteredClaims
}

// HasRole reports whether the token holder belongs to rol.
func (c *Claims) HasRole(rol string) bool {
	return slices.Contains(c.Roles, rol)
}

// Caller is the authenticated identity a request acts on behalf of.
type Caller struct {
	UserID   uuid.UUID
	Username string
	Roles    []string
}

func (c Caller) IsAdmin() bool { return slices.Contains(c.Roles, model.RolAdmin) }

// Caller converts validated claims into a Caller.
func (c *Claims) Caller() (Caller, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return Caller{}, errors.New("token mal formado")
	}
	return Caller{UserID: id, Username: c.Username, Roles: c.Roles}, nil
}

// TokenManager signs and verifies HS256 tokens.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL, now: time.Now}
}

// AccessTTL is the lifetime of access tokens.
func (m *TokenManager) AccessTTL() time.Duration { return m.accessTTL }

// Issue signs a token of the given kind for user.
func (m *TokenManager) Issue(user *model.Usuario, kind string) (string, error) {
	ttl := m.accessTTL
	if kind == TokenRefresh {
		ttl = m.refreshTTL
	}
	now := m.now()
	claims := Claims{
		UserID:    user.ID.String(),
		Username:  user.Username,
		Roles:     user.RolNames(),
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies signature, expiry and kind.
func (m *TokenManager) Parse(tokenStr, kind string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	if claims.TokenType != kind {
		return nil, ErrUnauthorized
	}
	return claims, nil
}
