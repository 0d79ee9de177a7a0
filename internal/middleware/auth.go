package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"gestionpos/internal/apierror"
	"gestionpos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	ClaimsKey = "claims"
)

// Cuentas reports whether the account behind a token may still use the API.
type Cuentas interface {
	CuentaActiva(ctx context.Context, userID uuid.UUID) error
}

// JWTAuth validates the Bearer access token on every protected route.
// Refresh tokens are rejected here, and so are tokens of accounts that were
// deactivated or removed after the token was issued.
func JWTAuth(tokens *service.TokenManager, cuentas Cuentas) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "), service.TokenAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}
		caller, err := claims.Caller()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}
		if err := cuentas.CuentaActiva(c.Request.Context(), caller.UserID); err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Usuario inactivo"))
				return
			}
			log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("jwt: error verificando cuenta")
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose token carries none of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}
		for _, r := range roles {
			if claims.HasRole(r) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*service.Claims)
	return claims
}

// GetCaller returns the authenticated caller set by JWTAuth.
func GetCaller(c *gin.Context) (service.Caller, bool) {
	claims := GetClaims(c)
	if claims == nil {
		return service.Caller{}, false
	}
	caller, err := claims.Caller()
	if err != nil {
		return service.Caller{}, false
	}
	return caller, true
}
