package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestionpos/internal/model"
	"gestionpos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func testTokens() *service.TokenManager {
	return service.NewTokenManager(testSecret, time.Hour, 24*time.Hour)
}

func signFor(t *testing.T, tm *service.TokenManager, kind string, roles ...string) string {
	t.Helper()
	return signForID(t, tm, uuid.New(), kind, roles...)
}

func signForID(t *testing.T, tm *service.TokenManager, id uuid.UUID, kind string, roles ...string) string {
	t.Helper()
	u := &model.Usuario{Username: "testuser"}
	u.ID = id
	for _, r := range roles {
		u.Roles = append(u.Roles, model.Rol{Nombre: r})
	}
	tok, err := tm.Issue(u, kind)
	require.NoError(t, err)
	return tok
}

// cuentasFijas answers CuentaActiva from a fixed set of disabled accounts.
type cuentasFijas struct {
	inactivas map[uuid.UUID]bool
	err       error
}

func (f cuentasFijas) CuentaActiva(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if f.inactivas[id] {
		return service.ErrUnauthorized
	}
	return nil
}

func ginTestRouter(tm *service.TokenManager) *gin.Engine {
	return ginTestRouterWith(tm, cuentasFijas{})
}

func ginTestRouterWith(tm *service.TokenManager, cuentas Cuentas) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(tm, cuentas))
	r.GET("/protected", func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": caller.UserID, "admin": caller.IsAdmin()})
	})
	r.GET("/admin", RequireRole(model.RolAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestProtectedEndpoint_NoToken(t *testing.T) {
	w := get(ginTestRouter(testTokens()), "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestProtectedEndpoint_ValidToken(t *testing.T) {
	tm := testTokens()
	w := get(ginTestRouter(tm), "/protected", signFor(t, tm, service.TokenAccess, model.RolEmpleado))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin":false`)
}

func TestProtectedEndpoint_RefreshTokenRejected(t *testing.T) {
	tm := testTokens()
	w := get(ginTestRouter(tm), "/protected", signFor(t, tm, service.TokenRefresh, model.RolAdmin))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedEndpoint_WrongSecret(t *testing.T) {
	other := service.NewTokenManager("otro-secreto-distinto", time.Hour, time.Hour)
	w := get(ginTestRouter(testTokens()), "/protected", signFor(t, other, service.TokenAccess, model.RolAdmin))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedEndpoint_ExpiredToken(t *testing.T) {
	expired := service.NewTokenManager(testSecret, -time.Second, time.Hour)
	w := get(ginTestRouter(testTokens()), "/protected", signFor(t, expired, service.TokenAccess))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_WrongRole(t *testing.T) {
	tm := testTokens()
	w := get(ginTestRouter(tm), "/admin", signFor(t, tm, service.TokenAccess, model.RolEmpleado))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Permisos insuficientes")
}

func TestRequireRole_CorrectRole(t *testing.T) {
	tm := testTokens()
	w := get(ginTestRouter(tm), "/admin", signFor(t, tm, service.TokenAccess, model.RolEmpleado, model.RolAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_WithoutJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireRole(model.RolAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	w := get(r, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedEndpoint_InactiveAccount(t *testing.T) {
	tm := testTokens()
	id := uuid.New()
	r := ginTestRouterWith(tm, cuentasFijas{inactivas: map[uuid.UUID]bool{id: true}})

	w := get(r, "/protected", signForID(t, tm, id, service.TokenAccess, model.RolAdmin))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Usuario inactivo")

	w = get(r, "/protected", signFor(t, tm, service.TokenAccess, model.RolAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedEndpoint_AccountLookupFails(t *testing.T) {
	tm := testTokens()
	r := ginTestRouterWith(tm, cuentasFijas{err: errors.New("sql: connection reset")})
	w := get(r, "/protected", signFor(t, tm, service.TokenAccess))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}
