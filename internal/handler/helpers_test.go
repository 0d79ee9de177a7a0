package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestionpos/internal/dto"
	"gestionpos/internal/middleware"
	"gestionpos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validacion", service.Invalid("nombre", "requerido"), http.StatusBadRequest},
		{"no existe", fmt.Errorf("producto %w", service.ErrNotFound), http.StatusNotFound},
		{"credenciales", service.ErrUnauthorized, http.StatusUnauthorized},
		{"permisos", service.ErrForbidden, http.StatusForbidden},
		{"conflicto", fmt.Errorf("duplicado: %w", service.ErrConflict), http.StatusConflict},
		{"rol", fmt.Errorf("%w Admin: tabla bloqueada", service.ErrRoleAssignment), http.StatusInternalServerError},
		{"sin smtp", fmt.Errorf("x: %w", service.ErrUnavailable), http.StatusServiceUnavailable},
		{"relay", fmt.Errorf("%w: timeout", service.ErrUpstream), http.StatusBadGateway},
		{"inesperado", errors.New("sql: connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.ErrorHandler())
			r.GET("/", func(c *gin.Context) { respondError(c, tc.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"detail"`)
		})
	}
}

func TestRespondError_HidesInternalCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/", func(c *gin.Context) { respondError(c, errors.New("pq: password authentication failed")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotContains(t, w.Body.String(), "password authentication")
}

func TestValidate_FieldPaths(t *testing.T) {
	req := dto.CrearAlquilerRequest{
		Codigo: "A",
		Productos: []dto.DetalleAlquilerRequest{
			{Cantidad: 0, PrecioUnitario: decimal.NewFromInt(-1)},
		},
	}
	err := validate.Struct(&req)
	require.Error(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	assert.False(t, validateStruct(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"fecha_hora_alquiler"`)
	assert.Contains(t, body, `"productos[0].producto_id"`)
	assert.Contains(t, body, `"productos[0].cantidad"`)
	assert.Contains(t, body, `"productos[0].precio_unitario"`)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Índice", capitalize("índice"))
	assert.Equal(t, "", capitalize(""))
}
