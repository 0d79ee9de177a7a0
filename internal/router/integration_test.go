//go:build integration

// Runs the API against real Postgres and Redis containers.
// Run with: go test -tags integration ./internal/router/... -v
package router

import (
	"context"
	"net/http"
	"testing"

	"gestionpos/internal/dto"
	"gestionpos/internal/infra"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"
	"gestionpos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

func setupContainers(t *testing.T, loginLimit int) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("gestion_test"),
		tcPostgres.WithUsername("gestion"),
		tcPostgres.WithPassword("gestion"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(pgC) })
	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(rdC) })
	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.DatabaseURL = pgURL
	cfg.RedisURL = rdURL
	cfg.LoginRateLimit = loginLimit

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(ctx, db, "up"))
	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(context.Background(), db, rdb, nil) })

	// Roles come from the migration seed.
	roles, err := repository.NewRolRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	var admin, empleado model.Rol
	for _, r := range roles {
		switch r.Nombre {
		case model.RolAdmin:
			admin = r
		case model.RolEmpleado:
			empleado = r
		}
	}

	service.BcryptCost = bcrypt.MinCost
	hash, err := service.HashPassword("admin1234")
	require.NoError(t, err)
	require.NoError(t, repository.NewUsuarioRepository(db).CrearConRoles(ctx,
		&model.Usuario{Username: "admin", PasswordHash: hash, Activo: true}, []model.Rol{admin}, nil))

	env := &testEnv{
		engine:  New(cfg, db, rdb, infra.NewCircuitBreaker(infra.DefaultCBConfig("smtp"))),
		db:      db,
		empRole: empleado,
	}
	env.token = env.login(t, "admin", "admin1234")
	return env
}

func TestIntegration_RentalFlowOnPostgres(t *testing.T) {
	env := setupContainers(t, 100)

	w := env.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"connected"`)

	w = env.do(t, http.MethodPost, "/api/categorias", map[string]any{"nombre": "Tools"}, env.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cat dto.CategoriaResponse
	decode(t, w, &cat)

	w = env.do(t, http.MethodPost, "/api/productos", map[string]any{"nombre": "Drill", "precio": "15.00", "categoria": cat.ID}, env.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var prod dto.ProductoResponse
	decode(t, w, &prod)

	w = env.do(t, http.MethodPost, "/api/alquileres", map[string]any{
		"id_alquiler":           "ALQ-PG-1",
		"fecha_hora_alquiler":   "2026-05-01T09:00:00Z",
		"fecha_hora_devolucion": "2026-05-02T09:00:00Z",
		"productos":             []map[string]any{{"producto_id": prod.ID, "cantidad": 2, "precio_unitario": "10.00"}},
	}, env.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var alq dto.AlquilerResponse
	decode(t, w, &alq)
	assert.Equal(t, "Drill", alq.Productos[0].Producto.Nombre)
	assert.True(t, alq.MontoTotal.Equal(decimal.NewFromInt(20)))

	w = env.do(t, http.MethodPost, "/api/categorias", map[string]any{"nombre": "Tools"}, env.token)
	assert.Equal(t, http.StatusConflict, w.Code)

	_, empID := env.createEmployee(t, "operario")
	w = env.do(t, http.MethodPatch, "/api/empleados-detail/"+empID+"/inactivar", nil, env.token)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, "/api/login", map[string]string{"username": "operario", "password": "empleado123"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIntegration_LoginRateLimitInRedis(t *testing.T) {
	env := setupContainers(t, 2)

	// setupContainers already used one attempt.
	w := env.do(t, http.MethodPost, "/api/login", map[string]string{"username": "admin", "password": "mala"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = env.do(t, http.MethodPost, "/api/login", map[string]string{"username": "admin", "password": "admin1234"}, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
