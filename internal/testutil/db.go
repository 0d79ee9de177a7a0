// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"testing"

	"gestionpos/internal/infra"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private SQLite database in memory with the full schema.
// A single connection keeps every query on the same in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.AutoMigrate(db))
	return db
}

// SeedRoles inserts the Admin and Empleado roles.
func SeedRoles(t *testing.T, db *gorm.DB) (admin, empleado model.Rol) {
	t.Helper()
	roles := repository.NewRolRepository(db)
	a, err := roles.FindOrCreate(t.Context(), model.RolAdmin)
	require.NoError(t, err)
	e, err := roles.FindOrCreate(t.Context(), model.RolEmpleado)
	require.NoError(t, err)
	return *a, *e
}

// SeedUser stores an active account holding roles. When withProfile is set a
// linked employee profile is created too.
func SeedUser(t *testing.T, db *gorm.DB, username, passwordHash string, withProfile bool, roles ...model.Rol) *model.Usuario {
	t.Helper()
	u := &model.Usuario{Username: username, PasswordHash: passwordHash, Activo: true}
	var emp *model.Empleado
	if withProfile {
		emp = &model.Empleado{Nombre: username}
	}
	require.NoError(t, repository.NewUsuarioRepository(db).CrearConRoles(t.Context(), u, roles, emp))
	u.Roles = roles
	u.Empleado = emp
	return u
}
