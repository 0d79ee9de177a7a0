package infra

import (
	"context"
	"embed"
	"fmt"

	"gestionpos/internal/model"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// NewDatabase opens the Postgres pool. Driver errors are translated into
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated so services can map them.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	return db, nil
}

// Migrate runs a goose command (up, down, status, ...) against the embedded
// SQL migrations. The schema is owned by these files, not by AutoMigrate.
func Migrate(ctx context.Context, db *gorm.DB, command string, args ...string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.RunContext(ctx, command, sqlDB, "migrations", args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// Models lists every table model, in dependency order.
func Models() []any {
	return []any{
		&model.Rol{},
		&model.Usuario{},
		&model.Empleado{},
		&model.Categoria{},
		&model.Producto{},
		&model.Cliente{},
		&model.Pedido{},
		&model.Factura{},
		&model.Entrega{},
		&model.Pago{},
		&model.Alquiler{},
		&model.DetalleAlquiler{},
		&model.Incidente{},
		&model.SesionCaja{},
	}
}

// AutoMigrate builds the schema from the models. Used by tests running on
// SQLite, where the Postgres migrations do not apply.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
