package repository

import (
	"context"

	"gestionpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmpleadoRepository resolves employee profiles by their own business id.
type EmpleadoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Empleado, error)
	Update(ctx context.Context, e *model.Empleado) error
}

type empleadoRepo struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository { return &empleadoRepo{db: db} }

func (r *empleadoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).Preload("Usuario.Roles").First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empleadoRepo) Update(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error
}
