package repository

import (
	"context"

	"gestionpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RolRepository interface {
	List(ctx context.Context) ([]model.Rol, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Rol, error)
	// FindOrCreate returns the role called nombre, inserting it when missing.
	FindOrCreate(ctx context.Context, nombre string) (*model.Rol, error)
}

type rolRepo struct{ db *gorm.DB }

func NewRolRepository(db *gorm.DB) RolRepository { return &rolRepo{db: db} }

func (r *rolRepo) List(ctx context.Context) ([]model.Rol, error) {
	var roles []model.Rol
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&roles).Error
	return roles, err
}

func (r *rolRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.WithContext(ctx).First(&rol, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) FindOrCreate(ctx context.Context, nombre string) (*model.Rol, error) {
	rol := model.Rol{Nombre: nombre}
	if err := r.db.WithContext(ctx).Where(model.Rol{Nombre: nombre}).FirstOrCreate(&rol).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}
