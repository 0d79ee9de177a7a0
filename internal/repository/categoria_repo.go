package repository

import (
	"context"

	"gestionpos/internal/model"

	"gorm.io/gorm"
)

// CategoriaRepository adds name lookups to the generic CRUD contract.
type CategoriaRepository interface {
	Repository[model.Categoria]
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	ContarProductos(ctx context.Context, categoria model.Categoria) (int64, error)
}

type categoriaRepository struct {
	Repository[model.Categoria]
	db *gorm.DB
}

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{
		Repository: New[model.Categoria](db, Options{Order: "nombre asc"}),
		db:         db,
	}
}

func (r *categoriaRepository) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) ContarProductos(ctx context.Context, categoria model.Categoria) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Where("categoria_id = ?", categoria.ID).Count(&n).Error
	return n, err
}
