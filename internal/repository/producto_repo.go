package repository

import (
	"context"

	"gestionpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository adds bulk lookups used when validating rental lines.
type ProductoRepository interface {
	Repository[model.Producto]
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Producto, error)
}

type productoRepository struct {
	Repository[model.Producto]
	db *gorm.DB
}

// NewProductoRepository deletes rental lines and incidents that reference a
// product together with it.
func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return &productoRepository{
		Repository: New[model.Producto](db, Options{
			Order:    "nombre asc",
			Preloads: []string{"Categoria"},
			BeforeDelete: func(tx *gorm.DB, id uuid.UUID) error {
				if err := tx.Where("producto_id = ?", id).Delete(&model.DetalleAlquiler{}).Error; err != nil {
					return err
				}
				return tx.Where("producto_id = ?", id).Delete(&model.Incidente{}).Error
			},
		}),
		db: db,
	}
}

func (r *productoRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Producto, error) {
	var list []model.Producto
	if len(ids) == 0 {
		return list, nil
	}
	err := r.db.WithContext(ctx).Preload("Categoria").Where("id IN ?", ids).Find(&list).Error
	return list, err
}
