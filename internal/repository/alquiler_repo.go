package repository

import (
	"context"

	"gestionpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AlquilerRepository stores rentals with their line items. Reads always expand
// line items and their products.
type AlquilerRepository interface {
	Repository[model.Alquiler]
	// ReemplazarDetalles swaps every line item of the rental for detalles.
	ReemplazarDetalles(ctx context.Context, a *model.Alquiler, detalles []model.DetalleAlquiler) error
}

type alquilerRepository struct {
	Repository[model.Alquiler]
	db *gorm.DB
}

func NewAlquilerRepository(db *gorm.DB) AlquilerRepository {
	return &alquilerRepository{
		Repository: New[model.Alquiler](db, Options{
			Order:              "fecha_hora_alquiler desc",
			Preloads:           []string{"Detalles", "Detalles.Producto", "Detalles.Producto.Categoria"},
			PreloadOrder:       map[string]string{"Detalles": "posicion asc"},
			CreateAssociations: true,
			BeforeDelete: func(tx *gorm.DB, id uuid.UUID) error {
				if err := tx.Where("alquiler_id = ?", id).Delete(&model.DetalleAlquiler{}).Error; err != nil {
					return err
				}
				return tx.Where("alquiler_id = ?", id).Delete(&model.Incidente{}).Error
			},
		}),
		db: db,
	}
}

func (r *alquilerRepository) ReemplazarDetalles(ctx context.Context, a *model.Alquiler, detalles []model.DetalleAlquiler) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("alquiler_id = ?", a.ID).Delete(&model.DetalleAlquiler{}).Error; err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].AlquilerID = a.ID
		}
		if len(detalles) > 0 {
			if err := tx.Omit(clause.Associations).Create(&detalles).Error; err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(a).Error
	})
}
