package service

import (
	"context"
	"errors"
	"fmt"

	"gestionpos/internal/dto"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaService is the CRUD contract for product categories.
type CategoriaService = ResourceService[dto.CrearCategoriaRequest, dto.ActualizarCategoriaRequest, dto.CategoriaResponse]

// mapCategoria converts a model to a DTO response.
func mapCategoria(c model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
	}
}

// NewCategoriaService rejects duplicate names and refuses to delete a
// category that still has products.
func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	nombreLibre := func(ctx context.Context, nombre string, propio uuid.UUID) error {
		existing, err := repo.ObtenerPorNombre(ctx, nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil && existing.ID != propio {
			return fmt.Errorf("ya existe una categoría con ese nombre: %w", ErrConflict)
		}
		return nil
	}

	return NewResourceService(repository.Repository[model.Categoria](repo), Schema[model.Categoria, dto.CrearCategoriaRequest, dto.ActualizarCategoriaRequest, dto.CategoriaResponse]{
		Nombre: "categoría",
		Build: func(ctx context.Context, _ Caller, req dto.CrearCategoriaRequest) (*model.Categoria, error) {
			if err := nombreLibre(ctx, req.Nombre, uuid.Nil); err != nil {
				return nil, err
			}
			return &model.Categoria{Nombre: req.Nombre, Descripcion: req.Descripcion}, nil
		},
		Apply: func(ctx context.Context, c *model.Categoria, req dto.ActualizarCategoriaRequest) error {
			if req.Nombre != nil && *req.Nombre != c.Nombre {
				if err := nombreLibre(ctx, *req.Nombre, c.ID); err != nil {
					return err
				}
				c.Nombre = *req.Nombre
			}
			if req.Descripcion != nil {
				c.Descripcion = req.Descripcion
			}
			return nil
		},
		Render: mapCategoria,
		BeforeDelete: func(ctx context.Context, id uuid.UUID) error {
			c, err := repo.FindByID(ctx, id)
			if err != nil {
				return storeErr(err, "categoría")
			}
			n, err := repo.ContarProductos(ctx, *c)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("la categoría tiene %d productos asociados: %w", n, ErrConflict)
			}
			return nil
		},
	})
}
