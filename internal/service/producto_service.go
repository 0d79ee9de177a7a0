package service

import (
	"context"
	"errors"

	"gestionpos/internal/dto"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoService is the CRUD contract for products.
type ProductoService = ResourceService[dto.CrearProductoRequest, dto.ActualizarProductoRequest, dto.ProductoResponse]

func mapProducto(p model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Precio:       p.Precio,
		Stock:        p.Stock,
		CategoriaID:  p.CategoriaID,
		FotoProducto: p.FotoProducto,
	}
	if p.Categoria != nil {
		nombre := p.Categoria.Nombre
		resp.CategoriaNombre = &nombre
	}
	return resp
}

// NewProductoService validates that the referenced category exists.
func NewProductoService(repo repository.ProductoRepository, categorias repository.CategoriaRepository) ProductoService {
	categoriaExiste := func(ctx context.Context, id *uuid.UUID) error {
		if id == nil {
			return nil
		}
		if _, err := categorias.FindByID(ctx, *id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Invalid("categoria", "la categoría no existe")
			}
			return err
		}
		return nil
	}

	return NewResourceService(repository.Repository[model.Producto](repo), Schema[model.Producto, dto.CrearProductoRequest, dto.ActualizarProductoRequest, dto.ProductoResponse]{
		Nombre: "producto",
		Build: func(ctx context.Context, _ Caller, req dto.CrearProductoRequest) (*model.Producto, error) {
			if err := categoriaExiste(ctx, req.CategoriaID); err != nil {
				return nil, err
			}
			return &model.Producto{
				Nombre:       req.Nombre,
				Descripcion:  req.Descripcion,
				Precio:       req.Precio.Round(2),
				Stock:        req.Stock,
				CategoriaID:  req.CategoriaID,
				FotoProducto: req.FotoProducto,
			}, nil
		},
		Apply: func(ctx context.Context, p *model.Producto, req dto.ActualizarProductoRequest) error {
			if req.CategoriaID != nil {
				if err := categoriaExiste(ctx, req.CategoriaID); err != nil {
					return err
				}
				p.CategoriaID = req.CategoriaID
				p.Categoria = nil
			}
			if req.Nombre != nil {
				p.Nombre = *req.Nombre
			}
			if req.Descripcion != nil {
				p.Descripcion = req.Descripcion
			}
			if req.Precio != nil {
				p.Precio = req.Precio.Round(2)
			}
			if req.Stock != nil {
				p.Stock = *req.Stock
			}
			if req.FotoProducto != nil {
				p.FotoProducto = req.FotoProducto
			}
			return nil
		},
		Render: mapProducto,
	})
}
