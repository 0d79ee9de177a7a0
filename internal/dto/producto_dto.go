package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CrearProductoRequest struct {
	Nombre       string          `json:"nombre"        validate:"required,min=1,max=200"`
	Descripcion  *string         `json:"descripcion"`
	Precio       decimal.Decimal `json:"precio"        validate:"min=0"`
	Stock        int             `json:"stock"         validate:"min=0"`
	CategoriaID  *uuid.UUID      `json:"categoria"`
	FotoProducto *string         `json:"foto_producto" validate:"omitempty,url"`
}

type ActualizarProductoRequest struct {
	Nombre       *string          `json:"nombre"        validate:"omitempty,min=1,max=200"`
	Descripcion  *string          `json:"descripcion"`
	Precio       *decimal.Decimal `json:"precio"        validate:"omitempty,min=0"`
	Stock        *int             `json:"stock"         validate:"omitempty,min=0"`
	CategoriaID  *uuid.UUID       `json:"categoria"`
	FotoProducto *string          `json:"foto_producto" validate:"omitempty,url"`
}

type ProductoResponse struct {
	ID              uuid.UUID       `json:"id"`
	Nombre          string          `json:"nombre"`
	Descripcion     *string         `json:"descripcion"`
	Precio          decimal.Decimal `json:"precio"`
	Stock           int             `json:"stock"`
	CategoriaID     *uuid.UUID      `json:"categoria"`
	CategoriaNombre *string         `json:"categoria_nombre"`
	FotoProducto    *string         `json:"foto_producto"`
}
