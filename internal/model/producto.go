package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is an item that can be sold or rented.
type Producto struct {
	Base
	Nombre       string `gorm:"index;not null"`
	Descripcion  *string
	Precio       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock        int             `gorm:"not null;default:0"`
	CategoriaID  *uuid.UUID      `gorm:"type:uuid;index"`
	FotoProducto *string

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Producto) TableName() string { return "productos" }
