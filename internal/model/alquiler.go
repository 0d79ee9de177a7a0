package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	AlquilerActivo     = "activo"
	AlquilerFinalizado = "finalizado"
	AlquilerCancelado  = "cancelado"
)

// Alquiler is a rental. Codigo is the human-facing rental code.
// MontoTotal is fixed when the rental is created from its line items.
type Alquiler struct {
	Base
	Codigo              string          `gorm:"uniqueIndex;size:20;not null"`
	FechaHoraAlquiler   time.Time       `gorm:"not null"`
	FechaHoraDevolucion time.Time       `gorm:"not null"`
	Estado              string          `gorm:"type:varchar(20);index;not null;default:'activo'"`
	MontoTotal          decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Detalles []DetalleAlquiler `gorm:"foreignKey:AlquilerID"`
}

func (Alquiler) TableName() string { return "alquileres" }

// DetalleAlquiler is one product line of a rental. Posicion keeps the order
// in which the lines were submitted.
type DetalleAlquiler struct {
	Base
	AlquilerID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Posicion       int             `gorm:"not null;default:0"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Cantidad       int             `gorm:"not null;default:1"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleAlquiler) TableName() string { return "detalles_alquiler" }

// Subtotal is Cantidad × PrecioUnitario.
func (d DetalleAlquiler) Subtotal() decimal.Decimal {
	return d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}
