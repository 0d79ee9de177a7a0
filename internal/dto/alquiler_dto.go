package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DetalleAlquilerRequest struct {
	ProductoID     uuid.UUID       `json:"producto_id"     validate:"required"`
	Cantidad       int             `json:"cantidad"        validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"min=0"`
}

// CrearAlquilerRequest creates a rental with its line items. monto_total is
// computed from the lines.
type CrearAlquilerRequest struct {
	Codigo              string                   `json:"id_alquiler"           validate:"required,max=20"`
	FechaHoraAlquiler   time.Time                `json:"fecha_hora_alquiler"   validate:"required"`
	FechaHoraDevolucion time.Time                `json:"fecha_hora_devolucion" validate:"required"`
	Estado              string                   `json:"estado"                validate:"omitempty,oneof=activo finalizado cancelado"`
	Productos           []DetalleAlquilerRequest `json:"productos"             validate:"required,min=1,dive"`
}

// ActualizarAlquilerRequest replaces line items only when productos is sent.
type ActualizarAlquilerRequest struct {
	Codigo              *string                  `json:"id_alquiler"           validate:"omitempty,max=20"`
	FechaHoraAlquiler   *time.Time               `json:"fecha_hora_alquiler"`
	FechaHoraDevolucion *time.Time               `json:"fecha_hora_devolucion"`
	Estado              *string                  `json:"estado"                validate:"omitempty,oneof=activo finalizado cancelado"`
	MontoTotal          *decimal.Decimal         `json:"monto_total"           validate:"omitempty,min=0"`
	Productos           []DetalleAlquilerRequest `json:"productos"             validate:"omitempty,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleAlquilerResponse struct {
	Producto       ProductoResponse `json:"producto"`
	Cantidad       int              `json:"cantidad"`
	PrecioUnitario decimal.Decimal  `json:"precio_unitario"`
}

type AlquilerResponse struct {
	ID                  uuid.UUID                 `json:"id"`
	Codigo              string                    `json:"id_alquiler"`
	FechaHoraAlquiler   time.Time                 `json:"fecha_hora_alquiler"`
	FechaHoraDevolucion time.Time                 `json:"fecha_hora_devolucion"`
	Estado              string                    `json:"estado"`
	MontoTotal          decimal.Decimal           `json:"monto_total"`
	Productos           []DetalleAlquilerResponse `json:"productos"`
}
