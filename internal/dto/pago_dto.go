package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CrearPagoRequest struct {
	FacturaID  uuid.UUID       `json:"factura"     validate:"required"`
	FechaPago  *time.Time      `json:"fecha_pago"`
	Monto      decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	MetodoPago string          `json:"metodo_pago" validate:"required,oneof=efectivo debito credito transferencia"`
}

type ActualizarPagoRequest struct {
	FacturaID  *uuid.UUID       `json:"factura"`
	FechaPago  *time.Time       `json:"fecha_pago"`
	Monto      *decimal.Decimal `json:"monto"       validate:"omitempty,gt=0"`
	MetodoPago *string          `json:"metodo_pago" validate:"omitempty,oneof=efectivo debito credito transferencia"`
}

type PagoResponse struct {
	ID         uuid.UUID       `json:"id"`
	FacturaID  uuid.UUID       `json:"factura"`
	FechaPago  time.Time       `json:"fecha_pago"`
	Monto      decimal.Decimal `json:"monto"`
	MetodoPago string          `json:"metodo_pago"`
}
