package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CrearFacturaRequest struct {
	Numero       string          `json:"numero"        validate:"required,max=30"`
	PedidoID     *uuid.UUID      `json:"pedido"`
	ClienteID    *uuid.UUID      `json:"cliente"`
	FechaEmision string          `json:"fecha_emision" validate:"required,datetime=2006-01-02"`
	Total        decimal.Decimal `json:"total"         validate:"min=0"`
	Estado       string          `json:"estado"        validate:"omitempty,oneof=pendiente pagada anulada"`
}

type ActualizarFacturaRequest struct {
	Numero       *string          `json:"numero"        validate:"omitempty,max=30"`
	PedidoID     *uuid.UUID       `json:"pedido"`
	ClienteID    *uuid.UUID       `json:"cliente"`
	FechaEmision *string          `json:"fecha_emision" validate:"omitempty,datetime=2006-01-02"`
	Total        *decimal.Decimal `json:"total"         validate:"omitempty,min=0"`
	Estado       *string          `json:"estado"        validate:"omitempty,oneof=pendiente pagada anulada"`
}

type FacturaResponse struct {
	ID           uuid.UUID       `json:"id"`
	Numero       string          `json:"numero"`
	PedidoID     *uuid.UUID      `json:"pedido"`
	ClienteID    *uuid.UUID      `json:"cliente"`
	FechaEmision string          `json:"fecha_emision"`
	Total        decimal.Decimal `json:"total"`
	Estado       string          `json:"estado"`
}

// EnviarFacturaRequest asks for the invoice PDF to be e-mailed.
type EnviarFacturaRequest struct {
	Email string `json:"email" validate:"required,email"`
}
