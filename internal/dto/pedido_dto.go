package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CrearPedidoRequest struct {
	ClienteID     uuid.UUID       `json:"cliente"       validate:"required"`
	FechaPedido   *time.Time      `json:"fecha_pedido"`
	Estado        string          `json:"estado"        validate:"omitempty,oneof=pendiente en_proceso entregado cancelado"`
	Total         decimal.Decimal `json:"total"         validate:"min=0"`
	Observaciones *string         `json:"observaciones"`
}

type ActualizarPedidoRequest struct {
	ClienteID     *uuid.UUID       `json:"cliente"`
	FechaPedido   *time.Time       `json:"fecha_pedido"`
	Estado        *string          `json:"estado"        validate:"omitempty,oneof=pendiente en_proceso entregado cancelado"`
	Total         *decimal.Decimal `json:"total"         validate:"omitempty,min=0"`
	Observaciones *string          `json:"observaciones"`
}

type PedidoResponse struct {
	ID            uuid.UUID       `json:"id"`
	ClienteID     uuid.UUID       `json:"cliente"`
	FechaPedido   time.Time       `json:"fecha_pedido"`
	Estado        string          `json:"estado"`
	Total         decimal.Decimal `json:"total"`
	Observaciones *string         `json:"observaciones"`
}
