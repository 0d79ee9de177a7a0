package dto

import (
	"time"

	"github.com/google/uuid"
)

type CrearEntregaRequest struct {
	PedidoID     uuid.UUID  `json:"pedido"        validate:"required"`
	EmpleadoID   *uuid.UUID `json:"empleado"`
	FechaEntrega *time.Time `json:"fecha_entrega"`
	Direccion    string     `json:"direccion"     validate:"max=200"`
	Estado       string     `json:"estado"        validate:"omitempty,oneof=pendiente en_camino entregada"`
}

type ActualizarEntregaRequest struct {
	PedidoID     *uuid.UUID `json:"pedido"`
	EmpleadoID   *uuid.UUID `json:"empleado"`
	FechaEntrega *time.Time `json:"fecha_entrega"`
	Direccion    *string    `json:"direccion"     validate:"omitempty,max=200"`
	Estado       *string    `json:"estado"        validate:"omitempty,oneof=pendiente en_camino entregada"`
}

type EntregaResponse struct {
	ID           uuid.UUID  `json:"id"`
	PedidoID     uuid.UUID  `json:"pedido"`
	EmpleadoID   *uuid.UUID `json:"empleado"`
	FechaEntrega *time.Time `json:"fecha_entrega"`
	Direccion    string     `json:"direccion"`
	Estado       string     `json:"estado"`
}
