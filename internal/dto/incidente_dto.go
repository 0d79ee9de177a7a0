package dto

import (
	"time"

	"github.com/google/uuid"
)

// CrearIncidenteRequest may reference a product, a rental, both or neither.
// fecha_incidente is assigned by the server.
type CrearIncidenteRequest struct {
	ProductoID  *uuid.UUID `json:"producto_id"`
	AlquilerID  *uuid.UUID `json:"alquiler_id"`
	Descripcion string     `json:"descripcion"      validate:"required,min=1"`
	Estado      string     `json:"estado_incidente" validate:"omitempty,oneof=pendiente no_resuelto resuelto"`
}

type ActualizarIncidenteRequest struct {
	ProductoID  *uuid.UUID `json:"producto_id"`
	AlquilerID  *uuid.UUID `json:"alquiler_id"`
	Descripcion *string    `json:"descripcion"      validate:"omitempty,min=1"`
	Estado      *string    `json:"estado_incidente" validate:"omitempty,oneof=pendiente no_resuelto resuelto"`
}

type IncidenteResponse struct {
	ID             uuid.UUID  `json:"id"`
	ProductoID     *uuid.UUID `json:"producto_id"`
	AlquilerID     *uuid.UUID `json:"alquiler_id"`
	FechaIncidente time.Time  `json:"fecha_incidente"`
	Descripcion    string     `json:"descripcion"`
	Estado         string     `json:"estado_incidente"`
}
