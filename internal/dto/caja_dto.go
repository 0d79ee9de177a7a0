package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AbrirCajaRequest has no owner field: the session always belongs to the caller.
type AbrirCajaRequest struct {
	MontoInicial  decimal.Decimal `json:"monto_inicial" validate:"min=0"`
	Observaciones *string         `json:"observaciones"`
}

type ActualizarCajaRequest struct {
	MontoInicial  *decimal.Decimal `json:"monto_inicial" validate:"omitempty,min=0"`
	MontoCierre   *decimal.Decimal `json:"monto_cierre"  validate:"omitempty,min=0"`
	Estado        *string          `json:"estado"        validate:"omitempty,oneof=abierta cerrada"`
	Observaciones *string          `json:"observaciones"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CajaResponse struct {
	ID            uuid.UUID        `json:"id"`
	Empleado      uuid.UUID        `json:"empleado"`
	FechaApertura time.Time        `json:"fecha_apertura"`
	FechaCierre   *time.Time       `json:"fecha_cierre"`
	MontoInicial  decimal.Decimal  `json:"monto_inicial"`
	MontoCierre   *decimal.Decimal `json:"monto_cierre"`
	Estado        string           `json:"estado"`
	Observaciones *string          `json:"observaciones"`
}
