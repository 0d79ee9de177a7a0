package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SesionCaja is a cash register session. UsuarioID is always the user who
// opened it, taken from the access token.
// Estado: "abierta" | "cerrada"
type SesionCaja struct {
	Base
	UsuarioID     uuid.UUID        `gorm:"type:uuid;index;not null"`
	FechaApertura time.Time        `gorm:"autoCreateTime;index"`
	FechaCierre   *time.Time
	MontoInicial  decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	MontoCierre   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Estado        string           `gorm:"type:varchar(20);not null;default:'abierta'"`
	Observaciones *string
}

func (SesionCaja) TableName() string { return "sesiones_caja" }
