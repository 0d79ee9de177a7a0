package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pago records money received against an invoice.
// MetodoPago: "efectivo" | "debito" | "credito" | "transferencia"
type Pago struct {
	Base
	FacturaID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	FechaPago  time.Time       `gorm:"not null"`
	Monto      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago string          `gorm:"type:varchar(20);not null"`
}

func (Pago) TableName() string { return "pagos" }
