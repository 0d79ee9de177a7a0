package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Factura estados. Only "pagada" invoices count as revenue.
const (
	FacturaPendiente = "pendiente"
	FacturaPagada    = "pagada"
	FacturaAnulada   = "anulada"
)

type Factura struct {
	Base
	Numero       string          `gorm:"uniqueIndex;not null"`
	PedidoID     *uuid.UUID      `gorm:"type:uuid;index"`
	ClienteID    *uuid.UUID      `gorm:"type:uuid;index"`
	FechaEmision time.Time       `gorm:"type:date;index;not null"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado       string          `gorm:"type:varchar(20);index;not null;default:'pendiente'"`

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

func (Factura) TableName() string { return "facturas" }
