package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pedido estados.
const (
	PedidoPendiente = "pendiente"
	PedidoEnProceso = "en_proceso"
	PedidoEntregado = "entregado"
	PedidoCancelado = "cancelado"
)

type Pedido struct {
	Base
	ClienteID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	FechaPedido   time.Time       `gorm:"not null"`
	Estado        string          `gorm:"type:varchar(20);index;not null;default:'pendiente'"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Observaciones *string

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

func (Pedido) TableName() string { return "pedidos" }
