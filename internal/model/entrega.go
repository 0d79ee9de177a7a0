package model

import (
	"time"

	"github.com/google/uuid"
)

type Entrega struct {
	Base
	PedidoID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	EmpleadoID   *uuid.UUID `gorm:"type:uuid;index"`
	FechaEntrega *time.Time
	Direccion    string `gorm:"not null;default:''"`
	Estado       string `gorm:"type:varchar(20);not null;default:'pendiente'"`
}

func (Entrega) TableName() string { return "entregas" }
