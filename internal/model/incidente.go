package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	IncidentePendiente  = "pendiente"
	IncidenteNoResuelto = "no_resuelto"
	IncidenteResuelto   = "resuelto"
)

// Incidente reports a problem with a product and/or a rental. FechaIncidente
// is stamped on insert and never changes afterwards.
type Incidente struct {
	Base
	ProductoID     *uuid.UUID `gorm:"type:uuid;index"`
	AlquilerID     *uuid.UUID `gorm:"type:uuid;index"`
	FechaIncidente time.Time  `gorm:"autoCreateTime;index"`
	Descripcion    string     `gorm:"type:text;not null"`
	Estado         string     `gorm:"type:varchar(20);index;not null;default:'pendiente'"`
}

func (Incidente) TableName() string { return "incidentes" }
