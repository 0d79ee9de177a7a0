package model

import (
	"time"

	"github.com/google/uuid"
)

// Empleado is the personal profile of a staff member. Its own ID is the
// business identifier used by the employee detail endpoints; the profile may
// exist before (or without) a login account.
type Empleado struct {
	Base
	UsuarioID    *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Nombre       string     `gorm:"not null;default:''"`
	Apellido     string     `gorm:"not null;default:''"`
	DNI          string     `gorm:"not null;default:''"`
	Telefono     string     `gorm:"not null;default:''"`
	Direccion    string     `gorm:"not null;default:''"`
	FechaIngreso *time.Time `gorm:"type:date"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Empleado) TableName() string { return "empleados" }
