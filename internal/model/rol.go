package model

// Role names checked by the authorization middleware.
const (
	RolAdmin    = "Admin"
	RolEmpleado = "Empleado"
)

// Rol is a named permission bucket assigned to users.
type Rol struct {
	Base
	Nombre string `gorm:"uniqueIndex;size:150;not null"`
}

func (Rol) TableName() string { return "roles" }
