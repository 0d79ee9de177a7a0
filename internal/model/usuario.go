package model

import "github.com/google/uuid"

// Usuario is a login account. Deactivation flips Activo; rows are never
// removed by the employee flows.
type Usuario struct {
	Base
	Username     string `gorm:"uniqueIndex;size:150;not null"`
	Email        string `gorm:"not null;default:''"`
	PasswordHash string `gorm:"not null"`
	Activo       bool   `gorm:"not null;default:true"`

	Roles    []Rol     `gorm:"many2many:usuario_roles;"`
	Empleado *Empleado `gorm:"foreignKey:UsuarioID"`
}

func (Usuario) TableName() string { return "usuarios" }

// RolNames returns the role names in the order they were loaded.
func (u *Usuario) RolNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Nombre)
	}
	return names
}

// EmpleadoID returns the linked employee profile id, if any.
func (u *Usuario) EmpleadoID() *uuid.UUID {
	if u.Empleado == nil {
		return nil
	}
	id := u.Empleado.ID
	return &id
}
