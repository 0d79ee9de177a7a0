package model

// Cliente holds customer contact data.
type Cliente struct {
	Base
	Nombre    string `gorm:"not null"`
	Apellido  string `gorm:"not null;default:''"`
	DNI       string `gorm:"index;not null;default:''"`
	Email     *string
	Telefono  string `gorm:"not null;default:''"`
	Direccion string `gorm:"not null;default:''"`
}

func (Cliente) TableName() string { return "clientes" }
