package dto

import "github.com/google/uuid"

type CrearClienteRequest struct {
	Nombre    string  `json:"nombre"    validate:"required,min=1,max=100"`
	Apellido  string  `json:"apellido"  validate:"max=100"`
	DNI       string  `json:"dni"       validate:"max=20"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Telefono  string  `json:"telefono"  validate:"max=30"`
	Direccion string  `json:"direccion" validate:"max=200"`
}

type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=1,max=100"`
	Apellido  *string `json:"apellido"  validate:"omitempty,max=100"`
	DNI       *string `json:"dni"       validate:"omitempty,max=20"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=30"`
	Direccion *string `json:"direccion" validate:"omitempty,max=200"`
}

type ClienteResponse struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	DNI       string    `json:"dni"`
	Email     *string   `json:"email"`
	Telefono  string    `json:"telefono"`
	Direccion string    `json:"direccion"`
}
