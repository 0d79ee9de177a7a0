package repository

import (
	"gestionpos/internal/model"

	"gorm.io/gorm"
)

func NewClienteRepository(db *gorm.DB) Repository[model.Cliente] {
	return New[model.Cliente](db, Options{Order: "apellido asc, nombre asc"})
}

func NewPedidoRepository(db *gorm.DB) Repository[model.Pedido] {
	return New[model.Pedido](db, Options{Order: "fecha_pedido desc"})
}

func NewFacturaRepository(db *gorm.DB) Repository[model.Factura] {
	return New[model.Factura](db, Options{Order: "fecha_emision desc", Preloads: []string{"Cliente"}})
}

func NewEntregaRepository(db *gorm.DB) Repository[model.Entrega] {
	return New[model.Entrega](db, Options{Order: "created_at desc"})
}

func NewPagoRepository(db *gorm.DB) Repository[model.Pago] {
	return New[model.Pago](db, Options{Order: "fecha_pago desc"})
}

// NewIncidenteRepository lists the most recent incidents first.
func NewIncidenteRepository(db *gorm.DB) Repository[model.Incidente] {
	return New[model.Incidente](db, Options{Order: "fecha_incidente desc"})
}

// NewCajaRepository lists the most recently opened sessions first.
func NewCajaRepository(db *gorm.DB) Repository[model.SesionCaja] {
	return New[model.SesionCaja](db, Options{Order: "fecha_apertura desc"})
}
