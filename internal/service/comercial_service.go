package service

import (
	"context"
	"time"

	"gestionpos/internal/dto"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"
)

// Resources without business rules beyond payload validation: clients,
// orders, invoices, deliveries and payments.

type (
	ClienteService = ResourceService[dto.CrearClienteRequest, dto.ActualizarClienteRequest, dto.ClienteResponse]
	PedidoService  = ResourceService[dto.CrearPedidoRequest, dto.ActualizarPedidoRequest, dto.PedidoResponse]
	FacturaService = ResourceService[dto.CrearFacturaRequest, dto.ActualizarFacturaRequest, dto.FacturaResponse]
	EntregaService = ResourceService[dto.CrearEntregaRequest, dto.ActualizarEntregaRequest, dto.EntregaResponse]
	PagoService    = ResourceService[dto.CrearPagoRequest, dto.ActualizarPagoRequest, dto.PagoResponse]
)

// set copies *src into dst when the field was sent.
func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func parseFecha(campo, v string) (time.Time, error) {
	t, err := time.Parse(dto.FormatoFecha, v)
	if err != nil {
		return time.Time{}, Invalid(campo, "formato de fecha invalido, se espera AAAA-MM-DD")
	}
	return t, nil
}

// ── Clientes ─────────────────────────────────────────────────────────────────

func mapCliente(c model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		DNI:       c.DNI,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}

func NewClienteService(repo repository.Repository[model.Cliente]) ClienteService {
	return NewResourceService(repo, Schema[model.Cliente, dto.CrearClienteRequest, dto.ActualizarClienteRequest, dto.ClienteResponse]{
		Nombre: "cliente",
		Build: func(_ context.Context, _ Caller, req dto.CrearClienteRequest) (*model.Cliente, error) {
			return &model.Cliente{
				Nombre:    req.Nombre,
				Apellido:  req.Apellido,
				DNI:       req.DNI,
				Email:     req.Email,
				Telefono:  req.Telefono,
				Direccion: req.Direccion,
			}, nil
		},
		Apply: func(_ context.Context, c *model.Cliente, req dto.ActualizarClienteRequest) error {
			set(&c.Nombre, req.Nombre)
			set(&c.Apellido, req.Apellido)
			set(&c.DNI, req.DNI)
			set(&c.Telefono, req.Telefono)
			set(&c.Direccion, req.Direccion)
			if req.Email != nil {
				c.Email = req.Email
			}
			return nil
		},
		Render: mapCliente,
	})
}

// ── Pedidos ──────────────────────────────────────────────────────────────────

func mapPedido(p model.Pedido) dto.PedidoResponse {
	return dto.PedidoResponse{
		ID:            p.ID,
		ClienteID:     p.ClienteID,
		FechaPedido:   p.FechaPedido,
		Estado:        p.Estado,
		Total:         p.Total,
		Observaciones: p.Observaciones,
	}
}

func NewPedidoService(repo repository.Repository[model.Pedido]) PedidoService {
	return NewResourceService(repo, Schema[model.Pedido, dto.CrearPedidoRequest, dto.ActualizarPedidoRequest, dto.PedidoResponse]{
		Nombre: "pedido",
		Build: func(_ context.Context, _ Caller, req dto.CrearPedidoRequest) (*model.Pedido, error) {
			p := &model.Pedido{
				ClienteID:     req.ClienteID,
				FechaPedido:   time.Now(),
				Estado:        model.PedidoPendiente,
				Total:         req.Total.Round(2),
				Observaciones: req.Observaciones,
			}
			if req.FechaPedido != nil {
				p.FechaPedido = *req.FechaPedido
			}
			if req.Estado != "" {
				p.Estado = req.Estado
			}
			return p, nil
		},
		Apply: func(_ context.Context, p *model.Pedido, req dto.ActualizarPedidoRequest) error {
			if req.ClienteID != nil {
				p.ClienteID = *req.ClienteID
				p.Cliente = nil
			}
			set(&p.FechaPedido, req.FechaPedido)
			set(&p.Estado, req.Estado)
			if req.Total != nil {
				p.Total = req.Total.Round(2)
			}
			if req.Observaciones != nil {
				p.Observaciones = req.Observaciones
			}
			return nil
		},
		Render: mapPedido,
	})
}

// ── Facturas ─────────────────────────────────────────────────────────────────

func mapFactura(f model.Factura) dto.FacturaResponse {
	return dto.FacturaResponse{
		ID:           f.ID,
		Numero:       f.Numero,
		PedidoID:     f.PedidoID,
		ClienteID:    f.ClienteID,
		FechaEmision: f.FechaEmision.Format(dto.FormatoFecha),
		Total:        f.Total,
		Estado:       f.Estado,
	}
}

func NewFacturaService(repo repository.Repository[model.Factura]) FacturaService {
	return NewResourceService(repo, Schema[model.Factura, dto.CrearFacturaRequest, dto.ActualizarFacturaRequest, dto.FacturaResponse]{
		Nombre: "factura",
		Build: func(_ context.Context, _ Caller, req dto.CrearFacturaRequest) (*model.Factura, error) {
			fecha, err := parseFecha("fecha_emision", req.FechaEmision)
			if err != nil {
				return nil, err
			}
			f := &model.Factura{
				Numero:       req.Numero,
				PedidoID:     req.PedidoID,
				ClienteID:    req.ClienteID,
				FechaEmision: fecha,
				Total:        req.Total.Round(2),
				Estado:       model.FacturaPendiente,
			}
			if req.Estado != "" {
				f.Estado = req.Estado
			}
			return f, nil
		},
		Apply: func(_ context.Context, f *model.Factura, req dto.ActualizarFacturaRequest) error {
			if req.FechaEmision != nil {
				fecha, err := parseFecha("fecha_emision", *req.FechaEmision)
				if err != nil {
					return err
				}
				f.FechaEmision = fecha
			}
			set(&f.Numero, req.Numero)
			set(&f.Estado, req.Estado)
			if req.PedidoID != nil {
				f.PedidoID = req.PedidoID
			}
			if req.ClienteID != nil {
				f.ClienteID = req.ClienteID
				f.Cliente = nil
			}
			if req.Total != nil {
				f.Total = req.Total.Round(2)
			}
			return nil
		},
		Render: mapFactura,
	})
}

// ── Entregas ─────────────────────────────────────────────────────────────────

func mapEntrega(e model.Entrega) dto.EntregaResponse {
	return dto.EntregaResponse{
		ID:           e.ID,
		PedidoID:     e.PedidoID,
		EmpleadoID:   e.EmpleadoID,
		FechaEntrega: e.FechaEntrega,
		Direccion:    e.Direccion,
		Estado:       e.Estado,
	}
}

func NewEntregaService(repo repository.Repository[model.Entrega]) EntregaService {
	return NewResourceService(repo, Schema[model.Entrega, dto.CrearEntregaRequest, dto.ActualizarEntregaRequest, dto.EntregaResponse]{
		Nombre: "entrega",
		Build: func(_ context.Context, _ Caller, req dto.CrearEntregaRequest) (*model.Entrega, error) {
			e := &model.Entrega{
				PedidoID:     req.PedidoID,
				EmpleadoID:   req.EmpleadoID,
				FechaEntrega: req.FechaEntrega,
				Direccion:    req.Direccion,
				Estado:       "pendiente",
			}
			if req.Estado != "" {
				e.Estado = req.Estado
			}
			return e, nil
		},
		Apply: func(_ context.Context, e *model.Entrega, req dto.ActualizarEntregaRequest) error {
			set(&e.PedidoID, req.PedidoID)
			set(&e.Direccion, req.Direccion)
			set(&e.Estado, req.Estado)
			if req.EmpleadoID != nil {
				e.EmpleadoID = req.EmpleadoID
			}
			if req.FechaEntrega != nil {
				e.FechaEntrega = req.FechaEntrega
			}
			return nil
		},
		Render: mapEntrega,
	})
}

// ── Pagos ────────────────────────────────────────────────────────────────────

func mapPago(p model.Pago) dto.PagoResponse {
	return dto.PagoResponse{
		ID:         p.ID,
		FacturaID:  p.FacturaID,
		FechaPago:  p.FechaPago,
		Monto:      p.Monto,
		MetodoPago: p.MetodoPago,
	}
}

func NewPagoService(repo repository.Repository[model.Pago]) PagoService {
	return NewResourceService(repo, Schema[model.Pago, dto.CrearPagoRequest, dto.ActualizarPagoRequest, dto.PagoResponse]{
		Nombre: "pago",
		Build: func(_ context.Context, _ Caller, req dto.CrearPagoRequest) (*model.Pago, error) {
			p := &model.Pago{
				FacturaID:  req.FacturaID,
				FechaPago:  time.Now(),
				Monto:      req.Monto.Round(2),
				MetodoPago: req.MetodoPago,
			}
			if req.FechaPago != nil {
				p.FechaPago = *req.FechaPago
			}
			return p, nil
		},
		Apply: func(_ context.Context, p *model.Pago, req dto.ActualizarPagoRequest) error {
			set(&p.FacturaID, req.FacturaID)
			set(&p.FechaPago, req.FechaPago)
			set(&p.MetodoPago, req.MetodoPago)
			if req.Monto != nil {
				p.Monto = req.Monto.Round(2)
			}
			return nil
		},
		Render: mapPago,
	})
}
