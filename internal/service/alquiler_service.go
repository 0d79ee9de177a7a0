package service

import (
	"context"
	"fmt"

	"gestionpos/internal/dto"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlquilerService is the CRUD contract for rentals and their line items.
type AlquilerService = ResourceService[dto.CrearAlquilerRequest, dto.ActualizarAlquilerRequest, dto.AlquilerResponse]

func mapAlquiler(a model.Alquiler) dto.AlquilerResponse {
	productos := make([]dto.DetalleAlquilerResponse, 0, len(a.Detalles))
	for _, d := range a.Detalles {
		linea := dto.DetalleAlquilerResponse{
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		}
		if d.Producto != nil {
			linea.Producto = mapProducto(*d.Producto)
		} else {
			linea.Producto = dto.ProductoResponse{ID: d.ProductoID}
		}
		productos = append(productos, linea)
	}
	return dto.AlquilerResponse{
		ID:                  a.ID,
		Codigo:              a.Codigo,
		FechaHoraAlquiler:   a.FechaHoraAlquiler,
		FechaHoraDevolucion: a.FechaHoraDevolucion,
		Estado:              a.Estado,
		MontoTotal:          a.MontoTotal,
		Productos:           productos,
	}
}

type alquilerSchema struct {
	repo      repository.AlquilerRepository
	productos repository.ProductoRepository
}

// NewAlquilerService computes monto_total from the line items on create. On
// update the total only changes when monto_total is sent explicitly.
func NewAlquilerService(repo repository.AlquilerRepository, productos repository.ProductoRepository) AlquilerService {
	s := &alquilerSchema{repo: repo, productos: productos}
	return NewResourceService(repository.Repository[model.Alquiler](repo), Schema[model.Alquiler, dto.CrearAlquilerRequest, dto.ActualizarAlquilerRequest, dto.AlquilerResponse]{
		Nombre: "alquiler",
		Build:  s.build,
		Apply:  s.apply,
		Render: mapAlquiler,
		Save:   s.save,
	})
}

func (s *alquilerSchema) build(ctx context.Context, _ Caller, req dto.CrearAlquilerRequest) (*model.Alquiler, error) {
	if req.FechaHoraDevolucion.Before(req.FechaHoraAlquiler) {
		return nil, Invalid("fecha_hora_devolucion", "debe ser posterior o igual a fecha_hora_alquiler")
	}
	detalles, err := s.detalles(ctx, req.Productos)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, d := range detalles {
		total = total.Add(d.Subtotal())
	}
	a := &model.Alquiler{
		Codigo:              req.Codigo,
		FechaHoraAlquiler:   req.FechaHoraAlquiler,
		FechaHoraDevolucion: req.FechaHoraDevolucion,
		Estado:              model.AlquilerActivo,
		MontoTotal:          total.Round(2),
		Detalles:            detalles,
	}
	if req.Estado != "" {
		a.Estado = req.Estado
	}
	return a, nil
}

func (s *alquilerSchema) apply(ctx context.Context, a *model.Alquiler, req dto.ActualizarAlquilerRequest) error {
	set(&a.Codigo, req.Codigo)
	set(&a.FechaHoraAlquiler, req.FechaHoraAlquiler)
	set(&a.FechaHoraDevolucion, req.FechaHoraDevolucion)
	set(&a.Estado, req.Estado)
	if a.FechaHoraDevolucion.Before(a.FechaHoraAlquiler) {
		return Invalid("fecha_hora_devolucion", "debe ser posterior o igual a fecha_hora_alquiler")
	}
	if req.MontoTotal != nil {
		a.MontoTotal = req.MontoTotal.Round(2)
	}
	if req.Productos != nil {
		detalles, err := s.detalles(ctx, req.Productos)
		if err != nil {
			return err
		}
		a.Detalles = detalles
	}
	return nil
}

func (s *alquilerSchema) save(ctx context.Context, a *model.Alquiler, req dto.ActualizarAlquilerRequest) error {
	if req.Productos != nil {
		return s.repo.ReemplazarDetalles(ctx, a, a.Detalles)
	}
	return s.repo.Update(ctx, a)
}

// detalles resolves every referenced product and builds the line items.
func (s *alquilerSchema) detalles(ctx context.Context, lineas []dto.DetalleAlquilerRequest) ([]model.DetalleAlquiler, error) {
	if len(lineas) == 0 {
		return nil, Invalid("productos", "el alquiler debe tener al menos un producto")
	}
	ids := make([]uuid.UUID, 0, len(lineas))
	seen := make(map[uuid.UUID]bool, len(lineas))
	for _, l := range lineas {
		if !seen[l.ProductoID] {
			seen[l.ProductoID] = true
			ids = append(ids, l.ProductoID)
		}
	}
	found, err := s.productos.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	existentes := make(map[uuid.UUID]bool, len(found))
	for _, p := range found {
		existentes[p.ID] = true
	}

	detalles := make([]model.DetalleAlquiler, 0, len(lineas))
	for i, l := range lineas {
		if !existentes[l.ProductoID] {
			return nil, Invalid(fmt.Sprintf("productos[%d].producto_id", i), "el producto no existe")
		}
		if l.Cantidad < 1 {
			return nil, Invalid(fmt.Sprintf("productos[%d].cantidad", i), "debe ser al menos 1")
		}
		if l.PrecioUnitario.IsNegative() {
			return nil, Invalid(fmt.Sprintf("productos[%d].precio_unitario", i), "no puede ser negativo")
		}
		detalles = append(detalles, model.DetalleAlquiler{
			Posicion:       i,
			ProductoID:     l.ProductoID,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario.Round(2),
		})
	}
	return detalles, nil
}
