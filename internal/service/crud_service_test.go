package service

import (
	"context"
	"testing"
	"time"

	"gestionpos/internal/dto"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"
	"gestionpos/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type catalogo struct {
	categorias CategoriaService
	productos  ProductoService
	alquileres AlquilerService
}

func newCatalogo(t *testing.T) (*gorm.DB, catalogo) {
	t.Helper()
	db := testutil.NewDB(t)
	catRepo := repository.NewCategoriaRepository(db)
	prodRepo := repository.NewProductoRepository(db)
	return db, catalogo{
		categorias: NewCategoriaService(catRepo),
		productos:  NewProductoService(prodRepo, catRepo),
		alquileres: NewAlquilerService(repository.NewAlquilerRepository(db), prodRepo),
	}
}

func TestCategoria_CRUD(t *testing.T) {
	_, c := newCatalogo(t)
	ctx := context.Background()

	creada, err := c.categorias.Create(ctx, Caller{}, dto.CrearCategoriaRequest{Nombre: "Herramientas"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, creada.ID)

	nombre := "Jardín"
	actualizada, err := c.categorias.Update(ctx, creada.ID, dto.ActualizarCategoriaRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Jardín", actualizada.Nombre)

	list, err := c.categorias.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, c.categorias.Delete(ctx, creada.ID))
	_, err = c.categorias.Get(ctx, creada.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, c.categorias.Delete(ctx, creada.ID), ErrNotFound)
}

func TestCategoria_DuplicateNameConflict(t *testing.T) {
	_, c := newCatalogo(t)
	ctx := context.Background()

	_, err := c.categorias.Create(ctx, Caller{}, dto.CrearCategoriaRequest{Nombre: "Tools"})
	require.NoError(t, err)
	_, err = c.categorias.Create(ctx, Caller{}, dto.CrearCategoriaRequest{Nombre: "tools"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCategoria_DeleteWithProductsConflict(t *testing.T) {
	_, c := newCatalogo(t)
	ctx := context.Background()

	cat, err := c.categorias.Create(ctx, Caller{}, dto.CrearCategoriaRequest{Nombre: "Tools"})
	require.NoError(t, err)
	_, err = c.productos.Create(ctx, Caller{}, dto.CrearProductoRequest{Nombre: "Drill", CategoriaID: &cat.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, c.categorias.Delete(ctx, cat.ID), ErrConflict)
}

func TestProducto_UnknownCategory(t *testing.T) {
	_, c := newCatalogo(t)
	missing := uuid.New()

	_, err := c.productos.Create(context.Background(), Caller{}, dto.CrearProductoRequest{Nombre: "Drill", CategoriaID: &missing})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Fields, "categoria")
}

func TestProducto_CategoryNameInResponse(t *testing.T) {
	_, c := newCatalogo(t)
	ctx := context.Background()
	cat, err := c.categorias.Create(ctx, Caller{}, dto.CrearCategoriaRequest{Nombre: "Tools"})
	require.NoError(t, err)

	p, err := c.productos.Create(ctx, Caller{}, dto.CrearProductoRequest{
		Nombre: "Drill", Precio: decimal.RequireFromString("10.005"), CategoriaID: &cat.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, p.CategoriaNombre)
	assert.Equal(t, "Tools", *p.CategoriaNombre)
	assert.True(t, p.Precio.Equal(decimal.RequireFromString("10.01")))
}

func TestAlquiler_TotalFromLines(t *testing.T) {
	_, c := newCatalogo(t)
	ctx := context.Background()
	drill, err := c.productos.Create(ctx, Caller{}, dto.CrearProductoRequest{Nombre: "Drill"})
	require.NoError(t, err)
	saw, err := c.productos.Create(ctx, Caller{}, dto.CrearProductoRequest{Nombre: "Saw"})
	require.NoError(t, err)

	inicio := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	a, err := c.alquileres.Create(ctx, Caller{}, dto.CrearAlquilerRequest{
		Codigo:              "ALQ-1",
		FechaHoraAlquiler:   inicio,
		FechaHoraDevolucion: inicio.Add(48 * time.Hour),
		Productos: []dto.DetalleAlquilerRequest{
			{ProductoID: drill.ID, Cantidad: 2, PrecioUnitario: decimal.RequireFromString("10.00")},
			{ProductoID: saw.ID, Cantidad: 1, PrecioUnitario: decimal.RequireFromString("5.50")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.AlquilerActivo, a.Estado)
	assert.True(t, a.MontoTotal.Equal(decimal.RequireFromString("25.50")), a.MontoTotal.String())
	require.Len(t, a.Productos, 2)

	// Replacing lines keeps the stored total unless monto_total is sent.
	upd, err := c.alquileres.Update(ctx, a.ID, dto.ActualizarAlquilerRequest{
		Productos: []dto.DetalleAlquilerRequest{{ProductoID: saw.ID, Cantidad: 3, PrecioUnitario: decimal.RequireFromString("5.50")}},
	})
	require.NoError(t, err)
	require.Len(t, upd.Productos, 1)
	assert.Equal(t, "Saw", upd.Productos[0].Producto.Nombre)
	assert.True(t, upd.MontoTotal.Equal(decimal.RequireFromString("25.50")))
}

func TestAlquiler_LinesKeepSubmittedOrder(t *testing.T) {
	_, c := newCatalogo(t)
	ctx := context.Background()
	var ids []uuid.UUID
	for _, nombre := range []string{"Sierra", "Amoladora", "Taladro", "Martillo"} {
		p, err := c.productos.Create(ctx, Caller{}, dto.CrearProductoRequest{Nombre: nombre})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	lineas := make([]dto.DetalleAlquilerRequest, 0, len(ids))
	for _, id := range ids {
		lineas = append(lineas, dto.DetalleAlquilerRequest{ProductoID: id, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(1)})
	}
	inicio := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	a, err := c.alquileres.Create(ctx, Caller{}, dto.CrearAlquilerRequest{
		Codigo:              "ALQ-ORD",
		FechaHoraAlquiler:   inicio,
		FechaHoraDevolucion: inicio.Add(time.Hour),
		Productos:           lineas,
	})
	require.NoError(t, err)

	got, err := c.alquileres.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got.Productos, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, got.Productos[i].Producto.ID, "linea %d", i)
	}

	// Replaced lines follow the new submission order.
	upd, err := c.alquileres.Update(ctx, a.ID, dto.ActualizarAlquilerRequest{
		Productos: []dto.DetalleAlquilerRequest{lineas[3], lineas[0]},
	})
	require.NoError(t, err)
	require.Len(t, upd.Productos, 2)
	assert.Equal(t, ids[3], upd.Productos[0].Producto.ID)
	assert.Equal(t, ids[0], upd.Productos[1].Producto.ID)
}

func TestAlquiler_Validation(t *testing.T) {
	_, c := newCatalogo(t)
	ctx := context.Background()
	drill, err := c.productos.Create(ctx, Caller{}, dto.CrearProductoRequest{Nombre: "Drill"})
	require.NoError(t, err)
	inicio := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		req   dto.CrearAlquilerRequest
		campo string
	}{
		{
			name: "devolucion antes del alquiler",
			req: dto.CrearAlquilerRequest{
				Codigo: "A", FechaHoraAlquiler: inicio, FechaHoraDevolucion: inicio.Add(-time.Hour),
				Productos: []dto.DetalleAlquilerRequest{{ProductoID: drill.ID, Cantidad: 1}},
			},
			campo: "fecha_hora_devolucion",
		},
		{
			name:  "sin productos",
			req:   dto.CrearAlquilerRequest{Codigo: "B", FechaHoraAlquiler: inicio, FechaHoraDevolucion: inicio},
			campo: "productos",
		},
		{
			name: "producto inexistente",
			req: dto.CrearAlquilerRequest{
				Codigo: "C", FechaHoraAlquiler: inicio, FechaHoraDevolucion: inicio,
				Productos: []dto.DetalleAlquilerRequest{{ProductoID: uuid.New(), Cantidad: 1}},
			},
			campo: "productos[0].producto_id",
		},
		{
			name: "precio negativo",
			req: dto.CrearAlquilerRequest{
				Codigo: "D", FechaHoraAlquiler: inicio, FechaHoraDevolucion: inicio,
				Productos: []dto.DetalleAlquilerRequest{{ProductoID: drill.ID, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(-1)}},
			},
			campo: "productos[0].precio_unitario",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.alquileres.Create(ctx, Caller{}, tc.req)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Contains(t, fe.Fields, tc.campo)
		})
	}

	list, err := c.alquileres.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAlquiler_DeleteCascades(t *testing.T) {
	db, c := newCatalogo(t)
	ctx := context.Background()
	drill, err := c.productos.Create(ctx, Caller{}, dto.CrearProductoRequest{Nombre: "Drill"})
	require.NoError(t, err)
	inicio := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	a, err := c.alquileres.Create(ctx, Caller{}, dto.CrearAlquilerRequest{
		Codigo: "ALQ-9", FechaHoraAlquiler: inicio, FechaHoraDevolucion: inicio,
		Productos: []dto.DetalleAlquilerRequest{{ProductoID: drill.ID, Cantidad: 1}},
	})
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Incidente{AlquilerID: &a.ID, Descripcion: "faltante"}).Error)

	require.NoError(t, c.alquileres.Delete(ctx, a.ID))

	var detalles, incidentes int64
	require.NoError(t, db.Model(&model.DetalleAlquiler{}).Count(&detalles).Error)
	require.NoError(t, db.Model(&model.Incidente{}).Count(&incidentes).Error)
	assert.Zero(t, detalles)
	assert.Zero(t, incidentes)
}
