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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// backdate moves a timestamp column so ordering does not depend on how fast
// the rows were inserted.
func backdate(t *testing.T, db *gorm.DB, m any, id uuid.UUID, column string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Model(m).Where("id = ?", id).UpdateColumn(column, at).Error)
}

func TestCategorias_ListByName(t *testing.T) {
	_, c := newCatalogo(t)
	ctx := context.Background()
	for _, nombre := range []string{"Pintura", "Herramientas", "Jardín"} {
		_, err := c.categorias.Create(ctx, Caller{}, dto.CrearCategoriaRequest{Nombre: nombre})
		require.NoError(t, err)
	}

	list, err := c.categorias.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Herramientas", list[0].Nombre)
	assert.Equal(t, "Jardín", list[1].Nombre)
	assert.Equal(t, "Pintura", list[2].Nombre)
}

func TestIncidentes_ListNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewIncidenteService(repository.NewIncidenteRepository(db))
	ctx := context.Background()

	primero, err := svc.Create(ctx, Caller{}, dto.CrearIncidenteRequest{Descripcion: "primero"})
	require.NoError(t, err)
	segundo, err := svc.Create(ctx, Caller{}, dto.CrearIncidenteRequest{Descripcion: "segundo"})
	require.NoError(t, err)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	backdate(t, db, &model.Incidente{}, primero.ID, "fecha_incidente", base.Add(-time.Hour))
	backdate(t, db, &model.Incidente{}, segundo.ID, "fecha_incidente", base)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "segundo", list[0].Descripcion)
	assert.Equal(t, "primero", list[1].Descripcion)
}

func TestCaja_ListMostRecentlyOpenedFirst(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCajaService(repository.NewCajaRepository(db))
	ctx := context.Background()
	caller := Caller{UserID: uuid.New()}

	vieja, err := svc.Create(ctx, caller, dto.AbrirCajaRequest{})
	require.NoError(t, err)
	nueva, err := svc.Create(ctx, caller, dto.AbrirCajaRequest{})
	require.NoError(t, err)

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	backdate(t, db, &model.SesionCaja{}, vieja.ID, "fecha_apertura", base.Add(-24*time.Hour))
	backdate(t, db, &model.SesionCaja{}, nueva.ID, "fecha_apertura", base)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, nueva.ID, list[0].ID)
	assert.Equal(t, vieja.ID, list[1].ID)
	assert.Equal(t, caller.UserID, list[0].Empleado)
}
