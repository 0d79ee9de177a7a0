package service

import (
	"context"

	"gestionpos/internal/dto"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"
)

// IncidenteService is the CRUD contract for incidents.
type IncidenteService = ResourceService[dto.CrearIncidenteRequest, dto.ActualizarIncidenteRequest, dto.IncidenteResponse]

func mapIncidente(i model.Incidente) dto.IncidenteResponse {
	return dto.IncidenteResponse{
		ID:             i.ID,
		ProductoID:     i.ProductoID,
		AlquilerID:     i.AlquilerID,
		FechaIncidente: i.FechaIncidente,
		Descripcion:    i.Descripcion,
		Estado:         i.Estado,
	}
}

// NewIncidenteService never lets a payload change fecha_incidente.
func NewIncidenteService(repo repository.Repository[model.Incidente]) IncidenteService {
	return NewResourceService(repo, Schema[model.Incidente, dto.CrearIncidenteRequest, dto.ActualizarIncidenteRequest, dto.IncidenteResponse]{
		Nombre: "incidente",
		Build: func(_ context.Context, _ Caller, req dto.CrearIncidenteRequest) (*model.Incidente, error) {
			i := &model.Incidente{
				ProductoID:  req.ProductoID,
				AlquilerID:  req.AlquilerID,
				Descripcion: req.Descripcion,
				Estado:      model.IncidentePendiente,
			}
			if req.Estado != "" {
				i.Estado = req.Estado
			}
			return i, nil
		},
		Apply: func(_ context.Context, i *model.Incidente, req dto.ActualizarIncidenteRequest) error {
			if req.ProductoID != nil {
				i.ProductoID = req.ProductoID
			}
			if req.AlquilerID != nil {
				i.AlquilerID = req.AlquilerID
			}
			set(&i.Descripcion, req.Descripcion)
			set(&i.Estado, req.Estado)
			return nil
		},
		Render: mapIncidente,
	})
}
