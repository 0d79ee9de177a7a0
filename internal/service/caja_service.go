package service

import (
	"context"
	"time"

	"gestionpos/internal/dto"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"
)

// CajaService is the CRUD contract for cash register sessions.
type CajaService = ResourceService[dto.AbrirCajaRequest, dto.ActualizarCajaRequest, dto.CajaResponse]

const (
	CajaAbierta = "abierta"
	CajaCerrada = "cerrada"
)

func mapCaja(s model.SesionCaja) dto.CajaResponse {
	return dto.CajaResponse{
		ID:            s.ID,
		Empleado:      s.UsuarioID,
		FechaApertura: s.FechaApertura,
		FechaCierre:   s.FechaCierre,
		MontoInicial:  s.MontoInicial,
		MontoCierre:   s.MontoCierre,
		Estado:        s.Estado,
		Observaciones: s.Observaciones,
	}
}

// NewCajaService always assigns a new session to the caller that opens it.
// Closing a session stamps fecha_cierre.
func NewCajaService(repo repository.Repository[model.SesionCaja]) CajaService {
	return NewResourceService(repo, Schema[model.SesionCaja, dto.AbrirCajaRequest, dto.ActualizarCajaRequest, dto.CajaResponse]{
		Nombre: "sesión de caja",
		Build: func(_ context.Context, caller Caller, req dto.AbrirCajaRequest) (*model.SesionCaja, error) {
			return &model.SesionCaja{
				UsuarioID:     caller.UserID,
				MontoInicial:  req.MontoInicial.Round(2),
				Estado:        CajaAbierta,
				Observaciones: req.Observaciones,
			}, nil
		},
		Apply: func(_ context.Context, s *model.SesionCaja, req dto.ActualizarCajaRequest) error {
			if req.MontoInicial != nil {
				s.MontoInicial = req.MontoInicial.Round(2)
			}
			if req.MontoCierre != nil {
				m := req.MontoCierre.Round(2)
				s.MontoCierre = &m
			}
			if req.Observaciones != nil {
				s.Observaciones = req.Observaciones
			}
			if req.Estado != nil {
				s.Estado = *req.Estado
				switch {
				case s.Estado == CajaCerrada && s.FechaCierre == nil:
					now := time.Now()
					s.FechaCierre = &now
				case s.Estado == CajaAbierta:
					s.FechaCierre = nil
				}
			}
			return nil
		},
		Render: mapCaja,
	})
}
