package service

import (
	"context"
	"encoding/json"
	"time"

	"gestionpos/internal/dto"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"
)

type DashboardService interface {
	Resumen(ctx context.Context, caller Caller) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

// Resumen counts pending orders and open incidents for everyone. Admins also
// get this month's paid revenue and the number of active rentals.
func (s *dashboardService) Resumen(ctx context.Context, caller Caller) (*dto.DashboardResponse, error) {
	pedidos, err := s.repo.ContarPedidos(ctx, model.PedidoPendiente)
	if err != nil {
		return nil, err
	}
	incidentes, err := s.repo.ContarIncidentes(ctx, model.IncidentePendiente)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		PedidosPendientes:  pedidos,
		IncidentesAbiertos: incidentes,
		EsAdministrador:    caller.IsAdmin(),
	}
	if !resp.EsAdministrador {
		return resp, nil
	}

	desde, hasta := mesCalendario(s.now())
	total, err := s.repo.SumarFacturas(ctx, model.FacturaPagada, desde, hasta)
	if err != nil {
		return nil, err
	}
	ingresos := json.Number(total.StringFixed(2))
	resp.IngresosMes = &ingresos

	activos, err := s.repo.ContarAlquileres(ctx, model.AlquilerActivo)
	if err != nil {
		return nil, err
	}
	resp.AlquileresActivos = &activos
	return resp, nil
}

// mesCalendario returns [first day of the month, first day of next month) in
// UTC, the zone fecha_emision is stored in.
func mesCalendario(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	desde := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return desde, desde.AddDate(0, 1, 0)
}
