package dto

import "encoding/json"

// DashboardResponse: the admin-only fields are omitted for other callers.
// IngresosMes is a JSON number with exactly two decimals.
type DashboardResponse struct {
	PedidosPendientes  int64        `json:"pedidos_pendientes"`
	IncidentesAbiertos int64        `json:"incidentes_abiertos"`
	EsAdministrador    bool         `json:"es_administrador"`
	IngresosMes        *json.Number `json:"ingresos_mes,omitempty"`
	AlquileresActivos  *int64       `json:"alquileres_activos,omitempty"`
}
