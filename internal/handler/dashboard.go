package handler

import (
	"net/http"

	"gestionpos/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumen godoc
// @Summary Resumen del panel principal
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /api/dashboard/summary [get]
func (h *DashboardHandler) Resumen(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	resp, err := h.svc.Resumen(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
