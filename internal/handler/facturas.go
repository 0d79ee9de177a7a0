package handler

import (
	"fmt"
	"net/http"

	"gestionpos/internal/dto"
	"gestionpos/internal/service"

	"github.com/gin-gonic/gin"
)

// FacturasHandler serves invoice documents. Invoice CRUD goes through the
// generic ResourceHandler.
type FacturasHandler struct{ svc service.FacturaDocumentosService }

func NewFacturasHandler(svc service.FacturaDocumentosService) *FacturasHandler {
	return &FacturasHandler{svc: svc}
}

// PDF GET /api/facturas/:id/pdf
func (h *FacturasHandler) PDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	nombre, pdf, err := h.svc.PDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, nombre))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Enviar godoc
// @Summary Envía la factura en PDF por e-mail
// @Tags facturas
// @Accept json
// @Produce json
// @Param id path string true "ID de la factura"
// @Param body body dto.EnviarFacturaRequest true "Destinatario"
// @Success 200 {object} dto.MensajeResponse
// @Failure 502 {object} apierror.APIError
// @Failure 503 {object} apierror.APIError
// @Router /api/facturas/{id}/enviar [post]
func (h *FacturasHandler) Enviar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.EnviarFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Enviar(c.Request.Context(), id, req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Message: "Factura enviada a " + req.Email})
}
