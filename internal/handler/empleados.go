package handler

import (
	"net/http"
	"strings"

	"gestionpos/internal/apierror"
	"gestionpos/internal/dto"
	"gestionpos/internal/service"

	"github.com/gin-gonic/gin"
)

type EmpleadosHandler struct{ svc service.EmpleadoService }

func NewEmpleadosHandler(svc service.EmpleadoService) *EmpleadosHandler {
	return &EmpleadosHandler{svc: svc}
}

// CrearAdmin godoc
// @Summary Crea un usuario con rol Admin
// @Tags usuarios
// @Accept json
// @Produce json
// @Param body body dto.CrearAdminRequest true "Usuario"
// @Success 201 {object} dto.MensajeResponse
// @Failure 400 {object} apierror.ValidationError
// @Router /api/users/create/admin [post]
func (h *EmpleadosHandler) CrearAdmin(c *gin.Context) {
	var req dto.CrearAdminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearAdmin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CrearEmpleado godoc
// @Summary Crea un usuario con el rol indicado y su perfil de empleado
// @Tags usuarios
// @Accept json
// @Produce json
// @Param body body dto.CrearEmpleadoRequest true "Empleado"
// @Success 201 {object} dto.EmpleadoCreadoResponse
// @Failure 400 {object} apierror.ValidationError
// @Router /api/users/create/employee [post]
func (h *EmpleadosHandler) CrearEmpleado(c *gin.Context) {
	var req dto.CrearEmpleadoRequest
	if !bindJSON(c, &req) {
		return
	}
	// group_id is reported on its own, before any other field.
	if strings.TrimSpace(req.GroupID) == "" {
		c.JSON(http.StatusBadRequest, apierror.NewValidation(map[string]string{
			"group_id": "El campo group_id es requerido.",
		}))
		return
	}
	if !validateStruct(c, &req) {
		return
	}
	resp, err := h.svc.CrearEmpleado(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ── Colección /api/employees (Admin, id de usuario) ──────────────────────────

// Listar GET /api/employees
func (h *EmpleadosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CrearNoPermitido POST /api/employees
func (h *EmpleadosHandler) CrearNoPermitido(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, apierror.New("Use /api/users/create/employee para crear empleados."))
}

// Obtener GET /api/employees/:id
func (h *EmpleadosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerUsuario(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT|PATCH /api/employees/:id
func (h *EmpleadosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarUsuario(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /api/employees/:id
func (h *EmpleadosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarUsuario(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Detalle /api/empleados-detail (id de empleado) ───────────────────────────

// Detalle GET /api/empleados-detail/:id
func (h *EmpleadosHandler) Detalle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerEmpleado(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarDetalle PUT|PATCH /api/empleados-detail/:id
func (h *EmpleadosHandler) ActualizarDetalle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarEmpleadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarEmpleado(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Inactivar godoc
// @Summary Inactiva la cuenta de un empleado
// @Tags empleados
// @Produce json
// @Param id path string true "ID del empleado"
// @Success 200 {object} dto.EmpleadoInactivadoResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/empleados-detail/{id}/inactivar [patch]
func (h *EmpleadosHandler) Inactivar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.InactivarEmpleado(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
