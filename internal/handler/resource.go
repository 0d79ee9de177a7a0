package handler

import (
	"net/http"

	"gestionpos/internal/service"

	"github.com/gin-gonic/gin"
)

// CRUD is the set of endpoints every resource exposes.
type CRUD interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// ResourceHandler serves any ResourceService over HTTP. PUT and PATCH are
// both partial updates: fields absent from the body keep their value.
type ResourceHandler[C, U, R any] struct {
	svc service.ResourceService[C, U, R]
}

func NewResourceHandler[C, U, R any](svc service.ResourceService[C, U, R]) *ResourceHandler[C, U, R] {
	return &ResourceHandler[C, U, R]{svc: svc}
}

// List GET /api/{recurso}
func (h *ResourceHandler[C, U, R]) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /api/{recurso}
func (h *ResourceHandler[C, U, R]) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req C
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get GET /api/{recurso}/:id
func (h *ResourceHandler[C, U, R]) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT|PATCH /api/{recurso}/:id
func (h *ResourceHandler[C, U, R]) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req U
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /api/{recurso}/:id
func (h *ResourceHandler[C, U, R]) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
