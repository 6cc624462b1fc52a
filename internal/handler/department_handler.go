package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
)

// DepartmentHandler covers department ("secretaria") management.
type DepartmentHandler struct {
	api backend.DepartmentAPI
}

// NewDepartmentHandler creates a DepartmentHandler.
func NewDepartmentHandler(api backend.DepartmentAPI) *DepartmentHandler {
	return &DepartmentHandler{api: api}
}

// List returns the tenant's departments.
func (h *DepartmentHandler) List(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	departments, err := h.api.ListDepartments(c.Request.Context(), s.Token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, departments)
}

// Details returns the drill-down view of one department.
func (h *DepartmentHandler) Details(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid department id")
		return
	}

	details, err := h.api.GetDepartmentDetails(c.Request.Context(), s.Token, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, details)
}

// Create adds a department together with its manager account.
func (h *DepartmentHandler) Create(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	var input backend.CreateDepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name, responsible, email, and password are required")
		return
	}

	if err := h.api.CreateDepartment(c.Request.Context(), s.Token, input); err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, gin.H{"message": "department created"})
}

// Delete removes a department.
func (h *DepartmentHandler) Delete(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid department id")
		return
	}

	if err := h.api.DeleteDepartment(c.Request.Context(), s.Token, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
