package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
)

// UserHandler covers team management within the logged-in tenant.
type UserHandler struct {
	api backend.UserAPI
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(api backend.UserAPI) *UserHandler {
	return &UserHandler{api: api}
}

// List returns the tenant's team members. Gestor sees only their own
// department; the backend applies the scoping.
func (h *UserHandler) List(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	users, err := h.api.ListUsers(c.Request.Context(), s.Token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, users)
}

// Create adds a team member.
func (h *UserHandler) Create(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	var input backend.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name, email, password, and role are required")
		return
	}
	if !input.Role.Known() {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "unknown role")
		return
	}

	if err := h.api.CreateUser(c.Request.Context(), s.Token, input); err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, gin.H{"message": "user created"})
}

// Delete removes a team member.
func (h *UserHandler) Delete(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid user id")
		return
	}

	if err := h.api.DeleteUser(c.Request.Context(), s.Token, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
