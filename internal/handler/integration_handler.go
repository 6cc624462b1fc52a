package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
)

// IntegrationHandler manages machine-to-machine API keys.
type IntegrationHandler struct {
	api backend.IntegrationAPI
}

// NewIntegrationHandler creates an IntegrationHandler.
func NewIntegrationHandler(api backend.IntegrationAPI) *IntegrationHandler {
	return &IntegrationHandler{api: api}
}

// List returns the tenant's API keys. Secrets are not included; only the
// creation response ever carries the full key.
func (h *IntegrationHandler) List(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	keys, err := h.api.ListIntegrationKeys(c.Request.Context(), s.Token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, keys)
}

type createKeyRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create issues a new API key. The full secret appears only in this
// response.
func (h *IntegrationHandler) Create(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	var req createKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "a key name is required")
		return
	}

	key, err := h.api.CreateIntegrationKey(c.Request.Context(), s.Token, req.Name)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, key)
}

// Revoke deactivates an API key.
func (h *IntegrationHandler) Revoke(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid key id")
		return
	}

	if err := h.api.RevokeIntegrationKey(c.Request.Context(), s.Token, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"revoked": id})
}
