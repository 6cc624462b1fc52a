package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// PublicHandler serves the unauthenticated share-link viewer. No session
// is involved anywhere on this path.
type PublicHandler struct {
	api backend.PublicAPI
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(api backend.PublicAPI) *PublicHandler {
	return &PublicHandler{api: api}
}

// View resolves a share token into the document's rendered pages. An
// expired or unknown token answers with LINK_EXPIRED rather than the
// generic session redirect, since there was never a session to clear.
func (h *PublicHandler) View(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "a share token is required")
		return
	}

	doc, err := h.api.PublicDocument(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrLinkExpired) {
			RespondError(c, http.StatusUnauthorized, "LINK_EXPIRED", "this share link has expired")
			return
		}
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, doc)
}
