package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
)

// SearchHandler serves the intelligent search screen.
type SearchHandler struct {
	api backend.DocumentAPI
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(api backend.DocumentAPI) *SearchHandler {
	return &SearchHandler{api: api}
}

// Search runs a full-text query with optional filters. Filter values of
// "Todos" or "all" mean no filter; the backend client strips them before
// they reach the wire.
func (h *SearchHandler) Search(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	filters := domain.SearchFilters{
		DocType:    c.Query("doc_type"),
		Department: c.Query("department"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	}

	results, err := h.api.Search(c.Request.Context(), s.Token, c.Query("q"), filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, results)
}

// DocumentTypes lists the distinct document types for filter dropdowns.
func (h *SearchHandler) DocumentTypes(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	types, err := h.api.DocumentTypes(c.Request.Context(), s.Token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, types)
}
