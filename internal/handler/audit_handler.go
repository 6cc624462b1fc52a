package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
)

// AuditHandler serves the audit trail screen.
type AuditHandler struct {
	api backend.AuditAPI
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(api backend.AuditAPI) *AuditHandler {
	return &AuditHandler{api: api}
}

// List returns audit log entries, newest first. Filter values of "all" or
// "Todos" mean no filter and are stripped by the backend client.
func (h *AuditHandler) List(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	filters := domain.AuditFilters{
		UserID:    c.Query("user_id"),
		Action:    c.Query("action"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Limit:     limit,
	}

	logs, err := h.api.AuditLogs(c.Request.Context(), s.Token, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, logs)
}
