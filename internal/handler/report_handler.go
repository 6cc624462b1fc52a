package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
)

// ReportHandler serves the home dashboard and the BI analysis screen.
type ReportHandler struct {
	api backend.ReportAPI
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(api backend.ReportAPI) *ReportHandler {
	return &ReportHandler{api: api}
}

// Dashboard returns the statistics that feed the home screen. The backend
// scopes the numbers to the caller's department when the role demands it.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	stats, err := h.api.DashboardStats(c.Request.Context(), s.Token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

type biRequest struct {
	Query   string `json:"query" binding:"required"`
	DocType string `json:"doc_type"`
}

// Analyze runs an AI business-intelligence analysis over the tenant's
// documents and returns the structured report.
func (h *ReportHandler) Analyze(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	var req biRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "an analysis query is required")
		return
	}

	report, err := h.api.BIAnalysis(c.Request.Context(), s.Token, req.Query, req.DocType)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}
