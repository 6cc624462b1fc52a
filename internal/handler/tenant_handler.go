package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
)

// TenantHandler covers the super-admin tenant console and billing. The
// route guard already restricts /admin/tenants to super admins; the
// backend re-checks the role on every call anyway.
type TenantHandler struct {
	api backend.TenantAPI
}

// NewTenantHandler creates a TenantHandler.
func NewTenantHandler(api backend.TenantAPI) *TenantHandler {
	return &TenantHandler{api: api}
}

// List returns every tenant on the platform.
func (h *TenantHandler) List(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	tenants, err := h.api.ListTenants(c.Request.Context(), s.Token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tenants)
}

// Details returns the drill-down view of one tenant.
func (h *TenantHandler) Details(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid tenant id")
		return
	}

	details, err := h.api.GetTenantDetails(c.Request.Context(), s.Token, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, details)
}

// Create provisions a new tenant. The generated admin credentials in the
// response are shown once and never persisted by the gateway.
func (h *TenantHandler) Create(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	var input backend.CreateTenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name, cnpj, and plan type are required")
		return
	}

	result, err := h.api.CreateTenant(c.Request.Context(), s.Token, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, result)
}

type tenantStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// UpdateStatus activates or suspends a tenant.
func (h *TenantHandler) UpdateStatus(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid tenant id")
		return
	}

	var req tenantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "is_active is required")
		return
	}

	if err := h.api.UpdateTenantStatus(c.Request.Context(), s.Token, id, *req.IsActive); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id, "is_active": *req.IsActive})
}

// Renew extends a tenant's subscription by one billing period.
func (h *TenantHandler) Renew(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid tenant id")
		return
	}

	if err := h.api.RenewTenant(c.Request.Context(), s.Token, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id, "renewed": true})
}

// Delete removes a tenant and everything under it.
func (h *TenantHandler) Delete(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid tenant id")
		return
	}

	if err := h.api.DeleteTenant(c.Request.Context(), s.Token, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// RunBilling triggers the monthly billing cycle manually.
func (h *TenantHandler) RunBilling(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	if err := h.api.RunBillingCycle(c.Request.Context(), s.Token); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "billing cycle started"})
}
