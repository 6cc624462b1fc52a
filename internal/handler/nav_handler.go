package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/authz"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
)

// NavHandler answers navigation queries for the browser shell.
type NavHandler struct{}

// NewNavHandler creates a NavHandler.
func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

// Menu returns the sidebar entries visible to the current role.
func (h *NavHandler) Menu(c *gin.Context) {
	RespondOK(c, authz.NavigationEntries(middleware.GetRole(c)))
}

// Check evaluates a single route for the current role, used by the client
// router before navigating.
func (h *NavHandler) Check(c *gin.Context) {
	route := c.Query("route")
	if route == "" {
		route = "/"
	}
	RespondOK(c, authz.Decide(middleware.GetRole(c), route))
}
