package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/authz"
)

// RouteGuard applies the authz policy table to every request. Violations
// answer with a 302 to the policy's redirect target for page navigations,
// or a JSON 401/403 for fetch-style requests so the browser layer can
// clear its state and navigate itself.
//
// This guard is a UX convenience, not access control: the backend
// re-checks authorization on every API call regardless of what the
// gateway lets through.
func RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		// API paths mirror page routes under an /api prefix; the policy
		// table speaks page routes.
		route := strings.TrimPrefix(c.Request.URL.Path, "/api")
		if route == "" {
			route = "/"
		}
		decision := authz.Decide(GetRole(c), route)
		if decision.Accessible {
			c.Next()
			return
		}

		if wantsJSON(c) {
			status := http.StatusForbidden
			if GetSession(c) == nil {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, gin.H{
				"success":  false,
				"error":    gin.H{"code": "ACCESS_DENIED", "message": "access denied"},
				"redirect": decision.Redirect,
			})
			return
		}

		c.Redirect(http.StatusFound, decision.Redirect)
		c.Abort()
	}
}

// wantsJSON reports whether the client is a fetch call rather than a page
// navigation.
func wantsJSON(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
