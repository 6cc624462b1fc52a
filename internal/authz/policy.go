package authz

import (
	"strings"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// Package authz holds the single permission-predicate table the whole
// gateway consults. Every navigation entry and route guard goes through
// Decide; no other code compares role strings.
//
// The gate is advisory only. It exists so the UI never shows a screen the
// user cannot use. The backend independently re-enforces authorization on
// every API call, and that server-side check is the real security
// boundary.

// Decision is the outcome of evaluating a role against a route.
type Decision struct {
	// Visible reports whether a navigation link for the route should be
	// rendered at all.
	Visible bool `json:"visible"`
	// Accessible reports whether landing on the route is allowed.
	Accessible bool `json:"accessible"`
	// Redirect is where to send the user instead when not accessible;
	// empty when Accessible is true.
	Redirect string `json:"redirect,omitempty"`
}

// routeRule is one row of the policy table. A nil allow set means any
// authenticated role.
type routeRule struct {
	prefix string
	allow  []domain.Role
}

// The table is ordered: the first rule whose prefix matches wins, so the
// narrower /admin/tenants and /admin/notifications rows sit above the
// catch-all /admin row.
var rules = []routeRule{
	{prefix: "/admin/tenants", allow: []domain.Role{domain.RoleSuperAdmin}},
	{prefix: "/admin/notifications", allow: []domain.Role{domain.RoleSuperAdmin}},
	{prefix: "/admin/billing", allow: []domain.Role{domain.RoleSuperAdmin}},
	{prefix: "/admin", allow: []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin}},
	{prefix: "/users", allow: []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin, domain.RoleGestor}},
	{prefix: "/upload", allow: []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleGestor, domain.RoleAlimentador}},
	{prefix: "/reports", allow: []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleGestor, domain.RoleConsultor}},
	{prefix: "/search", allow: []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleGestor, domain.RoleConsultor}},
	{prefix: "/integrations", allow: []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin}},
}

// publicRoutes need no session at all.
var publicRoutes = []string{"/login", "/forgot-password", "/view/"}

// Public reports whether the route is reachable without a session.
func Public(route string) bool {
	for _, p := range publicRoutes {
		if route == strings.TrimSuffix(p, "/") || strings.HasPrefix(route, p) {
			return true
		}
	}
	return false
}

// Decide evaluates the policy table for a role and route. It is a pure
// function of its inputs: no state is read or written, so two calls with
// the same arguments always yield the same Decision.
//
// An empty role means no session; every guarded route then redirects to
// /login. A role the table does not mention for a route falls through to
// "any authenticated role". Violations with a session redirect home
// rather than to login, so a user who followed a stale link stays logged
// in.
func Decide(role domain.Role, route string) Decision {
	if Public(route) {
		return Decision{Visible: true, Accessible: true}
	}
	if role == "" {
		return Decision{Redirect: "/login"}
	}
	for _, rule := range rules {
		if !matches(rule.prefix, route) {
			continue
		}
		for _, allowed := range rule.allow {
			if role == allowed {
				return Decision{Visible: true, Accessible: true}
			}
		}
		return Decision{Redirect: "/"}
	}
	return Decision{Visible: true, Accessible: true}
}

// matches reports whether route falls under prefix on a path-segment
// boundary, so /users matches /users/42 but not /users-archive.
func matches(prefix, route string) bool {
	if route == prefix {
		return true
	}
	return strings.HasPrefix(route, prefix+"/")
}
