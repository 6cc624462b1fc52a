package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/authz"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

func TestDecide_PublicRoutes(t *testing.T) {
	for _, route := range []string{"/login", "/forgot-password", "/view/abc123"} {
		d := authz.Decide("", route)
		assert.True(t, d.Accessible, "route %s should be public", route)
		assert.Empty(t, d.Redirect)
	}
}

func TestDecide_NoSessionRedirectsToLogin(t *testing.T) {
	for _, route := range []string{"/", "/search", "/users", "/admin/tenants"} {
		d := authz.Decide("", route)
		assert.False(t, d.Accessible, "route %s should be guarded", route)
		assert.False(t, d.Visible)
		assert.Equal(t, "/login", d.Redirect)
	}
}

func TestDecide_ViolationWithSessionRedirectsHome(t *testing.T) {
	d := authz.Decide(domain.RoleConsultor, "/upload")
	assert.False(t, d.Accessible)
	assert.Equal(t, "/", d.Redirect)
}

func TestDecide_SuperAdminOnlyRoutes(t *testing.T) {
	routes := []string{"/admin/tenants", "/admin/notifications", "/admin/billing"}
	for _, route := range routes {
		assert.True(t, authz.Decide(domain.RoleSuperAdmin, route).Accessible, route)
		for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleGestor, domain.RoleConsultor, domain.RoleAlimentador} {
			d := authz.Decide(role, route)
			assert.False(t, d.Accessible, "%s should not reach %s", role, route)
			assert.Equal(t, "/", d.Redirect)
		}
	}
}

func TestDecide_AdminSectionCatchAll(t *testing.T) {
	// /admin/departments and /admin/audit fall to the broader admin row.
	for _, route := range []string{"/admin/departments", "/admin/audit"} {
		assert.True(t, authz.Decide(domain.RoleAdmin, route).Accessible, route)
		assert.True(t, authz.Decide(domain.RoleSuperAdmin, route).Accessible, route)
		assert.False(t, authz.Decide(domain.RoleGestor, route).Accessible, route)
	}
}

func TestDecide_NarrowRuleWinsOverCatchAll(t *testing.T) {
	// admin reaches /admin but not /admin/tenants: the narrower row must
	// be evaluated before the /admin prefix swallows it.
	assert.True(t, authz.Decide(domain.RoleAdmin, "/admin/departments").Accessible)
	assert.False(t, authz.Decide(domain.RoleAdmin, "/admin/tenants").Accessible)
	assert.False(t, authz.Decide(domain.RoleAdmin, "/admin/tenants/7/details").Accessible)
}

func TestDecide_UserManagement(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleGestor} {
		assert.True(t, authz.Decide(role, "/users").Accessible, role)
	}
	for _, role := range []domain.Role{domain.RoleConsultor, domain.RoleAlimentador} {
		assert.False(t, authz.Decide(role, "/users").Accessible, role)
	}
}

func TestDecide_UploadExcludesConsultor(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleGestor, domain.RoleAlimentador} {
		assert.True(t, authz.Decide(role, "/upload").Accessible, role)
	}
	assert.False(t, authz.Decide(domain.RoleConsultor, "/upload").Accessible)
}

func TestDecide_SearchAndReportsExcludeAlimentador(t *testing.T) {
	for _, route := range []string{"/search", "/reports"} {
		for _, role := range []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleGestor, domain.RoleConsultor} {
			assert.True(t, authz.Decide(role, route).Accessible, "%s on %s", role, route)
		}
		assert.False(t, authz.Decide(domain.RoleAlimentador, route).Accessible, route)
	}
}

func TestDecide_UnlistedRouteAllowsAnyAuthenticated(t *testing.T) {
	for _, role := range domain.AllRoles {
		d := authz.Decide(role, "/documents")
		assert.True(t, d.Accessible, role)
	}
}

func TestDecide_SegmentBoundaryMatching(t *testing.T) {
	// /users-archive must not inherit the /users rule.
	assert.True(t, authz.Decide(domain.RoleConsultor, "/users-archive").Accessible)
	assert.False(t, authz.Decide(domain.RoleConsultor, "/users/42").Accessible)
}

func TestDecide_Pure(t *testing.T) {
	first := authz.Decide(domain.RoleGestor, "/admin/tenants")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, authz.Decide(domain.RoleGestor, "/admin/tenants"))
	}
}

func TestDecide_VisibleTracksAccessible(t *testing.T) {
	for _, role := range domain.AllRoles {
		for _, route := range []string{"/", "/search", "/upload", "/reports", "/users", "/admin/tenants", "/admin/audit", "/integrations"} {
			d := authz.Decide(role, route)
			assert.Equal(t, d.Accessible, d.Visible, "%s on %s", role, route)
		}
	}
}

func TestNavigationEntries_Gestor(t *testing.T) {
	entries := authz.NavigationEntries(domain.RoleGestor)

	routes := make([]string, 0, len(entries))
	for _, e := range entries {
		routes = append(routes, e.Route)
	}

	assert.Contains(t, routes, "/")
	assert.Contains(t, routes, "/search")
	assert.Contains(t, routes, "/upload")
	assert.Contains(t, routes, "/users")
	assert.NotContains(t, routes, "/admin/tenants")
	assert.NotContains(t, routes, "/admin/departments")
	assert.NotContains(t, routes, "/admin/audit")
}

func TestNavigationEntries_SuperAdminSeesEverything(t *testing.T) {
	entries := authz.NavigationEntries(domain.RoleSuperAdmin)
	assert.Len(t, entries, 10)
}

func TestNavigationEntries_NoSession(t *testing.T) {
	assert.Empty(t, authz.NavigationEntries(""))
}

func TestNavigationEntries_PreservesMenuOrder(t *testing.T) {
	entries := authz.NavigationEntries(domain.RoleAlimentador)
	var lastIdx int
	full := authz.NavigationEntries(domain.RoleSuperAdmin)
	idx := func(route string) int {
		for i, e := range full {
			if e.Route == route {
				return i
			}
		}
		return -1
	}
	for _, e := range entries {
		i := idx(e.Route)
		assert.GreaterOrEqual(t, i, lastIdx)
		lastIdx = i
	}
}
