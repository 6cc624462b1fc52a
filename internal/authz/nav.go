package authz

import "github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"

// NavigationEntry is one sidebar link. The list is static; visibility is
// evaluated per render against the current role through the same policy
// table the route guard uses.
type NavigationEntry struct {
	Label string `json:"label"`
	Route string `json:"route"`
	Icon  string `json:"icon"`
}

// menu mirrors the console sidebar: the main operational section followed
// by the system administration section.
var menu = []NavigationEntry{
	{Label: "Dashboard", Route: "/", Icon: "layout-dashboard"},
	{Label: "Busca Inteligente", Route: "/search", Icon: "search"},
	{Label: "Digitalização", Route: "/upload", Icon: "upload-cloud"},
	{Label: "Analytics & BI", Route: "/reports", Icon: "pie-chart"},
	{Label: "Gestão de Equipe", Route: "/users", Icon: "users"},
	{Label: "Documentos", Route: "/documents", Icon: "file-text"},
	{Label: "Prefeituras", Route: "/admin/tenants", Icon: "building"},
	{Label: "Secretarias", Route: "/admin/departments", Icon: "landmark"},
	{Label: "Notificações", Route: "/admin/notifications", Icon: "bell"},
	{Label: "Auditoria", Route: "/admin/audit", Icon: "scroll-text"},
}

// NavigationEntries returns the sidebar entries visible to role, in menu
// order. An empty role sees nothing.
func NavigationEntries(role domain.Role) []NavigationEntry {
	entries := make([]NavigationEntry, 0, len(menu))
	for _, e := range menu {
		if Decide(role, e.Route).Visible {
			entries = append(entries, e)
		}
	}
	return entries
}
