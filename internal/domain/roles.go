package domain

// Role is the fixed set of role tags issued by the IntelliDocs backend at
// login. The gateway trusts the string as-is; it never re-derives or
// validates it beyond comparison. Privilege is not linearly ordered:
// gestor is scoped to one department while admin is tenant-wide, so the
// two overlap without either containing the other.
type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleAdmin       Role = "admin"
	RoleGestor      Role = "gestor"
	RoleConsultor   Role = "consultor"
	RoleAlimentador Role = "alimentador"
)

// AllRoles lists every known role, in descending breadth of access.
var AllRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleGestor, RoleConsultor, RoleAlimentador}

// Known reports whether r is one of the roles the backend issues.
func (r Role) Known() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleGestor, RoleConsultor, RoleAlimentador:
		return true
	}
	return false
}
