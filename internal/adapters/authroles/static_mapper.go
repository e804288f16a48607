package authroles

import (
	"strings"

	domainauth "github.com/adhyanguru/admin-go/internal/domain/auth"
)

// StaticRoleMapper maps the platform API's raw role string onto an
// application role by simple string rules. The API spells the admin role
// a few different ways across endpoints, so matching is case-insensitive
// and tolerant of underscores.
type StaticRoleMapper struct{}

func (StaticRoleMapper) Map(role string) domainauth.Role {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(role), "_", "-"))
	switch normalized {
	case "super-admin", "superadmin":
		return domainauth.RoleSuperAdmin
	case "admin":
		return domainauth.RoleAdmin
	case "":
		return domainauth.RoleGuest
	default:
		return domainauth.RoleUser
	}
}
