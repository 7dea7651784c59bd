package auth

import "github.com/motor-mingle/server/internal/domain"

// Access is the fixed protection level a route declares.
type Access struct {
	authenticated bool
	role          domain.Role
}

var (
	// Public routes run no gates.
	Public = Access{}
	// Authenticated routes require a valid bearer token.
	Authenticated = Access{authenticated: true}
	// Admin routes require a valid token whose user holds the admin role.
	Admin = RequireRole(domain.RoleAdmin)
)

// RequireRole declares token verification followed by a role check.
func RequireRole(role domain.Role) Access {
	return Access{authenticated: true, role: role}
}

// RequiresToken reports whether the token verifier runs.
func (a Access) RequiresToken() bool {
	return a.authenticated
}

// Role returns the required role, or "" when no role check runs.
func (a Access) Role() domain.Role {
	return a.role
}

func (a Access) String() string {
	switch {
	case !a.authenticated:
		return "public"
	case a.role == "":
		return "authenticated"
	default:
		return "role:" + string(a.role)
	}
}
