package middleware

import (
	"net/http"

	"medequip-rental-backend/internal/domain/entity"
	"medequip-rental-backend/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware from
// JWT claims). These checks gate which handlers run; ownership and state
// checks in the usecases remain the final word on each row.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok || role == "" {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireClinic admits only clinic users
func RequireClinic(next http.Handler) http.Handler {
	return RequireRole(entity.RoleClinic)(next)
}

// RequireAdmin admits only admin users
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireClinicOrAdmin admits any user holding one of the two role tags
func RequireClinicOrAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleClinic, entity.RoleAdmin)(next)
}
