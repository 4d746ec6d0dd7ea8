package middleware

import (
	"net/http"

	"odontocare/internal/domain/entity"
	"odontocare/pkg/response"
)

// RequireRol creates a middleware that checks if the user has any of the
// allowed roles. The role comes from context, set by AuthMiddleware from the
// JWT claims.
func RequireRol(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rol, ok := GetRolFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRol := range allowedRoles {
				if rol == allowedRol {
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

// RequireAdmin is a convenience middleware for the admin-only endpoints.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRol(entity.RolAdmin)(next)
}
