package middleware

import (
	"net/http"

	"rx-prescription-api/internal/domain/entity"
	"rx-prescription-api/pkg/response"
)

// RequireUserType checks that the authenticated account is one of the allowed
// kinds. The user type is read from context, set by AuthMiddleware from the
// JWT claims.
func RequireUserType(allowedTypes ...entity.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userType, ok := GetUserTypeFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "User type information not found")
				return
			}

			allowed := false
			for _, allowedType := range allowedTypes {
				if entity.UserType(userType) == allowedType {
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

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireUserType(entity.UserTypeDoctor)(next)
}
