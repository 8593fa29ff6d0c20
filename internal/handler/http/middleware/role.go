package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/marinerh/personnel-backend/internal/domain/auth"
	"github.com/marinerh/personnel-backend/internal/domain/user"
	"github.com/marinerh/personnel-backend/internal/handler/http/response"
)

// RequireRole gates a route group on the role claim. Viewers hold none of
// the listed roles on write routes, so they fall through to 403.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			roleClaim, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			for _, role := range roles {
				if roleClaim == string(role) {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "Insufficient privileges")
		})
	}
}

// AdminOnly restricts a route group to admins.
func AdminOnly(next http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin)(next)
}
