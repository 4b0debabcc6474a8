package middleware

import (
	"fmt"
	"net/http"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/handler/http/response"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
)

// RequirePermission checks if user has specific permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := jwt.CallerFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !caller.Can(permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, caller.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
