package middleware

import (
	"net/http"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/handler/http/response"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := jwt.CallerFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !caller.IsAdmin() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
