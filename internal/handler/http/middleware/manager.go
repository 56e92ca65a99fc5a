package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/grupo-santin/obras-backend-go/internal/domain/auth"
	"github.com/grupo-santin/obras-backend-go/internal/domain/user"
	"github.com/grupo-santin/obras-backend-go/internal/handler/http/response"
)

// ManagerOnly guards the mutating routes. Read-only dashboards stay open
// to every authenticated user.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		manager, ok := claims["is_manager"].(bool)
		if !manager || !ok {
			response.HandleError(w, user.ErrManagerPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
