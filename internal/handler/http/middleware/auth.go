package middleware

import (
	"net/http"

	"github.com/das-hq/duty-backend-go/internal/domain/auth"
	"github.com/das-hq/duty-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminRequired guards write endpoints. Reads stay open on the site network;
// every mutation needs the administrator token.
func AdminRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			role, ok := claims["role"].(string)
			if !ok || role != "admin" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
