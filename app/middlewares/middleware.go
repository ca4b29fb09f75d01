package middlewares

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/services"
	"github.com/unrolled/render"
)

// AuthMiddleware requires a bearer token and puts the verified identity into
// the request context.
func AuthMiddleware(tokens *services.TokenManager, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				helpers.RespondError(rnd, w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}

			claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				log.Printf("AuthMiddleware: token rejected for %s: %v", r.URL.Path, err)
				helpers.RespondError(rnd, w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, claims.UserID)
			ctx = context.WithValue(ctx, helpers.ContextKeyEmail, claims.Email)
			ctx = context.WithValue(ctx, helpers.ContextKeyRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
