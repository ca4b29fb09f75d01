package middlewares

import (
	"log"
	"net/http"

	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/models"
	"github.com/unrolled/render"
)

// AdminMiddleware runs behind AuthMiddleware and checks the role claim.
func AdminMiddleware(rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(helpers.ContextKeyRole).(string)
			if !ok || role != models.RoleAdmin {
				userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
				log.Printf("AdminMiddleware: user %s attempted %s without admin role.", userID, r.URL.Path)
				helpers.RespondError(rnd, w, http.StatusForbidden, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
