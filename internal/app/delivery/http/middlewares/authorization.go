package middlewares

import (
	"net/http"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"
	"policlinico-service/internal/pkg/utils"
)

// RequireCapability guards a route subtree with the role capability table.
// It must run after Authenticate.
func (m *Middlewares) RequireCapability(capability string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.ContextSessionData).(*models.Session)
			if !ok || session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
				return
			}

			if !utils.RoleHasCapability(session.Role, capability) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
