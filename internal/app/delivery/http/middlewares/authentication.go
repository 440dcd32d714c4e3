package middlewares

import (
	"context"
	"net/http"
	"strings"

	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"
	"policlinico-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token to a live redis session and puts
// the session data on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.RedisRepository.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionData, session)
		ctx = context.WithValue(ctx, constvars.ContextSessionID, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
