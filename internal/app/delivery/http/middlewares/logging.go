package middlewares

import (
	"context"
	"net/http"
	"time"

	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// RequestLogger tags every request with an ID and emits one structured log
// line after the handler returns.
func (m *Middlewares) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}
		w.Header().Set(constvars.HeaderXRequestID, requestID)

		ctx := context.WithValue(r.Context(), constvars.ContextRequestID, requestID)
		rec := &statusRecorder{ResponseWriter: w, status: constvars.StatusOK}

		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		m.Log.Info("request handled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			zap.Int(constvars.LoggingStatusCodeKey, rec.status),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		)
	})
}
