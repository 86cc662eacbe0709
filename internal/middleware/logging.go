package middleware

import (
	"net/http"
	"time"

	"premiumshop-be/internal/logger"
	"premiumshop-be/internal/metrics"
	"premiumshop-be/internal/utils"

	"go.uber.org/zap"
)

// responseRecorder captures the status code written downstream.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// Logging writes one structured line per request and feeds the request
// counters.
func Logging(reg *metrics.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			if reg != nil {
				reg.Requests.Inc()
				if rec.statusCode >= http.StatusInternalServerError {
					reg.Failures.Inc()
				}
			}

			userID, _ := utils.GetUserIDFromContext(r.Context())
			logger.FromCtx(r.Context()).Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.statusCode),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_ip", r.RemoteAddr),
				zap.Uint("user_id", userID),
			)
		})
	}
}

// CORS allows the storefront origin during development.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
