package logger

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with an X-Request-ID, generating
// one when the client did not send any, and threads it through the context
// so FromCtx picks it up everywhere downstream.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		ctx := WithRequestID(r.Context(), reqID)
		w.Header().Set("X-Request-ID", reqID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
