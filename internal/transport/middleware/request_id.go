package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ellishaven/careops-backend/pkg/ctxutil"
)

// RequestID returns middleware that takes the inbound X-Request-Id
// header or generates a fresh UUID, stores it in the context, and
// echoes it on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set("X-Request-Id", id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
