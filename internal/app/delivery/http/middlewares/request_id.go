package middlewares

import (
	"context"
	"fmt"
	"medrecord-service/internal/pkg/constvars"
	"net/http"

	"github.com/google/uuid"
)

// RequestID tags every request with a service-prefixed identifier, echoed back
// in the response headers for log correlation.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = fmt.Sprintf("%s%s", constvars.REQUEST_ID_PREFIX, uuid.NewString())
		}

		w.Header().Set(constvars.HeaderXRequestID, requestID)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
