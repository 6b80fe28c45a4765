package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/lbarreto/stockpilot-backend/pkg/logger"
)

const (
	requestIDHeader = "X-Request-Id"

	// inbound ids are caller-supplied; anything longer than this is
	// replaced rather than copied into every log line
	maxRequestIDLen = 64
)

// RequestID propagates the caller's X-Request-Id, or mints a UUID when the
// header is missing, blank, or oversized. The id is echoed on the response
// and attached to the request-scoped logger.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if reqID == "" || len(reqID) > maxRequestIDLen {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
