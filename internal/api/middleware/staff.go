// Package middleware holds the mux middleware: staff authentication and
// HTTP metrics collection.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers"
)

// StaffIDHeader carries the authenticated staff member's id, set by the
// gateway in front of this service.
const StaffIDHeader = "X-Staff-ID"

type staffIDKey struct{}

// StaffAuth requires a valid X-Staff-ID header and stores the id in the
// request context. Trust in the header is the gateway's concern.
func StaffAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(StaffIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing "+StaffIDHeader+" header")
			return
		}

		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+StaffIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey{}, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffIDFromContext returns the authenticated staff id, if present.
func StaffIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(staffIDKey{}).(int64)
	return id, ok
}
