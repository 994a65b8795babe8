// Package requesttime provides middleware for request-scoped time.
// Every ID number evaluated within one request resolves two digit years
// against the same reference date.
package requesttime

import (
	"net/http"
	"time"

	"idnumbers/pkg/requestcontext"
)

// HeaderReferenceDate lets a caller pin the reference date (YYYY-MM-DD)
// used to resolve two digit years, for reproducible results.
const HeaderReferenceDate = "X-Reference-Date"

// Middleware captures the current time at the start of the request, or the
// caller's reference date when the header holds a valid one, and stores it
// in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		if v := r.Header.Get(HeaderReferenceDate); v != "" {
			if ref, err := time.Parse(time.DateOnly, v); err == nil {
				now = ref
			}
		}
		ctx := requestcontext.WithTime(r.Context(), now)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
