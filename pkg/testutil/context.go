package testutil

import (
	"net/http"
	"time"

	"idnumbers/pkg/requestcontext"
)

// WithRequestTime pins the request's reference time, as the requesttime
// middleware would for an X-Reference-Date header.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}

// WithRequestID adds a request ID to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// PinTime is middleware that gives every request the same reference time.
func PinTime(t time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, WithRequestTime(r, t))
		})
	}
}
