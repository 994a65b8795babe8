// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets these values; services and handlers read them. The package
// has no net/http dependency, so the CLI and tests can populate a context the
// same way the server does:
//
//	ctx = requestcontext.WithRequestID(ctx, requestID)
//	ctx = requestcontext.WithTime(ctx, referenceDate)
//	...
//	now := requestcontext.Now(ctx)
package requestcontext

import (
	"context"
	"time"
)

type key int

const (
	clientIPKey key = iota
	userAgentKey
	requestIDKey
	requestTimeKey
)

func lookup[T any](ctx context.Context, k key) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

// ClientIP returns the client address recorded by the metadata middleware.
func ClientIP(ctx context.Context) string {
	ip, _ := lookup[string](ctx, clientIPKey)
	return ip
}

// UserAgent returns the caller's User-Agent header.
func UserAgent(ctx context.Context) string {
	ua, _ := lookup[string](ctx, userAgentKey)
	return ua
}

// WithClientMetadata injects client IP and User-Agent into a context.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey, clientIP)
	return context.WithValue(ctx, userAgentKey, userAgent)
}

// RequestID returns the request ID, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := lookup[string](ctx, requestIDKey)
	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// Now returns the request's reference time, against which two digit years
// are resolved. Falls back to time.Now() if none was set.
func Now(ctx context.Context) time.Time {
	if t, ok := ReferenceTime(ctx); ok {
		return t
	}
	return time.Now()
}

// ReferenceTime reports the time pinned on ctx, if any.
func ReferenceTime(ctx context.Context) (time.Time, bool) {
	return lookup[time.Time](ctx, requestTimeKey)
}

// WithTime pins the reference time. Middleware sets it per request; batch
// validation pins one time for every item and tests pin a fixed date.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey, t)
}
