package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestMetadata(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))
	assert.Empty(t, ClientIP(ctx))

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithClientMetadata(ctx, "10.0.0.1", "curl/8.0")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "10.0.0.1", ClientIP(ctx))
	assert.Equal(t, "curl/8.0", UserAgent(ctx))
}

func TestNow(t *testing.T) {
	t.Run("falls back to the wall clock", func(t *testing.T) {
		before := time.Now()
		got := Now(context.Background())
		assert.False(t, got.Before(before))
	})

	t.Run("injected time wins", func(t *testing.T) {
		fixed := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, fixed, Now(WithTime(context.Background(), fixed)))
	})
}

func TestReferenceTime(t *testing.T) {
	_, ok := ReferenceTime(context.Background())
	assert.False(t, ok)

	fixed := time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)
	got, ok := ReferenceTime(WithTime(context.Background(), fixed))
	assert.True(t, ok)
	assert.Equal(t, fixed, got)
}
