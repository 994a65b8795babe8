package requesttime

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"idnumbers/pkg/requestcontext"
)

func TestMiddleware(t *testing.T) {
	var got time.Time
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = requestcontext.Now(r.Context())
	}))

	t.Run("uses the reference date header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderReferenceDate, "2010-03-04")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, time.Date(2010, time.March, 4, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("ignores malformed dates", func(t *testing.T) {
		before := time.Now()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderReferenceDate, "yesterday")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.False(t, got.Before(before))
	})
}
