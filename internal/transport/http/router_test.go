package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idnumbers/internal/idnumber/catalogue"
	"idnumbers/internal/idnumber/service"
	"idnumbers/internal/platform/metrics"
	"idnumbers/internal/platform/middleware"
	"idnumbers/pkg/platform/middleware/requesttime"
	"idnumbers/pkg/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(Deps{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Service:  service.New(catalogue.Default()),
		Registry: metrics.NewRegistry(),
	})
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	testutil.AssertStatusOK(t, rr)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(middleware.HeaderRequestID))
}

func TestValidateThroughRouter(t *testing.T) {
	router := newTestRouter(t)
	req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/validate", map[string]string{
		"country": "PL",
		"number":  "81010200141",
	})
	req.Header.Set(middleware.HeaderRequestID, "req-router")
	req.Header.Set(requesttime.HeaderReferenceDate, "2024-06-01")

	rr := testutil.DoRequest(router, req)
	testutil.AssertStatusOK(t, rr)
	assert.Equal(t, "req-router", rr.Header().Get(middleware.HeaderRequestID))

	resp := testutil.UnmarshalResponse[map[string]any](t, rr)
	assert.Equal(t, true, (*resp)["valid"])
	assert.Equal(t, "PESEL", (*resp)["format"])
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(t, rr)
	body := rr.Body.String()
	require.True(t, strings.Contains(body, "idnumbers_http_requests_total"), body)
	assert.Contains(t, body, `route="/healthz"`)
}

func TestNoMetricsWithoutRegistry(t *testing.T) {
	router := NewRouter(Deps{Service: service.New(catalogue.Default())})
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
