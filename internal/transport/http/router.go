package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"idnumbers/internal/idnumber/handler"
	"idnumbers/internal/platform/metrics"
	"idnumbers/internal/platform/middleware"
	"idnumbers/pkg/platform/middleware/metadata"
	"idnumbers/pkg/platform/middleware/requesttime"
)

// Deps are the collaborators the router wires together. Registry may be nil,
// in which case no metrics are recorded and /metrics is not mounted.
type Deps struct {
	Logger   *slog.Logger
	Service  handler.Service
	Registry *prometheus.Registry
}

// NewRouter wires all public endpoints. Handlers delegate to the service
// without embedding business logic so transport concerns remain isolated.
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var httpMetrics *metrics.Metrics
	if deps.Registry != nil {
		httpMetrics = metrics.New(deps.Registry)
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(httpMetrics))

	r.Get("/healthz", handleHealth)
	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Registry))
	}

	handler.New(deps.Service, logger).Register(r)
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
