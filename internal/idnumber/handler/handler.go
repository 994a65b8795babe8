package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"idnumbers/internal/idnumber/catalogue"
	"idnumbers/internal/idnumber/service"
	"idnumbers/pkg/platform/httputil"
	"idnumbers/pkg/requestcontext"
)

// Service defines the interface for ID number operations.
type Service interface {
	Validate(ctx context.Context, q service.Query) (*service.Verdict, error)
	Parse(ctx context.Context, q service.Query) (*service.Verdict, error)
	Checksum(ctx context.Context, q service.Query) (*service.ChecksumResult, error)
	ValidateBatch(ctx context.Context, qs []service.Query) ([]service.BatchItem, error)
	Formats(ctx context.Context, country string) ([]catalogue.Info, error)
}

// Handler wires ID number endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an ID number handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the ID number endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/validate", h.HandleValidate)
	r.Post("/v1/validate/batch", h.HandleValidateBatch)
	r.Post("/v1/parse", h.HandleParse)
	r.Post("/v1/checksum", h.HandleChecksum)
	r.Get("/v1/formats", h.HandleFormats)
	r.Get("/v1/formats/{country}", h.HandleFormats)
}

// HandleValidate handles POST /v1/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	h.handleVerdict(w, r, "validate", h.service.Validate)
}

// HandleParse handles POST /v1/parse requests.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	h.handleVerdict(w, r, "parse", h.service.Parse)
}

func (h *Handler) handleVerdict(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	call func(context.Context, service.Query) (*service.Verdict, error),
) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[NumberRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	verdict, err := call(ctx, req.Query())
	if err != nil {
		h.logger.WarnContext(ctx, operation+" failed",
			"request_id", requestID,
			"country", req.Country,
			"format", req.Format,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "id number "+operation+" completed",
		"request_id", requestID,
		"country", verdict.Country,
		"format", verdict.Format,
		"state", verdict.State.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromVerdict(verdict))
}

// HandleChecksum handles POST /v1/checksum requests.
func (h *Handler) HandleChecksum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[NumberRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.Checksum(ctx, req.Query())
	if err != nil {
		h.logger.WarnContext(ctx, "checksum failed",
			"request_id", requestID,
			"country", req.Country,
			"format", req.Format,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "checksum computed",
		"request_id", requestID,
		"country", res.Country,
		"format", res.Format,
		"state", res.State.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromChecksum(res))
}

// HandleValidateBatch handles POST /v1/validate/batch requests.
func (h *Handler) HandleValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[BatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	items, err := h.service.ValidateBatch(ctx, req.Queries())
	if err != nil {
		h.logger.WarnContext(ctx, "batch validation failed",
			"request_id", requestID,
			"items", len(req.Items),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := FromBatch(items)
	h.logger.InfoContext(ctx, "batch validation completed",
		"request_id", requestID,
		"items", len(items),
		"valid", resp.Valid,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleFormats handles GET /v1/formats and GET /v1/formats/{country}.
func (h *Handler) HandleFormats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	country := chi.URLParam(r, "country")

	infos, err := h.service.Formats(ctx, country)
	if err != nil {
		h.logger.WarnContext(ctx, "format listing failed",
			"request_id", requestID,
			"country", country,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FormatsResponse{Formats: infos})
}
