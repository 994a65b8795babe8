// Package service exposes the catalogue to transports: lookups by country
// and format name, request-scoped reference dates, logging with masked
// numbers, metrics and concurrent batch evaluation.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"idnumbers/internal/idnumber/catalogue"
	"idnumbers/internal/idnumber/metrics"
	"idnumbers/internal/idnumber/models"
	dErrors "idnumbers/pkg/domain-errors"
	"idnumbers/pkg/platform/sentinel"
	"idnumbers/pkg/requestcontext"
)

const (
	defaultMaxBatchSize     = 100
	defaultBatchConcurrency = 8
)

// Query names a number and the format it should be checked against. An
// empty Format selects the country's default format.
type Query struct {
	Country string
	Format  string
	Number  string
}

// Verdict is the outcome of evaluating one number. Invalid numbers are
// verdicts, not errors.
type Verdict struct {
	Country string
	Format  string
	Valid   bool
	State   models.State
	// Result is set by Parse for valid numbers.
	Result *models.ParseResult
}

// ChecksumResult holds the check characters computed for a number.
type ChecksumResult struct {
	Country     string
	Format      string
	State       models.State
	CheckDigits []models.CheckDigit
	// Matches reports whether the number already carries these digits.
	Matches bool
}

// BatchItem is the verdict for one batch entry, or the error that kept it
// from being evaluated.
type BatchItem struct {
	Index   int
	Verdict *Verdict
	Err     error
}

// Service evaluates ID numbers against the catalogue.
type Service struct {
	catalogue        *catalogue.Catalogue
	logger           *slog.Logger
	metrics          *metrics.Metrics
	maxBatchSize     int
	batchConcurrency int
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithMaxBatchSize bounds the number of items ValidateBatch accepts.
func WithMaxBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBatchSize = n
		}
	}
}

// WithBatchConcurrency bounds the goroutines ValidateBatch runs at once.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

// New constructs a Service.
func New(cat *catalogue.Catalogue, opts ...Option) *Service {
	s := &Service{
		catalogue:        cat,
		maxBatchSize:     defaultMaxBatchSize,
		batchConcurrency: defaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Validate reports whether q.Number is a valid instance of the format.
func (s *Service) Validate(ctx context.Context, q Query) (*Verdict, error) {
	start := time.Now()
	defer s.metrics.ObserveEvaluate("validate", start)

	entry, err := s.lookup(ctx, "validate", q)
	if err != nil {
		return nil, err
	}
	return s.evaluate(ctx, "validate", entry, q.Number, false), nil
}

// Parse validates q.Number and recovers the fields it encodes. Formats
// without semantics cannot be parsed and are rejected as bad requests.
func (s *Service) Parse(ctx context.Context, q Query) (*Verdict, error) {
	start := time.Now()
	defer s.metrics.ObserveEvaluate("parse", start)

	entry, err := s.lookup(ctx, "parse", q)
	if err != nil {
		return nil, err
	}
	if _, err := entry.Validator.Parser(); err != nil {
		return nil, err
	}
	return s.evaluate(ctx, "parse", entry, q.Number, true), nil
}

// Checksum computes the check characters of q.Number. A number that does
// not match the format yields no digits and State unmatched.
func (s *Service) Checksum(ctx context.Context, q Query) (*ChecksumResult, error) {
	start := time.Now()
	defer s.metrics.ObserveEvaluate("checksum", start)

	entry, err := s.lookup(ctx, "checksum", q)
	if err != nil {
		return nil, err
	}
	d := entry.Descriptor()
	if !d.HasChecksum() {
		return nil, dErrors.Wrap(sentinel.ErrUnsupported, dErrors.CodeBadRequest, "format "+d.Name+" has no check digit")
	}

	ev := entry.Validator.Evaluate(q.Number, requestcontext.Now(ctx))
	digits, _ := entry.Validator.Checksums(q.Number)
	s.record(ctx, "checksum", entry, q.Number, ev.State)

	return &ChecksumResult{
		Country:     d.Country,
		Format:      d.Name,
		State:       ev.State,
		CheckDigits: digits,
		Matches:     ev.State == models.StateValid || ev.State == models.StateSemanticallyInvalid,
	}, nil
}

// ValidateBatch validates every query concurrently. Lookup failures are
// reported per item; the call itself fails only for oversized batches or a
// cancelled context. All items share one reference date.
func (s *Service) ValidateBatch(ctx context.Context, qs []Query) ([]BatchItem, error) {
	start := time.Now()
	defer s.metrics.ObserveEvaluate("batch", start)

	if len(qs) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "items must not be empty")
	}
	if len(qs) > s.maxBatchSize {
		return nil, dErrors.New(dErrors.CodeValidation, "too many items in batch")
	}
	s.metrics.ObserveBatchSize(len(qs))

	ctx = requestcontext.WithTime(ctx, requestcontext.Now(ctx))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)

	items := make([]BatchItem, len(qs))
	for i, q := range qs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i].Index = i
			entry, err := s.lookup(gctx, "batch", q)
			if err != nil {
				items[i].Err = err
				return nil
			}
			items[i].Verdict = s.evaluate(gctx, "batch", entry, q.Number, false)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "batch validation timed out")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "batch validation cancelled")
	}

	s.logger.InfoContext(ctx, "batch validated",
		"request_id", requestcontext.RequestID(ctx),
		"items", len(qs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return items, nil
}

// Formats lists catalogue metadata for one country, or every format when
// country is empty.
func (s *Service) Formats(ctx context.Context, country string) ([]catalogue.Info, error) {
	var entries []*catalogue.Entry
	if country == "" {
		entries = s.catalogue.All()
	} else {
		var err error
		entries, err = s.catalogue.Formats(country)
		if err != nil {
			s.metrics.IncrementLookupFailure("formats")
			s.logger.InfoContext(ctx, "unknown country",
				"request_id", requestcontext.RequestID(ctx),
				"country", country,
			)
			return nil, err
		}
	}
	out := make([]catalogue.Info, 0, len(entries))
	for _, e := range entries {
		out = append(out, s.catalogue.Describe(e))
	}
	return out, nil
}

func (s *Service) lookup(ctx context.Context, operation string, q Query) (*catalogue.Entry, error) {
	entry, err := s.catalogue.Lookup(q.Country, q.Format)
	if err != nil {
		s.metrics.IncrementLookupFailure(operation)
		s.logger.InfoContext(ctx, "format lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"operation", operation,
			"country", q.Country,
			"format", q.Format,
			"error", err,
		)
		return nil, err
	}
	return entry, nil
}

func (s *Service) evaluate(ctx context.Context, operation string, entry *catalogue.Entry, number string, withResult bool) *Verdict {
	ev := entry.Validator.Evaluate(number, requestcontext.Now(ctx))
	s.record(ctx, operation, entry, number, ev.State)

	d := entry.Descriptor()
	v := &Verdict{
		Country: d.Country,
		Format:  d.Name,
		Valid:   ev.Valid(),
		State:   ev.State,
	}
	if withResult {
		v.Result = ev.Result
	}
	return v
}

func (s *Service) record(ctx context.Context, operation string, entry *catalogue.Entry, number string, state models.State) {
	d := entry.Descriptor()
	s.metrics.IncrementEvaluation(d.Country, d.Name, operation, state.String())
	s.logger.DebugContext(ctx, "id number evaluated",
		"request_id", requestcontext.RequestID(ctx),
		"operation", operation,
		"country", d.Country,
		"format", d.Name,
		"number", Mask(number),
		"state", state.String(),
	)
}
