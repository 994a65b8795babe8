package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"idnumbers/internal/idnumber/catalogue"
	"idnumbers/internal/idnumber/metrics"
	"idnumbers/internal/idnumber/models"
	dErrors "idnumbers/pkg/domain-errors"
	"idnumbers/pkg/platform/sentinel"
	"idnumbers/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	logs    *bytes.Buffer
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.service = New(catalogue.Default(),
		WithLogger(logger),
		WithMetrics(metrics.New(prometheus.NewRegistry())),
		WithMaxBatchSize(5),
		WithBatchConcurrency(2),
	)
	ref := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithRequestID(requestcontext.WithTime(context.Background(), ref), "req-123")
}

func (s *ServiceSuite) TestValidate() {
	s.Run("valid number", func() {
		v, err := s.service.Validate(s.ctx, Query{Country: "PL", Number: "02070803628"})
		s.Require().NoError(err)
		s.True(v.Valid)
		s.Equal(models.StateValid, v.State)
		s.Equal("PL", v.Country)
		s.Equal("PESEL", v.Format)
		s.Nil(v.Result)
	})

	s.Run("bad checksum is a verdict", func() {
		v, err := s.service.Validate(s.ctx, Query{Country: "PL", Format: "PESEL", Number: "02070803629"})
		s.Require().NoError(err)
		s.False(v.Valid)
		s.Equal(models.StateChecksumFailed, v.State)
	})

	s.Run("unknown country", func() {
		_, err := s.service.Validate(s.ctx, Query{Country: "ZZ", Number: "1"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.True(errors.Is(err, sentinel.ErrNotFound))
	})

	s.Run("unknown format", func() {
		_, err := s.service.Validate(s.ctx, Query{Country: "PL", Format: "REGON", Number: "1"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestParse() {
	s.Run("returns the decoded fields", func() {
		v, err := s.service.Parse(s.ctx, Query{Country: "ZAF", Number: "7605300675088"})
		s.Require().NoError(err)
		s.Require().True(v.Valid)
		s.Require().NotNil(v.Result)
		birth, ok := v.Result.BirthDate()
		s.Require().True(ok)
		s.Equal(time.Date(1976, time.May, 30, 0, 0, 0, 0, time.UTC), birth)
	})

	s.Run("reference date resolves rolling centuries", func() {
		v, err := s.service.Parse(s.ctx, Query{Country: "SE", Number: "811228-9874"})
		s.Require().NoError(err)
		s.Require().NotNil(v.Result)
		year, _ := v.Result.BirthYear()
		s.Equal(1981, year)
	})

	s.Run("invalid number has no result", func() {
		v, err := s.service.Parse(s.ctx, Query{Country: "PL", Number: "02070803629"})
		s.Require().NoError(err)
		s.False(v.Valid)
		s.Nil(v.Result)
	})

	s.Run("format without semantics is a bad request", func() {
		_, err := s.service.Parse(s.ctx, Query{Country: "IL", Number: "523656783"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *ServiceSuite) TestChecksum() {
	s.Run("matching digits", func() {
		res, err := s.service.Checksum(s.ctx, Query{Country: "NO", Number: "29029600013"})
		s.Require().NoError(err)
		s.Equal([]models.CheckDigit{'1', '3'}, res.CheckDigits)
		s.True(res.Matches)
	})

	s.Run("mismatching digit", func() {
		res, err := s.service.Checksum(s.ctx, Query{Country: "IL", Number: "523656782"})
		s.Require().NoError(err)
		s.Equal([]models.CheckDigit{'3'}, res.CheckDigits)
		s.False(res.Matches)
		s.Equal(models.StateChecksumFailed, res.State)
	})

	s.Run("unmatched input", func() {
		res, err := s.service.Checksum(s.ctx, Query{Country: "IL", Number: "abc"})
		s.Require().NoError(err)
		s.Empty(res.CheckDigits)
		s.Equal(models.StateUnmatched, res.State)
	})

	s.Run("format without check digit", func() {
		_, err := s.service.Checksum(s.ctx, Query{Country: "DK", Number: "061085-1178"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.True(errors.Is(err, sentinel.ErrUnsupported))
	})
}

func (s *ServiceSuite) TestValidateBatch() {
	s.Run("evaluates every item in order", func() {
		items, err := s.service.ValidateBatch(s.ctx, []Query{
			{Country: "PL", Number: "02070803628"},
			{Country: "XX", Number: "1"},
			{Country: "IN", Number: "8924 7352 8038"},
			{Country: "FI", Number: "131052-308A"},
		})
		s.Require().NoError(err)
		s.Require().Len(items, 4)

		s.True(items[0].Verdict.Valid)
		s.Require().Error(items[1].Err)
		s.True(dErrors.HasCode(items[1].Err, dErrors.CodeNotFound))
		s.True(items[2].Verdict.Valid)
		s.Equal(models.StateChecksumFailed, items[3].Verdict.State)
		for i, item := range items {
			s.Equal(i, item.Index)
		}
	})

	s.Run("rejects oversized batches", func() {
		_, err := s.service.ValidateBatch(s.ctx, make([]Query, 6))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects empty batches", func() {
		_, err := s.service.ValidateBatch(s.ctx, nil)
		s.Require().Error(err)
	})

	s.Run("cancelled context", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		_, err := s.service.ValidateBatch(ctx, []Query{{Country: "PL", Number: "02070803628"}})
		s.Require().Error(err)
	})
}

func (s *ServiceSuite) TestFormats() {
	s.Run("one country", func() {
		infos, err := s.service.Formats(s.ctx, "KR")
		s.Require().NoError(err)
		s.Require().Len(infos, 2)
		s.True(infos[0].Default)
		s.True(infos[1].Deprecated)
	})

	s.Run("everything", func() {
		infos, err := s.service.Formats(s.ctx, "")
		s.Require().NoError(err)
		s.Len(infos, len(catalogue.Default().All()))
	})

	s.Run("unknown country", func() {
		_, err := s.service.Formats(s.ctx, "QQ")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestLogsMaskNumbers() {
	_, err := s.service.Validate(s.ctx, Query{Country: "PL", Number: "02070803628"})
	s.Require().NoError(err)

	out := s.logs.String()
	s.Contains(out, "********628")
	s.Contains(out, "req-123")
	s.NotContains(out, "02070803628")
}

func TestMask(t *testing.T) {
	assert.Equal(t, "********458", Mask("44051401458"))
	assert.Equal(t, "***", Mask("abc"))
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "*****67L", Mask("X1234567L")[1:])
}

func TestNewDefaults(t *testing.T) {
	svc := New(catalogue.Default(), WithMaxBatchSize(0), WithBatchConcurrency(-1))
	require.NotNil(t, svc.logger)
	assert.Equal(t, defaultMaxBatchSize, svc.maxBatchSize)
	assert.Equal(t, defaultBatchConcurrency, svc.batchConcurrency)
}
