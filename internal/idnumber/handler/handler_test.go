package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"idnumbers/internal/idnumber/catalogue"
	"idnumbers/internal/idnumber/handler/mocks"
	"idnumbers/internal/idnumber/models"
	"idnumbers/internal/idnumber/service"
	dErrors "idnumbers/pkg/domain-errors"
	"idnumbers/pkg/platform/sentinel"
	"idnumbers/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/idnumber-mocks.go -package=mocks Service
type HandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

func (s *HandlerSuite) TestValidate() {
	s.Run("returns the verdict", func() {
		s.service.EXPECT().Validate(gomock.Any(), service.Query{Country: "PL", Number: "02070803628"}).
			Return(&service.Verdict{Country: "PL", Format: "PESEL", Valid: true, State: models.StateValid}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate", map[string]string{
			"country": "pl",
			"number":  "02070803628",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[VerdictResponse](s.T(), rr)
		s.True(resp.Valid)
		s.Equal(models.StateValid, resp.State)
		s.Equal("PESEL", resp.Format)
	})

	s.Run("unknown country is not found", func() {
		s.service.EXPECT().Validate(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "no formats registered"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate", map[string]string{
			"country": "XX",
			"number":  "1",
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})

	s.Run("missing number", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate", map[string]string{"country": "PL"})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("unknown fields are rejected", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/v1/validate", `{"country":"PL","number":"1","extra":true}`)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *HandlerSuite) TestParse() {
	s.Run("includes the result", func() {
		result := models.NewResultBuilder("PESEL", "PL").
			BirthDate(time.Date(1902, time.July, 8, 0, 0, 0, 0, time.UTC)).
			Gender(models.GenderFemale).
			Serial("0362").
			CheckDigits('8').
			Build()
		s.service.EXPECT().Parse(gomock.Any(), gomock.Any()).
			Return(&service.Verdict{Country: "PL", Format: "PESEL", Valid: true, State: models.StateValid, Result: &result}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/parse", map[string]string{
			"country": "PL",
			"number":  "02070803628",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[map[string]any](s.T(), rr)
		parsed := (*resp)["result"].(map[string]any)
		s.Equal("1902-07-08", parsed["birth_date"])
		s.Equal("female", parsed["gender"])
		s.Equal("0362", parsed["serial"])
	})

	s.Run("unparsable format", func() {
		s.service.EXPECT().Parse(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeBadRequest, "format cannot be parsed"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/parse", map[string]string{
			"country": "IL",
			"number":  "523656783",
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *HandlerSuite) TestChecksum() {
	s.service.EXPECT().Checksum(gomock.Any(), service.Query{Country: "LU", Number: "1893120105732"}).
		Return(&service.ChecksumResult{
			Country:     "LU",
			Format:      "NationalID",
			State:       models.StateValid,
			CheckDigits: []models.CheckDigit{'3', '2'},
			Matches:     true,
		}, nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/checksum", map[string]string{
		"country": "LU",
		"number":  "1893120105732",
	})
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[ChecksumResponse](s.T(), rr)
	s.Equal("3", resp.CheckDigit)
	s.Equal([]string{"3", "2"}, resp.CheckDigits)
	s.True(resp.Matches)
}

func (s *HandlerSuite) TestValidateBatch() {
	s.Run("reports items and errors", func() {
		s.service.EXPECT().ValidateBatch(gomock.Any(), []service.Query{
			{Country: "PL", Number: "02070803628"},
			{Country: "XX", Number: "1"},
		}).Return([]service.BatchItem{
			{Index: 0, Verdict: &service.Verdict{Country: "PL", Format: "PESEL", Valid: true, State: models.StateValid}},
			{Index: 1, Err: dErrors.New(dErrors.CodeNotFound, "no formats registered for country \"XX\"")},
		}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate/batch", map[string]any{
			"items": []map[string]string{
				{"country": "PL", "number": "02070803628"},
				{"country": "XX", "number": "1"},
			},
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[BatchResponse](s.T(), rr)
		s.Require().Len(resp.Items, 2)
		s.Equal(1, resp.Valid)
		s.Equal("valid", resp.Items[0].State)
		s.Equal("not_found", resp.Items[1].Error)
	})

	s.Run("empty batch", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate/batch", map[string]any{"items": []any{}})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("oversized batch", func() {
		s.service.EXPECT().ValidateBatch(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeValidation, "too many items in batch"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate/batch", map[string]any{
			"items": []map[string]string{{"country": "PL", "number": "1"}},
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})
}

func (s *HandlerSuite) TestFormats() {
	s.Run("one country", func() {
		s.service.EXPECT().Formats(gomock.Any(), "KR").
			Return([]catalogue.Info{{Country: "KR", Name: "ResidentRegistrationNumber", Parsable: true, Default: true}}, nil)

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/v1/formats/KR"))
		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[FormatsResponse](s.T(), rr)
		s.Require().Len(resp.Formats, 1)
		s.Equal("ResidentRegistrationNumber", resp.Formats[0].Name)
	})

	s.Run("all formats", func() {
		s.service.EXPECT().Formats(gomock.Any(), "").Return([]catalogue.Info{}, nil)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/v1/formats"))
		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONHasKey(s.T(), rr, "formats")
	})
}

// TestEndToEnd runs the real service behind the router.
func TestEndToEnd(t *testing.T) {
	svc := service.New(catalogue.Default())
	r := chi.NewRouter()
	r.Use(testutil.PinTime(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)

	t.Run("validate", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/validate", map[string]string{
			"country": "TW",
			"number":  "A123456789",
		})
		rr := testutil.DoRequest(r, req)
		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[VerdictResponse](t, rr)
		assert.True(t, resp.Valid)
	})

	t.Run("parse", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/parse", map[string]string{
			"country": "CN",
			"number":  "11010219840406970X",
		})
		rr := testutil.DoRequest(r, req)
		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[map[string]any](t, rr)
		result, ok := (*resp)["result"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "1984-04-06", result["birth_date"])
		assert.Equal(t, []any{"X"}, result["check_digits"])
	})

	t.Run("checksum", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/checksum", map[string]string{
			"country": "ES",
			"format":  "nie",
			"number":  "X1234567A",
		})
		rr := testutil.DoRequest(r, req)
		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[ChecksumResponse](t, rr)
		assert.Equal(t, "L", resp.CheckDigit)
		assert.False(t, resp.Matches)
	})

	t.Run("unknown format", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/validate", map[string]string{
			"country": "PL",
			"format":  "NIP",
			"number":  "1",
		})
		rr := testutil.DoRequest(r, req)
		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})
}
