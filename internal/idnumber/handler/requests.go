package handler

import (
	"strings"

	"idnumbers/internal/idnumber/service"
	dErrors "idnumbers/pkg/domain-errors"
)

// NumberRequest is the HTTP request body for POST /v1/validate, /v1/parse
// and /v1/checksum. Format is optional and defaults to the country's
// primary format. Number is passed through untouched.
type NumberRequest struct {
	Country string `json:"country" validate:"required,min=2,max=3"`
	Format  string `json:"format,omitempty" validate:"max=64"`
	Number  string `json:"number" validate:"required,max=64"`
}

// Validate normalizes the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *NumberRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Country = strings.ToUpper(strings.TrimSpace(r.Country))
	r.Format = strings.TrimSpace(r.Format)
	if r.Country == "" {
		return dErrors.New(dErrors.CodeValidation, "country is required")
	}
	return nil
}

// Query converts the request to a service query.
func (r *NumberRequest) Query() service.Query {
	return service.Query{Country: r.Country, Format: r.Format, Number: r.Number}
}

// BatchRequest is the HTTP request body for POST /v1/validate/batch.
type BatchRequest struct {
	Items []NumberRequest `json:"items" validate:"required,min=1,dive"`
}

// Validate normalizes every item.
func (r *BatchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	for i := range r.Items {
		if err := r.Items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Queries converts the items to service queries.
func (r *BatchRequest) Queries() []service.Query {
	out := make([]service.Query, len(r.Items))
	for i := range r.Items {
		out[i] = r.Items[i].Query()
	}
	return out
}
