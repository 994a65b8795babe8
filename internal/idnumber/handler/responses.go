package handler

import (
	"idnumbers/internal/idnumber/catalogue"
	"idnumbers/internal/idnumber/models"
	"idnumbers/internal/idnumber/service"
	dErrors "idnumbers/pkg/domain-errors"
)

// VerdictResponse is returned by validate and parse.
type VerdictResponse struct {
	Valid   bool                `json:"valid"`
	State   models.State        `json:"state"`
	Country string              `json:"country"`
	Format  string              `json:"format"`
	Result  *models.ParseResult `json:"result,omitempty"`
}

// FromVerdict converts a service verdict to its response.
func FromVerdict(v *service.Verdict) *VerdictResponse {
	return &VerdictResponse{
		Valid:   v.Valid,
		State:   v.State,
		Country: v.Country,
		Format:  v.Format,
		Result:  v.Result,
	}
}

// ChecksumResponse is returned by checksum. CheckDigit repeats the first
// entry of CheckDigits for formats with a single check character.
type ChecksumResponse struct {
	Country     string       `json:"country"`
	Format      string       `json:"format"`
	State       models.State `json:"state"`
	CheckDigit  string       `json:"check_digit,omitempty"`
	CheckDigits []string     `json:"check_digits"`
	Matches     bool         `json:"matches"`
}

// FromChecksum converts a service checksum result to its response.
func FromChecksum(res *service.ChecksumResult) *ChecksumResponse {
	digits := make([]string, 0, len(res.CheckDigits))
	for _, d := range res.CheckDigits {
		digits = append(digits, d.String())
	}
	out := &ChecksumResponse{
		Country:     res.Country,
		Format:      res.Format,
		State:       res.State,
		CheckDigits: digits,
		Matches:     res.Matches,
	}
	if len(digits) > 0 {
		out.CheckDigit = digits[0]
	}
	return out
}

// BatchItemResponse is one entry of a batch response. Error fields are set
// when the item could not be evaluated.
type BatchItemResponse struct {
	Index            int    `json:"index"`
	Valid            bool   `json:"valid"`
	State            string `json:"state,omitempty"`
	Country          string `json:"country,omitempty"`
	Format           string `json:"format,omitempty"`
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// BatchResponse is returned by validate/batch.
type BatchResponse struct {
	Items []BatchItemResponse `json:"items"`
	Valid int                 `json:"valid_count"`
}

// FromBatch converts batch items to the response.
func FromBatch(items []service.BatchItem) *BatchResponse {
	out := &BatchResponse{Items: make([]BatchItemResponse, 0, len(items))}
	for _, item := range items {
		resp := BatchItemResponse{Index: item.Index}
		switch {
		case item.Err != nil:
			resp.Error = string(dErrors.CodeInternal)
			if de, ok := dErrors.As(item.Err); ok {
				resp.Error = string(de.Code)
				resp.ErrorDescription = de.Message
			}
		case item.Verdict != nil:
			resp.Valid = item.Verdict.Valid
			resp.State = item.Verdict.State.String()
			resp.Country = item.Verdict.Country
			resp.Format = item.Verdict.Format
			if resp.Valid {
				out.Valid++
			}
		}
		out.Items = append(out.Items, resp)
	}
	return out
}

// FormatsResponse lists catalogue formats.
type FormatsResponse struct {
	Formats []catalogue.Info `json:"formats"`
}
