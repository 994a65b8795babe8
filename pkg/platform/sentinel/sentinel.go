package sentinel

import "errors"

// Sentinel errors for facts about the format catalogue. Lower layers return
// these wrapped in a domain error so callers can match on them with errors.Is
// while transports map the domain code to a status.
//
//   - ErrNotFound: no format is registered under the requested country or name
//   - ErrConflict: a format name or alias is registered twice
//   - ErrUnsupported: the format exists but lacks the requested capability
//     (parsing, check digit computation)
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnsupported = errors.New("unsupported")
)
