// Package idnumber validates and parses national identity numbers.
//
// A Validator wraps one format descriptor and runs the three stage pipeline:
// match and extract, verify checksums, reconstruct semantic fields. Invalid
// input is an ordinary result, never an error. Validators are immutable and
// safe for concurrent use.
package idnumber

import (
	"time"

	"idnumbers/internal/idnumber/extract"
	"idnumbers/internal/idnumber/format"
	"idnumbers/internal/idnumber/models"
	"idnumbers/internal/idnumber/reconstruct"
	dErrors "idnumbers/pkg/domain-errors"
	"idnumbers/pkg/platform/sentinel"
)

// Validator runs the pipeline for a single format.
type Validator struct {
	desc format.Descriptor
}

// New checks the descriptor and returns a validator for it.
func New(d format.Descriptor) (*Validator, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Validator{desc: d}, nil
}

// MustNew is New for descriptors built into the program. It panics on an
// inconsistent descriptor.
func MustNew(d format.Descriptor) *Validator {
	v, err := New(d)
	if err != nil {
		panic(err)
	}
	return v
}

// Descriptor returns the format the validator was built from.
func (v *Validator) Descriptor() format.Descriptor {
	return v.desc
}

// Validate reports whether text is a valid number of this format. For
// parsable formats the decoded fields must be valid too.
func (v *Validator) Validate(text string) bool {
	return v.Evaluate(text, time.Now()).Valid()
}

// Evaluate runs the full pipeline and reports the state it ended in. ref is
// the reference date for formats whose century depends on the current date.
func (v *Validator) Evaluate(text string, ref time.Time) models.Evaluation {
	fields, ok := extract.Extract(text, v.desc)
	if !ok {
		return models.Evaluation{State: models.StateUnmatched}
	}
	result, state := reconstruct.Reconstruct(fields, v.desc, ref)
	eval := models.Evaluation{State: state}
	if state == models.StateValid && v.desc.Parsable() {
		eval.Result = &result
	}
	return eval
}

// Checksum computes the first check character for text, whether or not it
// matches the one text carries. It reports false when text does not have
// the format's shape, the format has no checksum, or no check character
// exists for the input.
func (v *Validator) Checksum(text string) (models.CheckDigit, bool) {
	digits, ok := v.Checksums(text)
	if !ok || len(digits) == 0 {
		return 0, false
	}
	return digits[0], true
}

// Checksums computes every check character the format declares.
func (v *Validator) Checksums(text string) ([]models.CheckDigit, bool) {
	if !v.desc.HasChecksum() {
		return nil, false
	}
	fields, ok := extract.Extract(text, v.desc)
	if !ok {
		return nil, false
	}
	out := make([]models.CheckDigit, 0, len(v.desc.Checksums))
	for _, spec := range v.desc.Checksums {
		c, ok := reconstruct.Compute(fields, spec)
		if !ok {
			return nil, false
		}
		out = append(out, c)
	}
	return out, true
}

// Parser is a Validator for a format whose fields can be decoded.
type Parser struct {
	*Validator
}

// NewParser builds a parser. It fails for formats without semantics.
func NewParser(d format.Descriptor) (*Parser, error) {
	v, err := New(d)
	if err != nil {
		return nil, err
	}
	return v.Parser()
}

// Parser upgrades the validator when its format is parsable.
func (v *Validator) Parser() (*Parser, error) {
	if !v.desc.Parsable() {
		return nil, dErrors.Wrap(sentinel.ErrUnsupported, dErrors.CodeBadRequest, "format "+v.desc.Name+" cannot be parsed")
	}
	return &Parser{Validator: v}, nil
}

// Parse decodes text using the current date as reference.
func (p *Parser) Parse(text string) (models.ParseResult, bool) {
	return p.ParseAt(text, time.Now())
}

// ParseAt decodes text. It reports false unless the pipeline ends valid.
func (p *Parser) ParseAt(text string, ref time.Time) (models.ParseResult, bool) {
	eval := p.Evaluate(text, ref)
	if eval.Result == nil {
		return models.ParseResult{}, false
	}
	return *eval.Result, true
}
