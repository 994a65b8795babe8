package models

import (
	"encoding/json"
	"time"
)

// ParseResult is the semantic record recovered from a valid ID number.
// Every field is optional; accessors report whether the format produced it.
type ParseResult struct {
	format  string
	country string

	birthDate    time.Time
	hasBirthDate bool
	birthYear    int

	gender      Gender
	citizenship Citizenship
	location    *Location
	serial      string
	checkDigits []CheckDigit
}

// Format is the name of the format that produced the result.
func (r ParseResult) Format() string { return r.format }

// Country is the alpha-2 code of the issuing country, if known.
func (r ParseResult) Country() string { return r.country }

// BirthDate returns the full date of birth.
func (r ParseResult) BirthDate() (time.Time, bool) {
	return r.birthDate, r.hasBirthDate
}

// BirthYear returns the year of birth. Formats with a full date report its year.
func (r ParseResult) BirthYear() (int, bool) {
	if r.hasBirthDate {
		return r.birthDate.Year(), true
	}
	return r.birthYear, r.birthYear != 0
}

func (r ParseResult) Gender() (Gender, bool) {
	return r.gender, r.gender != ""
}

func (r ParseResult) Citizenship() (Citizenship, bool) {
	return r.citizenship, r.citizenship != ""
}

func (r ParseResult) Location() (Location, bool) {
	if r.location == nil {
		return Location{}, false
	}
	return *r.location, true
}

func (r ParseResult) Serial() (string, bool) {
	return r.serial, r.serial != ""
}

// CheckDigits returns a copy of the verified check characters in format order.
func (r ParseResult) CheckDigits() []CheckDigit {
	return append([]CheckDigit(nil), r.checkDigits...)
}

type resultJSON struct {
	Format      string       `json:"format"`
	Country     string       `json:"country,omitempty"`
	BirthDate   string       `json:"birth_date,omitempty"`
	BirthYear   int          `json:"birth_year,omitempty"`
	Gender      Gender       `json:"gender,omitempty"`
	Citizenship Citizenship  `json:"citizenship,omitempty"`
	Location    *Location    `json:"location,omitempty"`
	Serial      string       `json:"serial,omitempty"`
	CheckDigits []CheckDigit `json:"check_digits,omitempty"`
}

// MarshalJSON renders only the fields the format produced.
func (r ParseResult) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		Format:      r.format,
		Country:     r.country,
		Gender:      r.gender,
		Citizenship: r.citizenship,
		Location:    r.location,
		Serial:      r.serial,
		CheckDigits: r.checkDigits,
	}
	if y, ok := r.BirthYear(); ok {
		out.BirthYear = y
	}
	if r.hasBirthDate {
		out.BirthDate = r.birthDate.Format(time.DateOnly)
	}
	return json.Marshal(out)
}

// ResultBuilder assembles a ParseResult. The zero value is ready to use.
type ResultBuilder struct {
	r ParseResult
}

// NewResultBuilder starts a result for the named format.
func NewResultBuilder(format, country string) *ResultBuilder {
	return &ResultBuilder{r: ParseResult{format: format, country: country}}
}

func (b *ResultBuilder) BirthDate(t time.Time) *ResultBuilder {
	b.r.birthDate = t
	b.r.hasBirthDate = true
	return b
}

func (b *ResultBuilder) BirthYear(y int) *ResultBuilder {
	b.r.birthYear = y
	return b
}

func (b *ResultBuilder) Gender(g Gender) *ResultBuilder {
	b.r.gender = g
	return b
}

func (b *ResultBuilder) Citizenship(c Citizenship) *ResultBuilder {
	b.r.citizenship = c
	return b
}

func (b *ResultBuilder) Location(l Location) *ResultBuilder {
	b.r.location = &l
	return b
}

func (b *ResultBuilder) Serial(s string) *ResultBuilder {
	b.r.serial = s
	return b
}

func (b *ResultBuilder) CheckDigits(c ...CheckDigit) *ResultBuilder {
	b.r.checkDigits = append(b.r.checkDigits, c...)
	return b
}

// Build returns the assembled result. The builder must not be reused.
func (b *ResultBuilder) Build() ParseResult {
	return b.r
}
