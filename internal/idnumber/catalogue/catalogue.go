// Package catalogue is the built-in registry of national ID formats.
//
// The registry is assembled once and never mutated, so lookups need no
// locking. Countries may be addressed by ISO 3166-1 alpha-2 or alpha-3 code;
// formats by canonical name or any alias, case-insensitively.
package catalogue

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"idnumbers/internal/idnumber"
	"idnumbers/internal/idnumber/format"
	dErrors "idnumbers/pkg/domain-errors"
	"idnumbers/pkg/platform/sentinel"
	pstrings "idnumbers/pkg/platform/strings"
)

// Registration adds one descriptor to a catalogue. The first registration
// of a country is its default format unless another one sets Default.
type Registration struct {
	Descriptor format.Descriptor
	Aliases    []string
	Default    bool
}

// Entry is a registered format.
type Entry struct {
	Validator *idnumber.Validator
	Aliases   []string
}

// Descriptor is shorthand for e.Validator.Descriptor().
func (e *Entry) Descriptor() format.Descriptor {
	return e.Validator.Descriptor()
}

// Catalogue maps countries and format names to validators.
type Catalogue struct {
	byCountry map[string][]*Entry
	defaults  map[string]*Entry
	names     map[string]map[string]*Entry
	countries []string
}

// New validates and indexes the registrations.
func New(regs ...Registration) (*Catalogue, error) {
	c := &Catalogue{
		byCountry: map[string][]*Entry{},
		defaults:  map[string]*Entry{},
		names:     map[string]map[string]*Entry{},
	}
	for _, reg := range regs {
		if err := c.add(reg); err != nil {
			return nil, err
		}
	}
	for country := range c.byCountry {
		c.countries = append(c.countries, country)
	}
	sort.Strings(c.countries)
	return c, nil
}

func (c *Catalogue) add(reg Registration) error {
	d := reg.Descriptor
	country := strings.ToUpper(d.Country)
	if len(country) != 2 {
		return dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("format %s: country %q is not an alpha-2 code", d.Name, d.Country))
	}
	v, err := idnumber.New(d)
	if err != nil {
		return err
	}

	keys := pstrings.DedupeAndTrimLower(append([]string{d.Name}, reg.Aliases...))
	names := c.names[country]
	if names == nil {
		names = map[string]*Entry{}
		c.names[country] = names
	}
	entry := &Entry{Validator: v, Aliases: pstrings.DedupeAndTrim(reg.Aliases)}
	for _, k := range keys {
		if _, dup := names[k]; dup {
			return dErrors.Wrap(sentinel.ErrConflict, dErrors.CodeInvariantViolation, fmt.Sprintf("format %s: name %q already registered for %s", d.Name, k, country))
		}
		names[k] = entry
	}

	c.byCountry[country] = append(c.byCountry[country], entry)
	if _, ok := c.defaults[country]; !ok || reg.Default {
		c.defaults[country] = entry
	}
	return nil
}

// Countries lists the alpha-2 codes with at least one format, sorted.
func (c *Catalogue) Countries() []string {
	return slices.Clone(c.countries)
}

// Lookup finds a format. An empty name selects the country's default.
// Unknown countries and names are reported as not found.
func (c *Catalogue) Lookup(country, name string) (*Entry, error) {
	code, ok := c.resolveCountry(country)
	if !ok {
		return nil, notFound(fmt.Sprintf("no formats registered for country %q", country))
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return c.defaults[code], nil
	}
	entry, ok := c.names[code][name]
	if !ok {
		return nil, notFound(fmt.Sprintf("country %s has no format named %q", code, name))
	}
	return entry, nil
}

// Formats lists a country's formats in registration order.
func (c *Catalogue) Formats(country string) ([]*Entry, error) {
	code, ok := c.resolveCountry(country)
	if !ok {
		return nil, notFound(fmt.Sprintf("no formats registered for country %q", country))
	}
	return slices.Clone(c.byCountry[code]), nil
}

// All lists every format, grouped by country in code order.
func (c *Catalogue) All() []*Entry {
	var out []*Entry
	for _, code := range c.countries {
		out = append(out, c.byCountry[code]...)
	}
	return out
}

// IsDefault reports whether e is its country's default format.
func (c *Catalogue) IsDefault(e *Entry) bool {
	return c.defaults[strings.ToUpper(e.Descriptor().Country)] == e
}

func (c *Catalogue) resolveCountry(country string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(country))
	if len(code) == 3 {
		code = alpha3[code]
	}
	_, ok := c.byCountry[code]
	return code, ok
}

func notFound(msg string) error {
	return dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, msg)
}

var builtin = mustBuild()

// Default returns the built-in catalogue.
func Default() *Catalogue {
	return builtin
}

func mustBuild() *Catalogue {
	var regs []Registration
	for _, group := range [][]Registration{africa(), asia(), europe(), nordic(), birthNumbers(), jmbgCountries()} {
		regs = append(regs, group...)
	}
	c, err := New(regs...)
	if err != nil {
		panic(err)
	}
	return c
}
