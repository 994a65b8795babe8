package catalogue

import (
	"slices"

	"idnumbers/internal/idnumber/format"
	"idnumbers/internal/idnumber/models"
)

// Info summarises a registered format for listings.
type Info struct {
	Country    string          `json:"country"`
	Name       string          `json:"name"`
	Aliases    []string        `json:"aliases,omitempty"`
	Names      []string        `json:"names,omitempty"`
	Links      []string        `json:"links,omitempty"`
	Checksums  []format.Kind   `json:"checksums,omitempty"`
	Genders    []models.Gender `json:"genders,omitempty"`
	Parsable   bool            `json:"parsable"`
	Default    bool            `json:"default"`
	Deprecated bool            `json:"deprecated,omitempty"`
}

// Describe builds the listing entry for e.
func (c *Catalogue) Describe(e *Entry) Info {
	d := e.Descriptor()
	return Info{
		Country:    d.Country,
		Name:       d.Name,
		Aliases:    slices.Clone(e.Aliases),
		Names:      slices.Clone(d.Names),
		Links:      slices.Clone(d.Links),
		Checksums:  d.Kinds(),
		Genders:    d.Semantics.Genders(),
		Parsable:   d.Parsable(),
		Default:    c.IsDefault(e),
		Deprecated: d.Deprecated,
	}
}
