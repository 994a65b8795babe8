package format

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idnumbers/internal/idnumber/models"
	dErrors "idnumbers/pkg/domain-errors"
)

func validDescriptor() Descriptor {
	return Descriptor{
		Name:      "Sample",
		Country:   "XX",
		Pattern:   Anchor(`(?P<yy>\d{2})(?P<mm>\d{2})(?P<dd>\d{2})(?P<sn>\d{3})(?P<check>\d)`),
		MinLength: 10,
		MaxLength: 10,
		Checksums: []ChecksumSpec{{
			Algorithm: WeightedModulus{Weights: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, Divider: 11, ModulusOnly: true},
			Source:    []string{"yy", "mm", "dd", "sn"},
			Check:     "check",
		}},
		Semantics: &Semantics{
			Date:   &DateRule{Year: "yy", Month: "mm", Day: "dd", Century: Threshold{Pivot: 30, Above: 1900, AtOrBelow: 2000}},
			Gender: GenderByParity{Group: "sn", Position: -1},
			Serial: "sn",
		},
	}
}

func TestDescriptorValidate(t *testing.T) {
	t.Run("consistent descriptor passes", func(t *testing.T) {
		require.NoError(t, validDescriptor().Validate())
	})

	t.Run("base-less month bands pass with a fallback", func(t *testing.T) {
		d := validDescriptor()
		sem := *d.Semantics
		sem.Date = &DateRule{Year: "yy", Month: "mm", Day: "dd", Century: MonthOverload{
			Bands:    []MonthBand{{Offset: 0}, {Offset: 50, Gender: models.GenderFemale}},
			Fallback: Threshold{Pivot: 53, Above: 1900, AtOrBelow: 2000},
		}}
		d.Semantics = &sem
		require.NoError(t, d.Validate())
	})

	tests := []struct {
		name   string
		mutate func(d *Descriptor)
	}{
		{"missing name", func(d *Descriptor) { d.Name = "" }},
		{"missing pattern", func(d *Descriptor) { d.Pattern = nil }},
		{"unanchored pattern", func(d *Descriptor) { d.Pattern = regexp.MustCompile(`(?P<check>\d)`) }},
		{"inverted length bounds", func(d *Descriptor) { d.MinLength, d.MaxLength = 10, 9 }},
		{"unknown source group", func(d *Descriptor) { d.Checksums[0].Source = []string{"nope"} }},
		{"unknown check group", func(d *Descriptor) { d.Checksums[0].Check = "nope" }},
		{"no algorithm", func(d *Descriptor) { d.Checksums[0].Algorithm = nil }},
		{"short weights", func(d *Descriptor) {
			d.Checksums[0].Algorithm = WeightedModulus{Weights: []int{1, 2, 3}, Divider: 11}
		}},
		{"zero divider", func(d *Descriptor) {
			d.Checksums[0].Algorithm = WeightedModulus{Weights: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}}
		}},
		{"empty alphabet", func(d *Descriptor) { d.Checksums[0].Algorithm = Alphabet{} }},
		{"unknown semantic group", func(d *Descriptor) { d.Semantics.Serial = "nope" }},
		{"unknown constraint group", func(d *Descriptor) {
			d.Constraints = []Constraint{ForbiddenValues{Group: "nope", Values: []string{"000"}}}
		}},
		{"month band without base or fallback", func(d *Descriptor) {
			d.Semantics.Date = &DateRule{Year: "yy", Month: "mm", Day: "dd", Century: MonthOverload{
				Bands: []MonthBand{{Offset: 0}, {Offset: 20, Base: 2000}},
			}}
		}},
		{"month overload without bands", func(d *Descriptor) {
			d.Semantics.Date = &DateRule{Year: "yy", Month: "mm", Day: "dd", Century: MonthOverload{}}
		}},
		{"month overload fallback on unknown group", func(d *Descriptor) {
			d.Semantics.Date = &DateRule{Year: "yy", Month: "mm", Day: "dd", Century: MonthOverload{
				Bands:    []MonthBand{{Offset: 0}},
				Fallback: DirectMarker{Group: "nope", Bases: map[string]int{"1": 1900}},
			}}
		}},
		{"unknown case-insensitive group", func(d *Descriptor) { d.CaseInsensitive = []string{"nope"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDescriptor()
			d.Checksums = append([]ChecksumSpec(nil), d.Checksums...)
			sem := *d.Semantics
			d.Semantics = &sem
			tt.mutate(&d)

			err := d.Validate()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})
	}
}

func TestDescriptorCapabilities(t *testing.T) {
	d := validDescriptor()
	assert.True(t, d.Parsable())
	assert.True(t, d.HasChecksum())
	assert.Equal(t, []Kind{KindWeightedModulus}, d.Kinds())

	d.Semantics = nil
	d.Checksums = nil
	assert.False(t, d.Parsable())
	assert.False(t, d.HasChecksum())
}

func TestWithCountry(t *testing.T) {
	base := validDescriptor()
	base.Country = ""
	bound := base.WithCountry("SI")

	assert.Equal(t, "SI", bound.Country)
	assert.Empty(t, base.Country)
	assert.Equal(t, "SI/Sample", bound.Key())
}

func TestSemanticsGenders(t *testing.T) {
	assert.Nil(t, (*Semantics)(nil).Genders())
	assert.ElementsMatch(t, []string{"male", "female"}, genderStrings(validDescriptor().Semantics))
}

func genderStrings(s *Semantics) []string {
	var out []string
	for _, g := range s.Genders() {
		out = append(out, string(g))
	}
	return out
}
