// Package extract matches raw input against a format and captures its fields.
package extract

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"idnumbers/internal/idnumber/format"
	pstrings "idnumbers/pkg/platform/strings"
)

// Field is one named capture.
type Field struct {
	Name  string
	Value string
}

// Fields holds captures in pattern declaration order. Optional groups that
// did not participate in the match are absent.
type Fields []Field

// Get returns the value captured by the named group.
func (f Fields) Get(name string) (string, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// Value is Get without the presence flag.
func (f Fields) Value(name string) string {
	v, _ := f.Get(name)
	return v
}

// Int parses the named group as a decimal number.
func (f Fields) Int(name string) (int, bool) {
	v, ok := f.Get(name)
	if !ok || v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Concat joins the named groups in the order given. Missing groups
// contribute nothing.
func (f Fields) Concat(names ...string) string {
	var b strings.Builder
	for _, n := range names {
		b.WriteString(f.Value(n))
	}
	return b.String()
}

// Digits converts the concatenated groups to a digit slice. It fails when
// any character is not a decimal digit.
func (f Fields) Digits(names ...string) ([]int, bool) {
	return DigitsOf(f.Concat(names...))
}

// Names lists the captured group names in order.
func (f Fields) Names() []string {
	names := make([]string, len(f))
	for i, field := range f {
		names[i] = field.Name
	}
	return names
}

// DigitsOf converts s to digits, failing on any non-digit character.
func DigitsOf(s string) ([]int, bool) {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		out[i] = int(c - '0')
	}
	return out, true
}

// Normalize strips the descriptor's separator characters from text.
func Normalize(text string, d format.Descriptor) string {
	return pstrings.StripAny(text, d.Separators)
}

// Extract normalizes text and matches it against d. It reports false when
// the input is out of the length bounds, does not match the whole pattern,
// or violates a shape constraint.
func Extract(text string, d format.Descriptor) (Fields, bool) {
	normalized := Normalize(text, d)

	n := utf8.RuneCountInString(normalized)
	if n == 0 || n < d.MinLength || (d.MaxLength > 0 && n > d.MaxLength) {
		return nil, false
	}

	loc := d.Pattern.FindStringSubmatchIndex(normalized)
	if loc == nil {
		return nil, false
	}

	names := d.Pattern.SubexpNames()
	fields := make(Fields, 0, len(names))
	for i, name := range names {
		if name == "" || loc[2*i] < 0 {
			continue
		}
		value := normalized[loc[2*i]:loc[2*i+1]]
		if slices.Contains(d.CaseInsensitive, name) {
			value = strings.ToUpper(value)
		}
		fields = append(fields, Field{Name: name, Value: value})
	}

	for _, c := range d.Constraints {
		if !satisfies(fields, c) {
			return nil, false
		}
	}
	return fields, true
}

func satisfies(f Fields, c format.Constraint) bool {
	switch c := c.(type) {
	case format.ForbiddenValues:
		v, ok := f.Get(c.Group)
		return !ok || !slices.Contains(c.Values, v)
	case format.DigitRepetition:
		return repetitionOK(f.Value(c.Group), c.MaxRepeated, c.MaxRun)
	}
	return true
}

func repetitionOK(s string, maxRepeated, maxRun int) bool {
	var counts [256]int
	run := 0
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
		if i > 0 && s[i] == s[i-1] {
			run++
		} else {
			run = 1
		}
		if maxRun > 0 && run > maxRun {
			return false
		}
	}
	if maxRepeated > 0 {
		repeated := 0
		for _, c := range counts {
			if c > 1 {
				repeated++
			}
		}
		if repeated > maxRepeated {
			return false
		}
	}
	return true
}
