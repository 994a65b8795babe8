// Package format declares ID number formats as immutable values.
//
// A Descriptor is pure data: a pattern with named groups, the checksums that
// apply to those groups, and optional rules for recovering semantic fields.
// Extraction and reconstruction interpret descriptors; nothing here runs an
// algorithm.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"idnumbers/internal/idnumber/models"
	dErrors "idnumbers/pkg/domain-errors"
)

// Descriptor describes one ID number format.
type Descriptor struct {
	// Name is the canonical format name, unique within a country.
	Name string
	// Country is the ISO 3166-1 alpha-2 code. Shared numbering schemes leave
	// it empty and are bound per country with WithCountry.
	Country string

	// Pattern must be built with Anchor so it only matches whole inputs.
	Pattern *regexp.Regexp
	// Separators are stripped from the input before matching.
	Separators string
	// CaseInsensitive groups are upper-cased after matching. The pattern must
	// accept both cases for them.
	CaseInsensitive []string
	// MinLength and MaxLength bound the input after separators are stripped.
	MinLength, MaxLength int

	Checksums   []ChecksumSpec
	Semantics   *Semantics
	Constraints []Constraint

	Names      []string
	Links      []string
	Deprecated bool
}

// Anchor compiles expr so it has to match the entire input.
// It panics on invalid expressions, like regexp.MustCompile.
func Anchor(expr string) *regexp.Regexp {
	return regexp.MustCompile(anchorPrefix + expr + anchorSuffix)
}

const (
	anchorPrefix = `^(?:`
	anchorSuffix = `)$`
)

// Parsable reports whether reconstruction is defined for the format.
func (d Descriptor) Parsable() bool {
	return d.Semantics != nil
}

// HasChecksum reports whether the format declares at least one checksum.
func (d Descriptor) HasChecksum() bool {
	return len(d.Checksums) > 0
}

// Kinds lists the checksum algorithm kinds in declaration order.
func (d Descriptor) Kinds() []Kind {
	kinds := make([]Kind, 0, len(d.Checksums))
	for _, c := range d.Checksums {
		kinds = append(kinds, c.Algorithm.Kind())
	}
	return kinds
}

// WithCountry returns a copy bound to a country. Slices and rules are shared
// with the receiver; descriptors are never mutated after construction.
func (d Descriptor) WithCountry(code string) Descriptor {
	d.Country = code
	return d
}

// Key is the registry key of the descriptor.
func (d Descriptor) Key() string {
	return d.Country + "/" + d.Name
}

// Constraint is a shape rule checked right after matching. A violated
// constraint means the input does not have the format's shape. The set of
// implementations is closed.
type Constraint interface {
	isConstraint()
}

// ForbiddenValues rejects inputs whose Group equals one of Values.
type ForbiddenValues struct {
	Group  string
	Values []string
}

// DigitRepetition limits repeated digits within Group: at most MaxRepeated
// distinct digits may occur more than once, and no digit may run more than
// MaxRun times in a row. Zero disables a limit.
type DigitRepetition struct {
	Group       string
	MaxRepeated int
	MaxRun      int
}

func (ForbiddenValues) isConstraint() {}
func (DigitRepetition) isConstraint() {}

// Validate checks the descriptor for internal consistency. Failures are
// programmer errors in format data, reported as invariant violations.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return invariant("", "name is required")
	}
	if d.Pattern == nil {
		return invariant(d.Name, "pattern is required")
	}
	expr := d.Pattern.String()
	if !strings.HasPrefix(expr, anchorPrefix) || !strings.HasSuffix(expr, anchorSuffix) {
		return invariant(d.Name, "pattern must be built with format.Anchor")
	}
	if d.MinLength < 0 || d.MaxLength < 0 || (d.MaxLength > 0 && d.MaxLength < d.MinLength) {
		return invariant(d.Name, fmt.Sprintf("length bounds %d..%d are inconsistent", d.MinLength, d.MaxLength))
	}

	groups := map[string]bool{}
	for _, g := range d.Pattern.SubexpNames() {
		if g != "" {
			groups[g] = true
		}
	}
	check := func(what, g string) error {
		if !groups[g] {
			return invariant(d.Name, fmt.Sprintf("%s refers to unknown group %q", what, g))
		}
		return nil
	}

	for _, g := range d.CaseInsensitive {
		if err := check("case-insensitive list", g); err != nil {
			return err
		}
	}
	for i, c := range d.Checksums {
		if err := d.validateChecksum(i, c, check); err != nil {
			return err
		}
	}
	for _, c := range d.Constraints {
		var err error
		switch c := c.(type) {
		case ForbiddenValues:
			err = check("forbidden values", c.Group)
		case DigitRepetition:
			err = check("digit repetition", c.Group)
		}
		if err != nil {
			return err
		}
	}
	if d.Semantics != nil {
		return d.validateSemantics(check)
	}
	return nil
}

func (d Descriptor) validateChecksum(i int, c ChecksumSpec, check func(string, string) error) error {
	what := fmt.Sprintf("checksum %d", i)
	if c.Algorithm == nil {
		return invariant(d.Name, what+" has no algorithm")
	}
	if len(c.Source) == 0 {
		return invariant(d.Name, what+" has no source groups")
	}
	for _, g := range c.Source {
		if err := check(what, g); err != nil {
			return err
		}
	}
	if err := check(what, c.Check); err != nil {
		return err
	}
	switch a := c.Algorithm.(type) {
	case WeightedModulus:
		if a.Divider <= 0 {
			return invariant(d.Name, what+" needs a positive divider")
		}
		if len(a.Weights) == 0 {
			return invariant(d.Name, what+" has no weights")
		}
		if width, fixed := sourceWidth(d.Pattern, c); fixed && len(a.Weights) < width {
			return invariant(d.Name, fmt.Sprintf("%s: %d weights cannot cover %d source digits", what, len(a.Weights), width))
		}
		if len(a.Fallback) > 0 && len(a.Fallback) < len(a.Weights) {
			return invariant(d.Name, what+" fallback weights are shorter than the primary weights")
		}
	case MNModulus:
		if a.M <= 0 || a.N <= 0 {
			return invariant(d.Name, what+" needs positive M and N")
		}
	case Alphabet:
		if a.Table == "" {
			return invariant(d.Name, what+" has an empty alphabet")
		}
	}
	return nil
}

// sourceWidth sums the widths of the source groups when every one of them
// is a plain digit run of fixed length. Other sources are checked when the
// algorithm runs.
var fixedQuant = regexp.MustCompile(`^\\d\{(\d+)\}$|^\\d$`)

func sourceWidth(re *regexp.Regexp, c ChecksumSpec) (int, bool) {
	if len(c.Letters) > 0 {
		return 0, false
	}
	bodies := groupBodies(re.String())
	total := 0
	for _, g := range c.Source {
		body, ok := bodies[g]
		if !ok {
			return 0, false
		}
		m := fixedQuant.FindStringSubmatch(body)
		if m == nil {
			return 0, false
		}
		if m[1] == "" {
			total++
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		total += n
	}
	return total, true
}

// groupBodies returns the source text of each named group that contains no
// nested parentheses.
func groupBodies(expr string) map[string]string {
	out := map[string]string{}
	for _, m := range namedGroup.FindAllStringSubmatch(expr, -1) {
		out[m[1]] = m[2]
	}
	return out
}

var namedGroup = regexp.MustCompile(`\(\?P<(\w+)>([^()]*)\)`)

func (d Descriptor) validateSemantics(check func(string, string) error) error {
	s := d.Semantics
	var groups []string
	if s.Date != nil {
		groups = append(groups, s.Date.Year)
		if s.Date.Month != "" || s.Date.Day != "" {
			groups = append(groups, s.Date.Month, s.Date.Day)
		}
		switch r := s.Date.Century.(type) {
		case DirectMarker:
			groups = append(groups, r.Group)
		case ParityBucket:
			groups = append(groups, r.Group)
		case RollingWindow:
			groups = append(groups, r.Group)
		case MonthOverload:
			if s.Date.Month == "" {
				return invariant(d.Name, "month overload needs a month group")
			}
			if len(r.Bands) == 0 {
				return invariant(d.Name, "month overload needs at least one band")
			}
			for _, b := range r.Bands {
				if b.Base == 0 && r.Fallback == nil {
					return invariant(d.Name, fmt.Sprintf("month band +%d has no base century and no fallback", b.Offset))
				}
			}
			switch fb := r.Fallback.(type) {
			case DirectMarker:
				groups = append(groups, fb.Group)
			case ParityBucket:
				groups = append(groups, fb.Group)
			case RollingWindow:
				groups = append(groups, fb.Group)
			case MonthOverload:
				return invariant(d.Name, "month overload cannot fall back to another month overload")
			}
		}
	}
	switch r := s.Gender.(type) {
	case GenderByParity:
		groups = append(groups, r.Group)
	case GenderByRange:
		groups = append(groups, r.Group)
	case GenderByMarker:
		groups = append(groups, r.Group)
	}
	switch r := s.Citizenship.(type) {
	case CitizenshipByMarker:
		groups = append(groups, r.Group)
	case CitizenshipByRange:
		groups = append(groups, r.Group)
	}
	switch r := s.Location.(type) {
	case LocationAny:
		groups = append(groups, r.Group)
	case LocationAllowList:
		groups = append(groups, r.Group)
	case LocationDenyList:
		groups = append(groups, r.Group)
	case LocationRange:
		groups = append(groups, r.Group)
	case NestedLocation:
		groups = append(groups, r.Region, r.District)
	}
	if s.Serial != "" {
		groups = append(groups, s.Serial)
	}
	for _, g := range groups {
		if err := check("semantics", g); err != nil {
			return err
		}
	}
	return nil
}

func invariant(name, msg string) error {
	if name == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "format descriptor: "+msg)
	}
	return dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("format %s: %s", name, msg))
}

// Genders lists the genders a descriptor can report, for catalogue metadata.
func (s *Semantics) Genders() []models.Gender {
	if s == nil {
		return nil
	}
	seen := map[models.Gender]bool{}
	var out []models.Gender
	add := func(g models.Gender) {
		if g != "" && !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	switch r := s.Gender.(type) {
	case GenderByParity:
		add(models.GenderMale)
		add(models.GenderFemale)
	case GenderByRange:
		for _, rg := range r.Ranges {
			add(rg.Gender)
		}
	case GenderByMarker:
		for _, g := range []models.Gender{models.GenderMale, models.GenderFemale, models.GenderNonBinary} {
			for _, v := range r.Values {
				if v == g {
					add(g)
				}
			}
		}
	}
	if s.Date != nil {
		if mo, ok := s.Date.Century.(MonthOverload); ok {
			for _, b := range mo.Bands {
				add(b.Gender)
			}
		}
	}
	return out
}
