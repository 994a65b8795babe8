// Package reconstruct turns extracted fields into verified semantic values.
//
// Checksums are a hard gate: semantic rules never run on input whose check
// characters are wrong. Every function here is pure; the reference time for
// rolling century windows is supplied by the caller.
package reconstruct

import (
	"slices"
	"strconv"
	"time"

	"idnumbers/internal/idnumber/extract"
	"idnumbers/internal/idnumber/format"
	"idnumbers/internal/idnumber/models"
)

// Reconstruct verifies fields against d and recovers the semantic record.
// The returned state is StateChecksumFailed, StateSemanticallyInvalid or
// StateValid; the result is only populated for StateValid on parsable
// formats.
func Reconstruct(f extract.Fields, d format.Descriptor, ref time.Time) (models.ParseResult, models.State) {
	if !VerifyAll(f, d) {
		return models.ParseResult{}, models.StateChecksumFailed
	}
	if d.Semantics == nil {
		return models.ParseResult{}, models.StateValid
	}

	r, ok := decode(f, d, ref)
	if !ok {
		return models.ParseResult{}, models.StateSemanticallyInvalid
	}
	return r, models.StateValid
}

func decode(f extract.Fields, d format.Descriptor, ref time.Time) (models.ParseResult, bool) {
	s := d.Semantics
	b := models.NewResultBuilder(d.Name, d.Country)

	var implied implied
	if s.Date != nil {
		dt, ok := resolveDate(f, *s.Date, ref)
		if !ok {
			return models.ParseResult{}, false
		}
		if dt.full {
			b.BirthDate(dt.date)
		} else {
			b.BirthYear(dt.year)
		}
		implied = dt.implied
	}

	gender := implied.gender
	if s.Gender != nil {
		g, ok := resolveGender(f, s.Gender)
		if !ok {
			return models.ParseResult{}, false
		}
		gender = g
	}
	if gender != "" {
		b.Gender(gender)
	}

	citizenship := implied.citizenship
	if s.Citizenship != nil {
		c, ok := resolveCitizenship(f, s.Citizenship)
		if !ok {
			return models.ParseResult{}, false
		}
		citizenship = c
	}
	if citizenship != "" {
		b.Citizenship(citizenship)
	}

	if s.Location != nil {
		loc, ok := resolveLocation(f, s.Location)
		if !ok {
			return models.ParseResult{}, false
		}
		b.Location(loc)
	}

	if s.Serial != "" {
		b.Serial(f.Value(s.Serial))
	}

	for _, spec := range d.Checksums {
		if v := f.Value(spec.Check); v != "" {
			b.CheckDigits(models.CheckDigit(v[0]))
		}
	}
	return b.Build(), true
}

// implied carries classifications that fall out of century resolution.
type implied struct {
	gender      models.Gender
	citizenship models.Citizenship
}

type resolvedDate struct {
	date time.Time
	year int
	full bool
	implied
}

func resolveDate(f extract.Fields, rule format.DateRule, ref time.Time) (resolvedDate, bool) {
	var out resolvedDate

	partial, ok := f.Int(rule.Year)
	if !ok {
		return out, false
	}

	month := 0
	if rule.Month != "" {
		if month, ok = f.Int(rule.Month); !ok {
			return out, false
		}
	}

	var year int
	switch c := rule.Century.(type) {
	case nil:
		year = partial
	case format.MonthOverload:
		band, ok := matchBand(c.Bands, month)
		if !ok {
			return out, false
		}
		month -= band.Offset
		out.gender = band.Gender
		base := band.Base
		if base == 0 && c.Fallback != nil {
			var imp implied
			if base, imp, ok = centuryBase(f, c.Fallback, partial, ref); !ok {
				return out, false
			}
			out.citizenship = imp.citizenship
		}
		year = base + partial
	default:
		base, imp, ok := centuryBase(f, c, partial, ref)
		if !ok {
			return out, false
		}
		out.implied = imp
		year = base + partial
	}

	if rule.Month == "" && rule.Day == "" {
		out.year = year
		return out, year > 0
	}

	day, ok := f.Int(rule.Day)
	if !ok {
		return out, false
	}
	t, ok := calendarDate(year, month, day)
	if !ok {
		return out, false
	}
	out.date = t
	out.full = true
	return out, true
}

// centuryBase returns the amount to add to the partial year. Rolling windows
// return a full year minus the partial one so the caller can stay uniform.
func centuryBase(f extract.Fields, rule format.CenturyRule, partial int, ref time.Time) (int, implied, bool) {
	switch c := rule.(type) {
	case format.DirectMarker:
		base, ok := c.Bases[f.Value(c.Group)]
		return base, implied{}, ok
	case format.ParityBucket:
		marker, ok := f.Int(c.Group)
		if !ok {
			return 0, implied{}, false
		}
		for _, b := range c.Buckets {
			if marker < b.Min || marker > b.Max {
				continue
			}
			base := b.Base
			if b.Threshold != nil {
				base = thresholdBase(*b.Threshold, partial)
			}
			return base, implied{citizenship: b.Citizenship}, true
		}
		return 0, implied{}, false
	case format.Threshold:
		return thresholdBase(c, partial), implied{}, true
	case format.RollingWindow:
		offset, ok := c.Offsets[f.Value(c.Group)]
		if !ok {
			return 0, implied{}, false
		}
		return rollingYear(ref.Year()-offset, partial) - partial, implied{}, true
	}
	return 0, implied{}, false
}

func thresholdBase(t format.Threshold, partial int) int {
	if partial > t.Pivot {
		return t.Above
	}
	return t.AtOrBelow
}

// rollingYear is the latest year not after base whose last two digits are yy.
func rollingYear(base, yy int) int {
	return base - mod(base-yy, 100)
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func matchBand(bands []format.MonthBand, raw int) (format.MonthBand, bool) {
	for _, b := range bands {
		if m := raw - b.Offset; m >= 1 && m <= 12 {
			return b, true
		}
	}
	return format.MonthBand{}, false
}

// calendarDate builds a UTC date and rejects anything time.Date would
// normalize, such as February 30 or month 13.
func calendarDate(year, month, day int) (time.Time, bool) {
	if year <= 0 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func resolveGender(f extract.Fields, rule format.GenderRule) (models.Gender, bool) {
	switch r := rule.(type) {
	case format.GenderByParity:
		v := f.Value(r.Group)
		pos := r.Position
		if pos < 0 {
			pos += len(v)
		}
		if pos < 0 || pos >= len(v) || v[pos] < '0' || v[pos] > '9' {
			return "", false
		}
		if (v[pos]-'0')%2 == 1 {
			return models.GenderMale, true
		}
		return models.GenderFemale, true
	case format.GenderByRange:
		n, ok := f.Int(r.Group)
		if !ok {
			return "", false
		}
		for _, rg := range r.Ranges {
			if n >= rg.Min && n <= rg.Max {
				return rg.Gender, true
			}
		}
	case format.GenderByMarker:
		g, ok := r.Values[f.Value(r.Group)]
		return g, ok
	}
	return "", false
}

func resolveCitizenship(f extract.Fields, rule format.CitizenshipRule) (models.Citizenship, bool) {
	switch r := rule.(type) {
	case format.CitizenshipByMarker:
		c, ok := r.Values[f.Value(r.Group)]
		return c, ok
	case format.CitizenshipByRange:
		n, ok := f.Int(r.Group)
		if !ok {
			return "", false
		}
		for _, rg := range r.Ranges {
			if n >= rg.Min && n <= rg.Max {
				return rg.Citizenship, true
			}
		}
		return r.Default, r.Default != ""
	}
	return "", false
}

func resolveLocation(f extract.Fields, rule format.LocationRule) (models.Location, bool) {
	switch r := rule.(type) {
	case format.LocationAny:
		v, ok := f.Get(r.Group)
		return models.Location{Region: v}, ok
	case format.LocationAllowList:
		v := f.Value(r.Group)
		return models.Location{Region: v}, slices.Contains(r.Codes, v)
	case format.LocationDenyList:
		v, ok := f.Get(r.Group)
		return models.Location{Region: v}, ok && !slices.Contains(r.Codes, v)
	case format.LocationRange:
		v := f.Value(r.Group)
		n, err := strconv.Atoi(v)
		if err != nil || slices.Contains(r.Except, n) {
			return models.Location{}, false
		}
		inRange := n >= r.Min && n <= r.Max
		return models.Location{Region: v}, inRange || slices.Contains(r.Extra, n)
	case format.NestedLocation:
		region, district := f.Value(r.Region), f.Value(r.District)
		districts, ok := r.Districts[region]
		if !ok || !slices.Contains(districts, district) {
			return models.Location{}, false
		}
		return models.Location{Region: region, District: district}, true
	}
	return models.Location{}, false
}
