package format

import "idnumbers/internal/idnumber/models"

// Semantics declares how captured fields turn into a ParseResult.
// A nil rule means the format does not encode that field.
type Semantics struct {
	Date        *DateRule
	Gender      GenderRule
	Citizenship CitizenshipRule
	Location    LocationRule
	// Serial names the group reported as the serial number.
	Serial string
}

// DateRule locates the birth date groups. Month and Day may both be empty
// for formats that only carry a year. A nil Century means Year holds the
// full year.
type DateRule struct {
	Year, Month, Day string
	Century          CenturyRule
}

// CenturyRule resolves a partial year into a full one. The set of
// implementations is closed.
type CenturyRule interface {
	isCenturyRule()
}

// DirectMarker maps the value of Group straight to a base year.
// Unknown marker values are semantically invalid.
type DirectMarker struct {
	Group string
	Bases map[string]int
}

// ParityBucket maps the numeric value of Group into buckets. Gender from
// the same group is declared separately with GenderByParity.
type ParityBucket struct {
	Group   string
	Buckets []Bucket
}

// Bucket is an inclusive range of marker values. Threshold, when set,
// replaces Base by splitting on the partial year.
type Bucket struct {
	Min, Max    int
	Base        int
	Threshold   *Threshold
	Citizenship models.Citizenship
}

// Threshold splits on the partial year: above Pivot uses Above, otherwise
// AtOrBelow.
type Threshold struct {
	Pivot     int
	Above     int
	AtOrBelow int
}

// MonthOverload recovers the true month by subtracting the offset of the
// band whose range 1..12 contains it. A band with Base 0 leaves the century
// to Fallback.
type MonthOverload struct {
	Bands    []MonthBand
	Fallback CenturyRule
}

// MonthBand is one month offset. Gender, when set, is reported for inputs
// in the band.
type MonthBand struct {
	Offset int
	Base   int
	Gender models.Gender
}

// RollingWindow resolves a two digit year against a reference date: the
// most recent matching year at or before the reference, moved back by
// the years Offsets assigns to the marker in Group.
type RollingWindow struct {
	Group   string
	Offsets map[string]int
}

func (DirectMarker) isCenturyRule()  {}
func (ParityBucket) isCenturyRule()  {}
func (Threshold) isCenturyRule()     {}
func (MonthOverload) isCenturyRule() {}
func (RollingWindow) isCenturyRule() {}

// GenderRule derives a gender. The set of implementations is closed.
type GenderRule interface {
	isGenderRule()
}

// GenderByParity reads the digit at Position of Group (negative counts from
// the end): odd is male, even is female.
type GenderByParity struct {
	Group    string
	Position int
}

// GenderByRange maps the numeric value of Group through inclusive ranges.
type GenderByRange struct {
	Group  string
	Ranges []GenderRange
}

type GenderRange struct {
	Min, Max int
	Gender   models.Gender
}

// GenderByMarker maps the exact value of Group. Unknown values are
// semantically invalid.
type GenderByMarker struct {
	Group  string
	Values map[string]models.Gender
}

func (GenderByParity) isGenderRule() {}
func (GenderByRange) isGenderRule()  {}
func (GenderByMarker) isGenderRule() {}

// CitizenshipRule derives a citizenship class. The set of implementations
// is closed.
type CitizenshipRule interface {
	isCitizenshipRule()
}

// CitizenshipByMarker maps the exact value of Group. Unknown values are
// semantically invalid.
type CitizenshipByMarker struct {
	Group  string
	Values map[string]models.Citizenship
}

// CitizenshipByRange maps the numeric value of Group; values outside every
// range get Default, or are invalid when Default is empty.
type CitizenshipByRange struct {
	Group   string
	Ranges  []CitizenshipRange
	Default models.Citizenship
}

type CitizenshipRange struct {
	Min, Max    int
	Citizenship models.Citizenship
}

func (CitizenshipByMarker) isCitizenshipRule() {}
func (CitizenshipByRange) isCitizenshipRule()  {}

// LocationRule validates and reports a registration location. The set of
// implementations is closed.
type LocationRule interface {
	isLocationRule()
}

// LocationAny reports Group without checking it.
type LocationAny struct {
	Group string
}

// LocationAllowList accepts only the listed codes.
type LocationAllowList struct {
	Group string
	Codes []string
}

// LocationDenyList accepts everything except the listed codes.
type LocationDenyList struct {
	Group string
	Codes []string
}

// LocationRange accepts Min..Max plus Extra, minus Except.
type LocationRange struct {
	Group    string
	Min, Max int
	Extra    []int
	Except   []int
}

// NestedLocation accepts a district only within its region.
type NestedLocation struct {
	Region, District string
	Districts        map[string][]string
}

func (LocationAny) isLocationRule()       {}
func (LocationAllowList) isLocationRule() {}
func (LocationDenyList) isLocationRule()  {}
func (LocationRange) isLocationRule()     {}
func (NestedLocation) isLocationRule()    {}
