package catalogue

import (
	"idnumbers/internal/idnumber/format"
	"idnumbers/internal/idnumber/models"
)

// jmbgUnusedRegions are political region codes never assigned.
var jmbgUnusedRegions = []string{"20", "40", "51", "52", "53", "54", "55", "56", "57", "58", "59", "90", "97", "98", "99"}

// JMBG returns the Unique Master Citizen Number shared by the former
// Yugoslav republics. It has no country; every region code counts as
// domestic. Bind it with WithCountry, or use a national variant from the
// catalogue, which also classifies foreign region codes as residents.
func JMBG() format.Descriptor {
	return jmbg(format.CitizenshipByRange{Group: "location", Default: models.CitizenshipCitizen})
}

func jmbg(citizenship format.CitizenshipRule) format.Descriptor {
	return format.Descriptor{
		Name: "UniqueMasterCitizenNumber",
		Pattern: format.Anchor(`(?P<dd>\d{2})(?P<mm>\d{2})(?P<yyy>\d{3})` +
			`(?P<location>\d{2})(?P<sn>\d{3})(?P<check>\d)`),
		MinLength: 13,
		MaxLength: 13,
		Checksums: []format.ChecksumSpec{{
			Algorithm: format.WeightedModulus{
				Weights:  []int{7, 6, 5, 4, 3, 2, 7, 6, 5, 4, 3, 2},
				Divider:  11,
				Overflow: format.OverflowAs('0'),
			},
			Source: []string{"dd", "mm", "yyy", "location", "sn"},
			Check:  "check",
		}},
		Semantics: &format.Semantics{
			Date: &format.DateRule{
				Year: "yyy", Month: "mm", Day: "dd",
				Century: format.Threshold{Pivot: 799, Above: 1000, AtOrBelow: 2000},
			},
			Gender: format.GenderByRange{Group: "sn", Ranges: []format.GenderRange{
				{Min: 0, Max: 499, Gender: models.GenderMale},
				{Min: 500, Max: 999, Gender: models.GenderFemale},
			}},
			Citizenship: citizenship,
			Location:    format.LocationDenyList{Group: "location", Codes: jmbgUnusedRegions},
			Serial:      "sn",
		},
		Names: []string{"Jedinstveni matični broj građana", "JMBG", "EMŠO", "ЕМБГ"},
		Links: []string{"https://en.wikipedia.org/wiki/Unique_Master_Citizen_Number"},
	}
}

// jmbgVariant marks the listed region codes as citizens and every other
// code as resident.
func jmbgVariant(country string, min, max int) format.Descriptor {
	return jmbg(format.CitizenshipByRange{
		Group:   "location",
		Ranges:  []format.CitizenshipRange{{Min: min, Max: max, Citizenship: models.CitizenshipCitizen}},
		Default: models.CitizenshipResident,
	}).WithCountry(country)
}

func jmbgCountries() []Registration {
	return []Registration{
		{Descriptor: jmbgVariant("BA", 10, 19), Aliases: []string{"NationalID", "JMB"}},
		{Descriptor: jmbgVariant("MK", 41, 49), Aliases: []string{"NationalID", "EMBG"}},
		{Descriptor: jmbgVariant("RS", 71, 99), Aliases: []string{"NationalID", "JMBG"}},
		{Descriptor: jmbgVariant("SI", 50, 50), Aliases: []string{"NationalID", "EMSO"}},
	}
}
