package catalogue

import (
	"idnumbers/internal/idnumber/format"
	"idnumbers/internal/idnumber/models"
)

// Czech and Slovak birth numbers share one scheme inherited from
// Czechoslovakia. Women add 50 to the month; since 2004 either sex may add
// a further 20 when a day's serials run out.
func birthNumber(country string) format.Descriptor {
	return format.Descriptor{
		Name:       "BirthNumber",
		Country:    country,
		Pattern:    format.Anchor(`(?P<yy>\d{2})(?P<mm>\d{2})(?P<dd>\d{2})(?P<sn>\d{3})(?P<check>\d)`),
		Separators: "/",
		MinLength:  10,
		MaxLength:  10,
		Checksums: []format.ChecksumSpec{{
			Algorithm: format.Alphabet{Table: "01234567890"},
			Source:    []string{"yy", "mm", "dd", "sn"},
			Check:     "check",
		}},
		Semantics: &format.Semantics{
			Date: &format.DateRule{
				Year: "yy", Month: "mm", Day: "dd",
				Century: format.MonthOverload{
					Bands: []format.MonthBand{
						{Offset: 0, Gender: models.GenderMale},
						{Offset: 20, Gender: models.GenderMale},
						{Offset: 50, Gender: models.GenderFemale},
						{Offset: 70, Gender: models.GenderFemale},
					},
					Fallback: format.Threshold{Pivot: 53, Above: 1900, AtOrBelow: 2000},
				},
			},
			Serial: "sn",
		},
		Names: []string{"Rodné číslo"},
		Links: []string{"https://en.wikipedia.org/wiki/National_identification_number#Czech_Republic_and_Slovakia"},
	}
}

// birthNumberPre1954 covers the nine digit numbers issued before 1954,
// which carry no check digit.
func birthNumberPre1954(country string) format.Descriptor {
	return format.Descriptor{
		Name:       "BirthNumberPre1954",
		Country:    country,
		Pattern:    format.Anchor(`(?P<yy>[0-4]\d|5[0-3])(?P<mm>\d{2})(?P<dd>\d{2})(?P<sn>\d{3})`),
		Separators: "/",
		MinLength:  9,
		MaxLength:  9,
		Semantics: &format.Semantics{
			Date: &format.DateRule{
				Year: "yy", Month: "mm", Day: "dd",
				Century: format.MonthOverload{Bands: []format.MonthBand{
					{Offset: 0, Base: 1900, Gender: models.GenderMale},
					{Offset: 50, Base: 1900, Gender: models.GenderFemale},
				}},
			},
			Serial: "sn",
		},
		Names:      []string{"Rodné číslo (do roku 1954)"},
		Deprecated: true,
	}
}

func birthNumbers() []Registration {
	return []Registration{
		{Descriptor: birthNumber("CZ"), Aliases: []string{"NationalID", "RodneCislo"}},
		{Descriptor: birthNumberPre1954("CZ"), Aliases: []string{"OldBirthNumber"}},
		{Descriptor: birthNumber("SK"), Aliases: []string{"NationalID", "RodneCislo"}},
		{Descriptor: birthNumberPre1954("SK"), Aliases: []string{"OldBirthNumber"}},
		{
			Descriptor: format.Descriptor{
				Name:       "CitizenIDNumber",
				Country:    "SK",
				Pattern:    format.Anchor(`[A-Z]{2}\d{6}`),
				Separators: " ",
				MinLength:  8,
				MaxLength:  8,
				Names:      []string{"Číslo občianskeho preukazu"},
			},
			Aliases: []string{"IdentityCard"},
		},
	}
}
