package catalogue

import (
	"idnumbers/internal/idnumber/format"
	"idnumbers/internal/idnumber/models"
)

func africa() []Registration {
	return []Registration{
		{
			Descriptor: format.Descriptor{
				Name:      "NationalIdentificationNumber",
				Country:   "NG",
				Pattern:   format.Anchor(`\d{11}`),
				MinLength: 11,
				MaxLength: 11,
				Names:     []string{"National Identification Number", "NIN"},
				Links:     []string{"https://nimc.gov.ng/about-nin/"},
			},
			Aliases: []string{"NationalID", "NIN"},
		},
		{
			Descriptor: format.Descriptor{
				Name:    "NationalID",
				Country: "ZA",
				Pattern: format.Anchor(`(?P<yy>\d{2})(?P<mm>0[1-9]|1[0-2])(?P<dd>0[1-9]|[12]\d|3[01])` +
					`(?P<sn>\d{4})(?P<citizenship>[01])(?P<legacy>[89])(?P<check>\d)`),
				MinLength: 13,
				MaxLength: 13,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.Luhn{DoubleRightmost: true},
					Source:    []string{"yy", "mm", "dd", "sn", "citizenship", "legacy"},
					Check:     "check",
				}},
				Semantics: &format.Semantics{
					Date: &format.DateRule{
						Year: "yy", Month: "mm", Day: "dd",
						Century: format.Threshold{Pivot: 49, Above: 1900, AtOrBelow: 2000},
					},
					Gender: format.GenderByRange{Group: "sn", Ranges: []format.GenderRange{
						{Min: 0, Max: 4999, Gender: models.GenderFemale},
						{Min: 5000, Max: 9999, Gender: models.GenderMale},
					}},
					Citizenship: format.CitizenshipByMarker{Group: "citizenship", Values: map[string]models.Citizenship{
						"0": models.CitizenshipCitizen,
						"1": models.CitizenshipResident,
					}},
					Serial: "sn",
				},
				Names: []string{"South African Identity Number"},
				Links: []string{"https://en.wikipedia.org/wiki/South_African_identity_card"},
			},
			Aliases: []string{"IDNumber"},
		},
	}
}
