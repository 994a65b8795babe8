package catalogue

import (
	"idnumbers/internal/idnumber/format"
)

func nordic() []Registration {
	return []Registration{
		{
			Descriptor: format.Descriptor{
				Name:       "CPR",
				Country:    "DK",
				Pattern:    format.Anchor(`(?P<dd>\d{2})(?P<mm>\d{2})(?P<yy>\d{2})(?P<sn>\d{4})`),
				Separators: "-",
				MinLength:  10,
				MaxLength:  10,
				Semantics: &format.Semantics{
					Date: &format.DateRule{
						Year: "yy", Month: "mm", Day: "dd",
						Century: format.Threshold{Pivot: 50, Above: 1900, AtOrBelow: 2000},
					},
					Serial: "sn",
				},
				Names: []string{"Det Centrale Personregister", "CPR-nummer"},
				Links: []string{"https://cpr.dk/"},
			},
			Aliases: []string{"NationalID", "CPRNumber"},
		},
		{
			Descriptor: format.Descriptor{
				Name:    "HETU",
				Country: "FI",
				Pattern: format.Anchor(`(?P<dd>\d{2})(?P<mm>\d{2})(?P<yy>\d{2})(?P<century>[-+A-FU-Y])` +
					`(?P<sn>\d{3})(?P<check>[0-9A-Y])`),
				MinLength: 11,
				MaxLength: 11,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.Alphabet{Table: "0123456789ABCDEFHJKLMNPRSTUVWXY"},
					Source:    []string{"dd", "mm", "yy", "sn"},
					Check:     "check",
				}},
				Semantics: &format.Semantics{
					Date: &format.DateRule{
						Year: "yy", Month: "mm", Day: "dd",
						Century: format.DirectMarker{Group: "century", Bases: map[string]int{
							"+": 1800,
							"-": 1900, "U": 1900, "V": 1900, "W": 1900, "X": 1900, "Y": 1900,
							"A": 2000, "B": 2000, "C": 2000, "D": 2000, "E": 2000, "F": 2000,
						}},
					},
					Gender: format.GenderByParity{Group: "sn", Position: -1},
					Serial: "sn",
				},
				Names: []string{"Henkilötunnus", "Personbeteckning"},
				Links: []string{"https://dvv.fi/en/personal-identity-code"},
			},
			Aliases: []string{"NationalID", "PersonalIdentityCode"},
		},
		{
			Descriptor: format.Descriptor{
				Name:      "BirthNumber",
				Country:   "NO",
				Pattern:   format.Anchor(`(?P<dd>\d{2})(?P<mm>\d{2})(?P<yy>\d{2})(?P<individual>\d{3})(?P<k1>\d)(?P<k2>\d)`),
				MinLength: 11,
				MaxLength: 11,
				Checksums: []format.ChecksumSpec{
					{
						Algorithm: format.WeightedModulus{
							Weights:  []int{3, 7, 6, 1, 8, 9, 4, 5, 2},
							Divider:  11,
							Overflow: format.Wrap,
						},
						Source: []string{"dd", "mm", "yy", "individual"},
						Check:  "k1",
					},
					{
						Algorithm: format.WeightedModulus{
							Weights:  []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2},
							Divider:  11,
							Overflow: format.Wrap,
						},
						Source: []string{"dd", "mm", "yy", "individual", "k1"},
						Check:  "k2",
					},
				},
				Semantics: &format.Semantics{
					Date: &format.DateRule{
						Year: "yy", Month: "mm", Day: "dd",
						Century: format.ParityBucket{Group: "individual", Buckets: []format.Bucket{
							{Min: 0, Max: 499, Base: 1900},
							{Min: 500, Max: 749, Threshold: &format.Threshold{Pivot: 53, Above: 1800, AtOrBelow: 2000}},
							{Min: 750, Max: 899, Base: 2000},
							{Min: 900, Max: 999, Threshold: &format.Threshold{Pivot: 39, Above: 1900, AtOrBelow: 2000}},
						}},
					},
					Gender: format.GenderByParity{Group: "individual", Position: -1},
					Serial: "individual",
				},
				Names: []string{"Fødselsnummer"},
				Links: []string{"https://www.skatteetaten.no/en/person/national-registry/identitetsnummer/fodselsnummer/"},
			},
			Aliases: []string{"NationalID", "Fodselsnummer"},
		},
		{
			Descriptor: format.Descriptor{
				Name:      "PersonalIdentityNumber",
				Country:   "SE",
				Pattern:   format.Anchor(`(?P<yy>\d{2})(?P<mm>\d{2})(?P<dd>\d{2})(?P<sep>[-+])(?P<sn>\d{3})(?P<check>\d)`),
				MinLength: 11,
				MaxLength: 11,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.Luhn{DoubleRightmost: true},
					Source:    []string{"yy", "mm", "dd", "sn"},
					Check:     "check",
				}},
				Constraints: []format.Constraint{
					format.ForbiddenValues{Group: "sn", Values: []string{"000"}},
				},
				Semantics: &format.Semantics{
					Date: &format.DateRule{
						Year: "yy", Month: "mm", Day: "dd",
						Century: format.RollingWindow{Group: "sep", Offsets: map[string]int{"-": 0, "+": 100}},
					},
					Gender: format.GenderByParity{Group: "sn", Position: -1},
					Serial: "sn",
				},
				Names: []string{"Personnummer"},
				Links: []string{"https://www.skatteverket.se/"},
			},
			Aliases: []string{"NationalID", "Personnummer"},
		},
	}
}
