package catalogue

import (
	"idnumbers/internal/idnumber/format"
	"idnumbers/internal/idnumber/models"
)

const spanishAlphabet = "TRWAGMYFPDXBNJZSQVHLCKE"

// balticPersonalCode is shared by Estonia and Lithuania: a gender and
// century digit, the birth date and a three digit serial.
func balticPersonalCode(name, country string, names []string) format.Descriptor {
	return format.Descriptor{
		Name:      name,
		Country:   country,
		Pattern:   format.Anchor(`(?P<marker>[1-8])(?P<yy>\d{2})(?P<mm>\d{2})(?P<dd>\d{2})(?P<sn>\d{3})(?P<check>\d)`),
		MinLength: 11,
		MaxLength: 11,
		Checksums: []format.ChecksumSpec{{
			Algorithm: format.WeightedModulus{
				Weights:     []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1},
				Fallback:    []int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3},
				Divider:     11,
				ModulusOnly: true,
				Overflow:    format.OverflowAs('0'),
			},
			Source: []string{"marker", "yy", "mm", "dd", "sn"},
			Check:  "check",
		}},
		Semantics: &format.Semantics{
			Date: &format.DateRule{
				Year: "yy", Month: "mm", Day: "dd",
				Century: format.ParityBucket{Group: "marker", Buckets: []format.Bucket{
					{Min: 1, Max: 2, Base: 1800},
					{Min: 3, Max: 4, Base: 1900},
					{Min: 5, Max: 6, Base: 2000},
					{Min: 7, Max: 8, Base: 2100},
				}},
			},
			Gender: format.GenderByParity{Group: "marker"},
			Serial: "sn",
		},
		Names: names,
	}
}

func europe() []Registration {
	return []Registration{
		{
			Descriptor: format.Descriptor{
				Name:       "SocialSecurityNumber",
				Country:    "CH",
				Pattern:    format.Anchor(`(?P<body>756\d{9})(?P<check>\d)`),
				Separators: ".",
				MinLength:  13,
				MaxLength:  13,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.EAN13{},
					Source:    []string{"body"},
					Check:     "check",
				}},
				Names: []string{"AHV-Nummer", "Numéro AVS", "Numero AVS"},
				Links: []string{"https://www.ahv-iv.ch/"},
			},
			Aliases: []string{"NationalID", "AHV", "AVS"},
		},
		{
			Descriptor: format.Descriptor{
				Name:      "BusinessID",
				Country:   "CH",
				Pattern:   format.Anchor(`CHE-?\d{3}\.?\d{3}\.?\d{3}`),
				MinLength: 12,
				MaxLength: 16,
				Names:     []string{"Unternehmens-Identifikationsnummer", "UID"},
				Links:     []string{"https://www.uid.admin.ch/"},
			},
			Aliases: []string{"UID"},
		},
		{
			Descriptor: format.Descriptor{
				Name:       "TaxID",
				Country:    "DE",
				Pattern:    format.Anchor(`(?P<body>\d{10})(?P<check>\d)`),
				Separators: " ",
				MinLength:  11,
				MaxLength:  11,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.MNModulus{M: 10, N: 11, Overflow: format.Units},
					Source:    []string{"body"},
					Check:     "check",
				}},
				Constraints: []format.Constraint{
					format.DigitRepetition{Group: "body", MaxRepeated: 1, MaxRun: 2},
				},
				Names: []string{"Steuerliche Identifikationsnummer", "IdNr"},
				Links: []string{"https://www.bzst.de/DE/Privatpersonen/SteuerlicheIdentifikationsnummer/steuerlicheidentifikationsnummer_node.html"},
			},
			Aliases: []string{"NationalID", "IdNr", "SteuerID"},
		},
		{
			Descriptor: balticPersonalCode("PersonalCode", "EE", []string{"Isikukood"}),
			Aliases:    []string{"NationalID", "Isikukood"},
		},
		{
			Descriptor: format.Descriptor{
				Name:      "DNI",
				Country:   "ES",
				Pattern:   format.Anchor(`(?P<body>\d{8})(?P<check>[A-Z])`),
				MinLength: 9,
				MaxLength: 9,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.Alphabet{Table: spanishAlphabet},
					Source:    []string{"body"},
					Check:     "check",
				}},
				Names: []string{"Documento Nacional de Identidad"},
				Links: []string{"https://www.interior.gob.es/"},
			},
			Aliases: []string{"NationalID"},
		},
		{
			Descriptor: format.Descriptor{
				Name:      "NIE",
				Country:   "ES",
				Pattern:   format.Anchor(`(?P<prefix>[XYZ])(?P<body>\d{7})(?P<check>[A-Z])`),
				MinLength: 9,
				MaxLength: 9,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.Alphabet{Table: spanishAlphabet},
					Source:    []string{"prefix", "body"},
					Letters:   map[byte]string{'X': "0", 'Y': "1", 'Z': "2"},
					Check:     "check",
				}},
				Names: []string{"Número de Identidad de Extranjero"},
			},
			Aliases: []string{"ForeignerID"},
		},
		{
			Descriptor: balticPersonalCode("PersonalCode", "LT", []string{"Asmens kodas"}),
			Aliases:    []string{"NationalID", "AsmensKodas"},
		},
		{
			Descriptor: format.Descriptor{
				Name:      "NationalID",
				Country:   "LU",
				Pattern:   format.Anchor(`(?P<yyyy>\d{4})(?P<mm>\d{2})(?P<dd>\d{2})(?P<sn>\d{3})(?P<luhn>\d)(?P<verhoeff>\d)`),
				MinLength: 13,
				MaxLength: 13,
				Checksums: []format.ChecksumSpec{
					{
						Algorithm: format.Luhn{DoubleRightmost: true},
						Source:    []string{"yyyy", "mm", "dd", "sn"},
						Check:     "luhn",
					},
					{
						Algorithm: format.Verhoeff{},
						Source:    []string{"yyyy", "mm", "dd", "sn"},
						Check:     "verhoeff",
					},
				},
				Semantics: &format.Semantics{
					Date:   &format.DateRule{Year: "yyyy", Month: "mm", Day: "dd"},
					Serial: "sn",
				},
				Names: []string{"Numéro d'identification national", "Matricule"},
				Links: []string{"https://ccss.lu/"},
			},
			Aliases: []string{"Matricule"},
		},
		{
			Descriptor: format.Descriptor{
				Name:      "PESEL",
				Country:   "PL",
				Pattern:   format.Anchor(`(?P<yy>\d{2})(?P<mm>\d{2})(?P<dd>\d{2})(?P<sn>\d{4})(?P<check>\d)`),
				MinLength: 11,
				MaxLength: 11,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.WeightedModulus{
						Weights:  []int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3},
						Divider:  10,
						Overflow: format.Units,
					},
					Source: []string{"yy", "mm", "dd", "sn"},
					Check:  "check",
				}},
				Semantics: &format.Semantics{
					Date: &format.DateRule{
						Year: "yy", Month: "mm", Day: "dd",
						Century: format.MonthOverload{Bands: []format.MonthBand{
							{Offset: 0, Base: 1900},
							{Offset: 20, Base: 2000},
							{Offset: 40, Base: 2100},
							{Offset: 60, Base: 2200},
							{Offset: 80, Base: 1800},
						}},
					},
					Gender: format.GenderByParity{Group: "sn", Position: -1},
					Serial: "sn",
				},
				Names: []string{"Powszechny Elektroniczny System Ewidencji Ludności"},
				Links: []string{"https://en.wikipedia.org/wiki/PESEL"},
			},
			Aliases: []string{"NationalID"},
		},
		{
			Descriptor: format.Descriptor{
				Name:    "CNP",
				Country: "RO",
				Pattern: format.Anchor(`(?P<marker>[1-8])(?P<yy>\d{2})(?P<mm>\d{2})(?P<dd>\d{2})` +
					`(?P<location>\d{2})(?P<sn>\d{3})(?P<check>\d)`),
				MinLength: 13,
				MaxLength: 13,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.WeightedModulus{
						Weights:     []int{2, 7, 9, 1, 4, 6, 3, 5, 8, 2, 7, 9},
						Divider:     11,
						ModulusOnly: true,
						Overflow:    format.OverflowAs('1'),
					},
					Source: []string{"marker", "yy", "mm", "dd", "location", "sn"},
					Check:  "check",
				}},
				Semantics: &format.Semantics{
					Date: &format.DateRule{
						Year: "yy", Month: "mm", Day: "dd",
						Century: format.ParityBucket{Group: "marker", Buckets: []format.Bucket{
							{Min: 1, Max: 2, Base: 1900, Citizenship: models.CitizenshipCitizen},
							{Min: 3, Max: 4, Base: 1800, Citizenship: models.CitizenshipCitizen},
							{Min: 5, Max: 6, Base: 2000, Citizenship: models.CitizenshipCitizen},
							{
								Min: 7, Max: 8,
								Threshold:   &format.Threshold{Pivot: 49, Above: 1900, AtOrBelow: 2000},
								Citizenship: models.CitizenshipResident,
							},
						}},
					},
					Gender:   format.GenderByParity{Group: "marker"},
					Location: format.LocationRange{Group: "location", Min: 1, Max: 52, Extra: []int{99}},
					Serial:   "sn",
				},
				Names: []string{"Cod Numeric Personal"},
				Links: []string{"https://ro.wikipedia.org/wiki/Cod_numeric_personal"},
			},
			Aliases: []string{"NationalID"},
		},
	}
}
