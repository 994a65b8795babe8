package catalogue

import (
	"idnumbers/internal/idnumber/format"
	"idnumbers/internal/idnumber/models"
)

var taiwanRegionCodes = map[byte]string{
	'A': "10", 'B': "11", 'C': "12", 'D': "13", 'E': "14", 'F': "15", 'G': "16", 'H': "17",
	'I': "34", 'J': "18", 'K': "19", 'L': "20", 'M': "21", 'N': "22", 'O': "35", 'P': "23",
	'Q': "24", 'R': "25", 'S': "26", 'T': "27", 'U': "28", 'V': "29", 'W': "32", 'X': "30",
	'Y': "31", 'Z': "33",
}

var koreanCenturyMarkers = map[string]int{
	"9": 1800, "0": 1800,
	"1": 1900, "2": 1900, "5": 1900, "6": 1900,
	"3": 2000, "4": 2000, "7": 2000, "8": 2000,
}

func asia() []Registration {
	return []Registration{
		{
			Descriptor: format.Descriptor{
				Name:       "EmiratesIDNumber",
				Country:    "AE",
				Pattern:    format.Anchor(`(?P<prefix>784)(?P<yyyy>\d{4})(?P<sn>\d{7})(?P<check>\d)`),
				Separators: " -",
				MinLength:  15,
				MaxLength:  15,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.Luhn{DoubleRightmost: true},
					Source:    []string{"prefix", "yyyy", "sn"},
					Check:     "check",
				}},
				Semantics: &format.Semantics{
					Date:   &format.DateRule{Year: "yyyy"},
					Serial: "sn",
				},
				Names: []string{"Emirates ID"},
				Links: []string{"https://u.ae/en/information-and-services/visa-and-emirates-id/emirates-id"},
			},
			Aliases: []string{"NationalID", "EmiratesID"},
		},
		{
			Descriptor: format.Descriptor{
				Name:    "ResidentID",
				Country: "CN",
				Pattern: format.Anchor(`(?P<address>\d{6})(?P<yyyy>\d{4})(?P<mm>0[1-9]|1[0-2])` +
					`(?P<dd>0[1-9]|[12]\d|3[01])(?P<sn>\d{3})(?P<check>[0-9Xx])`),
				CaseInsensitive: []string{"check"},
				MinLength:       18,
				MaxLength:       18,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.ISO7064{Overflow: format.OverflowAs('X')},
					Source:    []string{"address", "yyyy", "mm", "dd", "sn"},
					Check:     "check",
				}},
				Semantics: &format.Semantics{
					Date:     &format.DateRule{Year: "yyyy", Month: "mm", Day: "dd"},
					Gender:   format.GenderByParity{Group: "sn", Position: -1},
					Location: format.LocationAny{Group: "address"},
					Serial:   "sn",
				},
				Names: []string{"Resident Identity Card Number", "居民身份证号码"},
				Links: []string{"https://en.wikipedia.org/wiki/Resident_Identity_Card"},
			},
			Aliases: []string{"NationalID"},
		},
		{
			Descriptor: format.Descriptor{
				Name:      "IdentityNumber",
				Country:   "IL",
				Pattern:   format.Anchor(`(?P<body>\d{8})(?P<check>\d)`),
				MinLength: 9,
				MaxLength: 9,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.Luhn{DoubleRightmost: true},
					Source:    []string{"body"},
					Check:     "check",
				}},
				Names: []string{"Teudat Zehut"},
				Links: []string{"https://en.wikipedia.org/wiki/Israeli_identity_card"},
			},
			Aliases: []string{"NationalID", "TeudatZehut"},
		},
		{
			Descriptor: format.Descriptor{
				Name:       "Aadhaar",
				Country:    "IN",
				Pattern:    format.Anchor(`(?P<body>[2-9]\d{10})(?P<check>\d)`),
				Separators: " -",
				MinLength:  12,
				MaxLength:  12,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.Verhoeff{},
					Source:    []string{"body"},
					Check:     "check",
				}},
				Names: []string{"Aadhaar", "आधार"},
				Links: []string{"https://uidai.gov.in/"},
			},
			Aliases: []string{"NationalID", "UID"},
		},
		{
			Descriptor: format.Descriptor{
				Name:      "ResidentRegistrationNumber",
				Country:   "KR",
				Pattern:   format.Anchor(`(?P<yy>\d{2})(?P<mm>\d{2})(?P<dd>\d{2})-(?P<gender>\d)(?P<sn>\d{6})`),
				MinLength: 14,
				MaxLength: 14,
				Semantics: &format.Semantics{
					Date: &format.DateRule{
						Year: "yy", Month: "mm", Day: "dd",
						Century: format.DirectMarker{Group: "gender", Bases: koreanCenturyMarkers},
					},
					Gender: format.GenderByParity{Group: "gender"},
					Citizenship: format.CitizenshipByMarker{Group: "gender", Values: map[string]models.Citizenship{
						"0": models.CitizenshipCitizen, "1": models.CitizenshipCitizen, "2": models.CitizenshipCitizen,
						"3": models.CitizenshipCitizen, "4": models.CitizenshipCitizen, "9": models.CitizenshipCitizen,
						"5": models.CitizenshipResident, "6": models.CitizenshipResident,
						"7": models.CitizenshipResident, "8": models.CitizenshipResident,
					}},
					Serial: "sn",
				},
				Names: []string{"Resident Registration Number", "주민등록번호", "Alien Registration Number"},
				Links: []string{"https://en.wikipedia.org/wiki/Resident_registration_number"},
			},
			Aliases: []string{"NationalID", "RRN", "ARC"},
			Default: true,
		},
		{
			Descriptor: format.Descriptor{
				Name:      "OldResidentRegistrationNumber",
				Country:   "KR",
				Pattern:   format.Anchor(`(?P<yy>\d{2})(?P<mm>\d{2})(?P<dd>\d{2})-(?P<gender>\d)(?P<location>\d{4})(?P<sn>\d)(?P<check>\d)`),
				MinLength: 14,
				MaxLength: 14,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.WeightedModulus{
						Weights:  []int{2, 3, 4, 5, 6, 7, 8, 9, 2, 3, 4, 5},
						Divider:  11,
						Overflow: format.Units,
					},
					Source: []string{"yy", "mm", "dd", "gender", "location", "sn"},
					Check:  "check",
				}},
				Semantics: &format.Semantics{
					Date: &format.DateRule{
						Year: "yy", Month: "mm", Day: "dd",
						Century: format.DirectMarker{Group: "gender", Bases: koreanCenturyMarkers},
					},
					Gender:   format.GenderByParity{Group: "gender"},
					Location: format.LocationAny{Group: "location"},
					Serial:   "sn",
				},
				Names:      []string{"Resident Registration Number (before October 2020)"},
				Deprecated: true,
			},
			Aliases: []string{"OldRRN"},
		},
		{
			Descriptor: format.Descriptor{
				Name:      "CivilNumber",
				Country:   "KW",
				Pattern:   format.Anchor(`(?P<century>[23])(?P<yy>\d{2})(?P<mm>\d{2})(?P<dd>\d{2})(?P<sn>\d{4})(?P<check>\d)`),
				MinLength: 12,
				MaxLength: 12,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.WeightedModulus{
						Weights: []int{2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2},
						Divider: 11,
					},
					Source: []string{"century", "yy", "mm", "dd", "sn"},
					Check:  "check",
				}},
				Semantics: &format.Semantics{
					Date: &format.DateRule{
						Year: "yy", Month: "mm", Day: "dd",
						Century: format.DirectMarker{Group: "century", Bases: map[string]int{"2": 1900, "3": 2000}},
					},
					Serial: "sn",
				},
				Names: []string{"Civil Number", "الرقم المدني"},
				Links: []string{"https://www.paci.gov.kw/"},
			},
			Aliases: []string{"NationalID"},
		},
		{
			Descriptor: format.Descriptor{
				Name:       "NationalIDNumber",
				Country:    "TH",
				Pattern:    format.Anchor(`(?P<citizenship>[0-8])(?P<province>\d{2})(?P<district>\d{2})(?P<sn>\d{7})(?P<check>\d)`),
				Separators: " -",
				MinLength:  13,
				MaxLength:  13,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.WeightedModulus{
						Weights:  []int{13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2},
						Divider:  11,
						Overflow: format.Units,
					},
					Source: []string{"citizenship", "province", "district", "sn"},
					Check:  "check",
				}},
				Semantics: &format.Semantics{
					Citizenship: format.CitizenshipByMarker{Group: "citizenship", Values: map[string]models.Citizenship{
						"0": models.CitizenshipForeign,
						"1": models.CitizenshipCitizen, "2": models.CitizenshipCitizen, "3": models.CitizenshipCitizen,
						"4": models.CitizenshipCitizen, "5": models.CitizenshipCitizen,
						"6": models.CitizenshipForeign, "7": models.CitizenshipForeign,
						"8": models.CitizenshipResident,
					}},
					Location: format.NestedLocation{Region: "province", District: "district", Districts: thaiDistricts},
					Serial:   "sn",
				},
				Names: []string{"Thai Citizen ID", "เลขประจำตัวประชาชน"},
				Links: []string{"https://en.wikipedia.org/wiki/Thai_identity_card"},
			},
			Aliases: []string{"NationalID"},
		},
		{
			Descriptor: format.Descriptor{
				Name:      "NationalID",
				Country:   "TW",
				Pattern:   format.Anchor(`(?P<location>[A-Z])(?P<gender>[12])(?P<sn>\d{7})(?P<check>\d)`),
				MinLength: 10,
				MaxLength: 10,
				Checksums: []format.ChecksumSpec{{
					Algorithm: format.WeightedModulus{
						Weights:  []int{1, 9, 8, 7, 6, 5, 4, 3, 2, 1},
						Divider:  10,
						Overflow: format.Units,
					},
					Source:  []string{"location", "gender", "sn"},
					Letters: taiwanRegionCodes,
					Check:   "check",
				}},
				Semantics: &format.Semantics{
					Gender: format.GenderByMarker{Group: "gender", Values: map[string]models.Gender{
						"1": models.GenderMale,
						"2": models.GenderFemale,
					}},
					Location: format.LocationAny{Group: "location"},
					Serial:   "sn",
				},
				Names: []string{"National Identification Card Number", "中華民國國民身分證"},
				Links: []string{"https://en.wikipedia.org/wiki/National_identification_card_(Taiwan)"},
			},
		},
	}
}
