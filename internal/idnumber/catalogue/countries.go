package catalogue

// alpha3 maps ISO 3166-1 alpha-3 codes of the catalogued countries to
// alpha-2.
var alpha3 = map[string]string{
	"ARE": "AE",
	"BIH": "BA",
	"CHE": "CH",
	"CHN": "CN",
	"CZE": "CZ",
	"DEU": "DE",
	"DNK": "DK",
	"ESP": "ES",
	"EST": "EE",
	"FIN": "FI",
	"IND": "IN",
	"ISR": "IL",
	"KOR": "KR",
	"KWT": "KW",
	"LTU": "LT",
	"LUX": "LU",
	"MKD": "MK",
	"NGA": "NG",
	"NOR": "NO",
	"POL": "PL",
	"ROU": "RO",
	"SRB": "RS",
	"SVK": "SK",
	"SVN": "SI",
	"SWE": "SE",
	"THA": "TH",
	"TWN": "TW",
	"ZAF": "ZA",
}
