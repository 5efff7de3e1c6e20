package estimate

import "strings"

// stateSalesTax holds base state sales tax rates in percent, keyed by
// two-letter jurisdiction code.
var stateSalesTax = map[string]float64{
	"AL": 4, "AK": 0, "AZ": 5.6, "AR": 6.5, "CA": 7.25,
	"CO": 2.9, "CT": 6.35, "DE": 0, "DC": 6, "FL": 6,
	"GA": 4, "HI": 4, "ID": 6, "IL": 6.25, "IN": 7,
	"IA": 6, "KS": 6.5, "KY": 6, "LA": 5, "ME": 5.5,
	"MD": 6, "MA": 6.25, "MI": 6, "MN": 6.875, "MS": 7,
	"MO": 4.225, "MT": 0, "NE": 5.5, "NV": 6.85, "NH": 0,
	"NJ": 6.625, "NM": 4.875, "NY": 4, "NC": 4.75, "ND": 5,
	"OH": 5.75, "OK": 4.5, "OR": 0, "PA": 6, "RI": 7,
	"SC": 6, "SD": 4.2, "TN": 7, "TX": 6.25, "UT": 6.1,
	"VT": 6, "VA": 5.3, "WA": 6.5, "WV": 6, "WI": 5,
	"WY": 4,
}

// TaxRatePercent looks the jurisdiction code up case-insensitively.
// Unknown codes yield 0.
func TaxRatePercent(jurisdiction string) float64 {
	return stateSalesTax[strings.ToUpper(strings.TrimSpace(jurisdiction))]
}

// IsKnownJurisdiction reports whether the code is in the rate table.
func IsKnownJurisdiction(jurisdiction string) bool {
	_, ok := stateSalesTax[strings.ToUpper(strings.TrimSpace(jurisdiction))]
	return ok
}
