package estimate

import (
	"strings"
	"time"
	"unicode"
)

// EstimateNumber builds the temporary REGION-POSTAL-YYYYMMDD-HHMM reference
// shown for an unconfirmed estimate. It is not unique and is never used as a
// storage or lookup key.
func EstimateNumber(region, postalCode string, now time.Time) string {
	return strings.Join([]string{
		normalizeToken(region, "NA"),
		normalizeToken(postalCode, "00000"),
		now.Format("20060102"),
		now.Format("1504"),
	}, "-")
}

func normalizeToken(s, fallback string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}
