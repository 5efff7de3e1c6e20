package estimate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	smallNumbers = []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tensNames  = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
	scaleNames = []string{"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion"}
)

// AmountToWords spells a dollar amount for checks and printed estimates.
// Example: 1234.56 -> "one thousand two hundred thirty-four and 56/100 dollars".
func AmountToWords(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	prefix := ""
	if d.IsNegative() {
		prefix = "minus "
		d = d.Neg()
	}

	whole := d.Truncate(0)
	cents := d.Sub(whole).Mul(hundred).IntPart()

	return fmt.Sprintf("%s%s and %02d/100 dollars", prefix, integerToWords(whole.IntPart()), cents)
}

func integerToWords(n int64) string {
	if n == 0 {
		return smallNumbers[0]
	}

	var chunks []string
	for scale := 0; n > 0; scale++ {
		chunk := n % 1000
		n /= 1000
		if chunk == 0 {
			continue
		}
		words := chunkToWords(chunk)
		if scaleNames[scale] != "" {
			words += " " + scaleNames[scale]
		}
		chunks = append([]string{words}, chunks...)
	}
	return strings.Join(chunks, " ")
}

func chunkToWords(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, smallNumbers[n/100]+" hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, smallNumbers[n])
	case n%10 == 0:
		parts = append(parts, tensNames[n/10])
	default:
		parts = append(parts, tensNames[n/10]+"-"+smallNumbers[n%10])
	}
	return strings.Join(parts, " ")
}
