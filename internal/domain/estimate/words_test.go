package estimate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "zero and 00/100 dollars"},
		{1234.56, "one thousand two hundred thirty-four and 56/100 dollars"},
		{167.5, "one hundred sixty-seven and 50/100 dollars"},
		{20, "twenty and 00/100 dollars"},
		{1000000, "one million and 00/100 dollars"},
		{2005017.09, "two million five thousand seventeen and 09/100 dollars"},
		{0.99, "zero and 99/100 dollars"},
		{-12, "minus twelve and 00/100 dollars"},
		{3000000000.1, "three billion and 10/100 dollars"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AmountToWords(tt.amount))
	}

	w := AmountToWords(1234.56)
	assert.Contains(t, w, "thousand")
	assert.True(t, strings.HasSuffix(w, "56/100 dollars"))
}
