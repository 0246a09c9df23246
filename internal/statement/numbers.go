package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a statement-format number. Handles thousands separators,
// currency symbols, and accounting-style parenthesised negatives.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(s, "Rs.")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	if neg {
		d = d.Neg()
	}
	f, _ := d.Float64()
	return f, true
}

// IsAmount reports whether the token parses as a statement number.
func IsAmount(s string) bool {
	_, ok := ParseAmount(s)
	return ok
}

// extractAmounts returns every parseable number in the tokens, in order.
func extractAmounts(tokens []string) []float64 {
	var nums []float64
	for _, t := range tokens {
		if n, ok := ParseAmount(t); ok {
			nums = append(nums, n)
		}
	}
	return nums
}
