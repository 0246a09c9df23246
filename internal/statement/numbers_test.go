package statement

import (
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1,234.56", 1234.56, true},
		{"1500.000", 1500, true},
		{"$180.00", 180, true},
		{"₹1,000", 1000, true},
		{"Rs.500", 500, true},
		{"(100.00)", -100, true},
		{"(1,234.50)", -1234.5, true},
		{"-42.5", -42.5, true},
		{"0", 0, true},
		{"", 0, false},
		{"HDFC", 0, false},
		{"()", 0, false},
		{"12-34", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseAmount(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseAmount(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestExtractAmounts(t *testing.T) {
	tokens := []string{"HDFC", "Bank", "50", "1,620.75", "81,037.50", "Ltd"}
	nums := extractAmounts(tokens)
	want := []float64{50, 1620.75, 81037.50}
	if len(nums) != len(want) {
		t.Fatalf("got %d numbers, want %d", len(nums), len(want))
	}
	for i := range want {
		if nums[i] != want[i] {
			t.Errorf("nums[%d] = %v, want %v", i, nums[i], want[i])
		}
	}
}
