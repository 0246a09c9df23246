package statement

import (
	"testing"

	"github.com/wealthlens/wealthlens/internal/models"
)

func TestClassifyScheme(t *testing.T) {
	cases := []struct {
		name string
		typ  string
		want models.AssetClass
	}{
		{"HDFC Flexi Cap Fund - Growth", "", models.AssetClassEquity},
		{"Axis Bluechip Fund", "", models.AssetClassEquity},
		{"UTI Nifty 50 Index Fund", "", models.AssetClassEquity},
		{"ICICI Prudential Liquid Fund", "", models.AssetClassDebt},
		{"SBI Corporate Bond Fund", "", models.AssetClassDebt},
		{"HDFC Balanced Advantage Fund", "", models.AssetClassHybrid},
		{"SBI Gold Fund", "", models.AssetClassGold},
		{"Quantum Growth Fund", "", models.AssetClassEquity},
		{"Parag Parikh Scheme", "", models.AssetClassMutualFunds},
	}
	for _, tc := range cases {
		if got := ClassifyScheme(tc.name, tc.typ); got != tc.want {
			t.Errorf("ClassifyScheme(%q, %q) = %q, want %q", tc.name, tc.typ, got, tc.want)
		}
	}
}

func TestClassifyScheme_TypeHintWins(t *testing.T) {
	// The statement's own type column overrides name keywords.
	if got := ClassifyScheme("Some Fund", "Equity Scheme"); got != models.AssetClassEquity {
		t.Errorf("got %q, want equity", got)
	}
	if got := ClassifyScheme("Some Fund", "Debt - Liquid"); got != models.AssetClassDebt {
		t.Errorf("got %q, want debt", got)
	}
	if got := ClassifyScheme("Some Fund", "Hybrid"); got != models.AssetClassHybrid {
		t.Errorf("got %q, want hybrid", got)
	}
}

func TestCleanDescription(t *testing.T) {
	if got := CleanDescription("APPLE INC COM", "AAPL"); got != "Apple Inc" {
		t.Errorf("known symbol: got %q, want %q", got, "Apple Inc")
	}
	if got := CleanDescription("ACME WIDGETS COM", "ACMW"); got != "Acme Widgets" {
		t.Errorf("suffix stripping: got %q, want %q", got, "Acme Widgets")
	}
	if got := CleanDescription("", "ACMW"); got != "ACMW" {
		t.Errorf("empty description: got %q, want symbol", got)
	}
}
