package analytics

import (
	"math"
	"testing"

	"github.com/wealthlens/wealthlens/internal/models"
)

func TestSummarize(t *testing.T) {
	holdings := []models.Holding{
		{CurrentValue: 81037.50, InvestedAmount: 72525},
		{CurrentValue: 10250, InvestedAmount: 10000},
	}

	s := Summarize(holdings, 2)

	if s.TotalValue != 91287.5 {
		t.Errorf("TotalValue = %v, want 91287.5", s.TotalValue)
	}
	if s.TotalInvested != 82525 {
		t.Errorf("TotalInvested = %v, want 82525", s.TotalInvested)
	}
	if s.TotalReturn != 8762.5 {
		t.Errorf("TotalReturn = %v, want 8762.5", s.TotalReturn)
	}
	if s.SchemeCount != 2 || s.FolioCount != 2 {
		t.Errorf("counts = (%d, %d), want (2, 2)", s.SchemeCount, s.FolioCount)
	}
}

func TestSummarize_NothingInvested(t *testing.T) {
	s := Summarize([]models.Holding{{CurrentValue: 5000}}, 0)
	if s.TotalReturn != 0 || s.ReturnPercentage != 0 {
		t.Errorf("returns = (%v, %v), want zero when invested is zero", s.TotalReturn, s.ReturnPercentage)
	}
}

func TestAssetAllocation_PercentagesSumTo100(t *testing.T) {
	holdings := []models.Holding{
		{AssetClass: models.AssetClassEquity, CurrentValue: 33333},
		{AssetClass: models.AssetClassDebt, CurrentValue: 33333},
		{AssetClass: models.AssetClassGold, CurrentValue: 33334},
	}

	rows := AssetAllocation(holdings)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	var sum float64
	for _, r := range rows {
		sum += r.Percentage
	}
	if math.Abs(sum-100) > 0.05 {
		t.Errorf("percentages sum to %v, want ~100", sum)
	}
}

func TestAssetAllocation_SortedByValueDesc(t *testing.T) {
	holdings := []models.Holding{
		{AssetClass: models.AssetClassDebt, CurrentValue: 100},
		{AssetClass: models.AssetClassEquity, CurrentValue: 900},
		{AssetClass: models.AssetClassEquity, CurrentValue: 500},
	}

	rows := AssetAllocation(holdings)
	if rows[0].AssetClass != "Equity" || rows[0].Value != 1400 || rows[0].SchemeCount != 2 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].AssetClass != "Debt" {
		t.Errorf("rows[1] = %+v", rows[1])
	}
}

func TestAssetAllocation_ZeroValueHoldings(t *testing.T) {
	rows := AssetAllocation([]models.Holding{
		{AssetClass: models.AssetClassEquity, CurrentValue: 0},
	})
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0 for a valueless portfolio", len(rows))
	}
}

func TestAMCAllocation_EmptyAMCBucketsAsManual(t *testing.T) {
	holdings := []models.Holding{
		{AMC: "", CurrentValue: 100},
		{AMC: "HDFC Mutual Fund", CurrentValue: 900},
	}

	rows := AMCAllocation(holdings)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].AMC != "HDFC Mutual Fund" || rows[0].Percentage != 90 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].AMC != "Manual" || rows[1].Percentage != 10 {
		t.Errorf("rows[1] = %+v", rows[1])
	}
}

func TestSortHoldings(t *testing.T) {
	holdings := []models.Holding{
		{SchemeName: "B", CurrentValue: 100},
		{SchemeName: "C", CurrentValue: 500},
		{SchemeName: "A", CurrentValue: 100},
	}
	SortHoldings(holdings)

	if holdings[0].SchemeName != "C" {
		t.Errorf("holdings[0] = %q, want C", holdings[0].SchemeName)
	}
	// Equal values fall back to name order.
	if holdings[1].SchemeName != "A" || holdings[2].SchemeName != "B" {
		t.Errorf("tie order = %q, %q", holdings[1].SchemeName, holdings[2].SchemeName)
	}
}
