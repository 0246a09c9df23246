package insight

import (
	"testing"

	"github.com/wealthlens/wealthlens/internal/models"
)

func findRisk(report *models.InsightReport, insightType string) *models.Insight {
	for i := range report.Risks {
		if report.Risks[i].Type == insightType {
			return &report.Risks[i]
		}
	}
	return nil
}

func TestGenerate_HighConcentration(t *testing.T) {
	g := NewGenerator(nil)
	holdings := []models.Holding{
		{SchemeName: "Big Position", CurrentValue: 30000},
		{SchemeName: "Scheme 1", CurrentValue: 14000},
		{SchemeName: "Scheme 2", CurrentValue: 14000},
		{SchemeName: "Scheme 3", CurrentValue: 14000},
		{SchemeName: "Scheme 4", CurrentValue: 14000},
		{SchemeName: "Scheme 5", CurrentValue: 14000},
	}
	summary := models.Summary{TotalValue: 100000, SchemeCount: 6}

	report := g.Generate(holdings, summary, nil, nil)

	risk := findRisk(report, models.InsightHighConcentration)
	if risk == nil {
		t.Fatal("expected a high concentration risk for a 30% holding")
	}
	if risk.Severity != models.SeverityHigh {
		t.Errorf("Severity = %q, want high", risk.Severity)
	}
	if findRisk(report, models.InsightModerateConcentration) != nil {
		t.Error("14% holdings should not raise moderate concentration risks")
	}
}

func TestGenerate_ModerateConcentration(t *testing.T) {
	g := NewGenerator(nil)
	holdings := []models.Holding{{SchemeName: "Mid Position", CurrentValue: 20000}}
	for i := 0; i < 10; i++ {
		holdings = append(holdings, models.Holding{SchemeName: "Scheme", CurrentValue: 8000})
	}
	summary := models.Summary{TotalValue: 100000, SchemeCount: 11}

	report := g.Generate(holdings, summary, nil, nil)

	risk := findRisk(report, models.InsightModerateConcentration)
	if risk == nil {
		t.Fatal("expected a moderate concentration risk for a 20% holding")
	}
	if risk.Severity != models.SeverityMedium {
		t.Errorf("Severity = %q, want medium", risk.Severity)
	}
	if findRisk(report, models.InsightHighConcentration) != nil {
		t.Error("20% is below the high threshold")
	}
}

func TestGenerate_DegeneratePortfolios(t *testing.T) {
	g := NewGenerator(nil)

	for _, holdings := range [][]models.Holding{
		nil,
		{{SchemeName: "Only One", CurrentValue: 100000}},
	} {
		summary := models.Summary{SchemeCount: len(holdings)}
		for _, h := range holdings {
			summary.TotalValue += h.CurrentValue
		}

		report := g.Generate(holdings, summary, nil, nil)

		if len(report.Risks) != 0 || len(report.Actionables) != 0 ||
			len(report.SummaryInsights) != 0 || len(report.Opportunities) != 0 {
			t.Errorf("degenerate portfolio (%d holdings) produced findings", len(holdings))
		}
		if report.HealthScore.Grade == "" {
			t.Error("health score must still be computed")
		}
		if report.HealthScore.Factors == nil {
			t.Error("factors must never be nil")
		}
	}
}

func TestGenerate_OverDiversification(t *testing.T) {
	g := NewGenerator(nil)
	var holdings []models.Holding
	for i := 0; i < 21; i++ {
		holdings = append(holdings, models.Holding{SchemeName: "Scheme", CurrentValue: 100})
	}
	summary := models.Summary{TotalValue: 2100, SchemeCount: 21}

	report := g.Generate(holdings, summary, nil, nil)

	if findRisk(report, models.InsightOverDiversification) == nil {
		t.Fatal("expected over-diversification risk for 21 tiny schemes")
	}
	var actionable bool
	for _, a := range report.Actionables {
		if a.Type == models.InsightOverDiversification {
			actionable = true
		}
	}
	if !actionable {
		t.Error("expected a consolidation actionable")
	}
}

func TestGenerate_OverDiversification_SkippedWithDominantHolding(t *testing.T) {
	g := NewGenerator(nil)
	holdings := []models.Holding{{SchemeName: "Anchor", CurrentValue: 300}}
	for i := 0; i < 21; i++ {
		holdings = append(holdings, models.Holding{SchemeName: "Scheme", CurrentValue: 100})
	}
	summary := models.Summary{TotalValue: 2400, SchemeCount: 22}

	report := g.Generate(holdings, summary, nil, nil)

	// The anchor is 12.5%, above the dominance cutoff.
	if findRisk(report, models.InsightOverDiversification) != nil {
		t.Error("a dominant holding should suppress the over-diversification risk")
	}
}

func TestGenerate_AllocationBand(t *testing.T) {
	g := NewGenerator(nil)
	holdings := []models.Holding{
		{SchemeName: "A", CurrentValue: 500},
		{SchemeName: "B", CurrentValue: 500},
	}
	summary := models.Summary{TotalValue: 1000, SchemeCount: 2}

	// All debt: conservative, 20 points below the band floor.
	report := g.Generate(holdings, summary, []models.AssetAllocation{
		{AssetClass: "Debt", Percentage: 100},
	}, nil)

	var found *models.Insight
	for i := range report.Actionables {
		if report.Actionables[i].Type == models.InsightAllocation {
			found = &report.Actionables[i]
		}
	}
	if found == nil {
		t.Fatal("expected an allocation actionable for an all-debt portfolio")
	}
	if found.Priority != models.SeverityMedium {
		t.Errorf("Priority = %q, want medium for a 20-point deviation", found.Priority)
	}

	// US equity counts toward the equity share.
	report = g.Generate(holdings, summary, []models.AssetAllocation{
		{AssetClass: "Equity", Percentage: 40},
		{AssetClass: "US Equity", Percentage: 30},
		{AssetClass: "Debt", Percentage: 30},
	}, nil)
	for _, a := range report.Actionables {
		if a.Type == models.InsightAllocation {
			t.Errorf("70%% combined equity is inside the band, got actionable %+v", a)
		}
	}
}

func TestGenerate_AMCOverlap(t *testing.T) {
	g := NewGenerator(nil)
	var holdings []models.Holding
	for i := 0; i < 4; i++ {
		holdings = append(holdings, models.Holding{
			SchemeName: "Scheme", AMC: "HDFC Mutual Fund",
			AssetClass: models.AssetClassEquity, CurrentValue: 250,
		})
	}
	summary := models.Summary{TotalValue: 1000, SchemeCount: 4}
	amcAlloc := []models.AMCAllocation{{AMC: "HDFC Mutual Fund", Percentage: 100}}

	report := g.Generate(holdings, summary, nil, amcAlloc)

	if findRisk(report, models.InsightAMCOverlap) == nil {
		t.Error("expected issuer overlap risk for 4 equity holdings with one AMC")
	}
	if findRisk(report, models.InsightAMCConcentration) == nil {
		t.Error("expected AMC concentration risk when the top AMC holds 100%")
	}
}

func TestGenerate_PerformanceCallouts(t *testing.T) {
	g := NewGenerator(nil)
	returns := []float64{-20, -10, -8, -6, 2, 3, 20, 4}
	var holdings []models.Holding
	for _, r := range returns {
		holdings = append(holdings, models.Holding{
			SchemeName:       "Scheme",
			CurrentValue:     1250,
			InvestedAmount:   1000,
			PercentageReturn: r,
			AbsoluteReturn:   r * 10,
		})
	}
	summary := models.Summary{TotalValue: 10000, SchemeCount: 8}

	report := g.Generate(holdings, summary, nil, nil)

	if len(report.Opportunities) != 3 {
		t.Fatalf("got %d opportunities, want callouts capped at 3", len(report.Opportunities))
	}
	if report.Opportunities[0].Return != "-20.0%" {
		t.Errorf("worst performer first, got %q", report.Opportunities[0].Return)
	}

	var underTitle, strongTitle bool
	for _, si := range report.SummaryInsights {
		switch si.Title {
		case "Underperforming Funds":
			underTitle = true
		case "Strong Performers":
			strongTitle = true
		}
	}
	if !underTitle || !strongTitle {
		t.Errorf("summary insights missing performance entries: %+v", report.SummaryInsights)
	}
}

func TestGenerate_FundOverlap(t *testing.T) {
	g := NewGenerator(nil)
	holdings := []models.Holding{
		{SchemeName: "Axis Bluechip Fund", AssetClass: models.AssetClassEquity, CurrentValue: 250},
		{SchemeName: "SBI Large Cap Fund", AssetClass: models.AssetClassEquity, CurrentValue: 250},
		{SchemeName: "Mirae Largecap Fund", AssetClass: models.AssetClassEquity, CurrentValue: 250},
		{SchemeName: "HDFC Gilt Fund", AssetClass: models.AssetClassDebt, CurrentValue: 250},
	}
	summary := models.Summary{TotalValue: 1000, SchemeCount: 4}

	report := g.Generate(holdings, summary, nil, nil)

	if findRisk(report, models.InsightFundOverlap) == nil {
		t.Error("expected fund overlap risk for three large cap funds")
	}
}

func TestCalculateHealthScore_Grades(t *testing.T) {
	g := NewGenerator(nil)

	cases := []struct {
		name    string
		report  *models.InsightReport
		summary models.Summary
		grade   string
	}{
		{
			name:    "clean portfolio",
			report:  &models.InsightReport{},
			summary: models.Summary{SchemeCount: 8, ReturnPercentage: 15},
			grade:   "A",
		},
		{
			name: "two high risks",
			report: &models.InsightReport{Risks: []models.Insight{
				{Severity: models.SeverityHigh},
				{Severity: models.SeverityHigh},
			}},
			summary: models.Summary{SchemeCount: 3},
			grade:   "B",
		},
		{
			name: "risky and losing",
			report: &models.InsightReport{Risks: []models.Insight{
				{Severity: models.SeverityHigh},
				{Severity: models.SeverityHigh},
				{Severity: models.SeverityMedium},
			}},
			summary: models.Summary{SchemeCount: 2, ReturnPercentage: -4},
			grade:   "C",
		},
		{
			name: "deep trouble",
			report: &models.InsightReport{Risks: []models.Insight{
				{Severity: models.SeverityHigh},
				{Severity: models.SeverityHigh},
				{Severity: models.SeverityHigh},
				{Severity: models.SeverityMedium},
			}},
			summary: models.Summary{SchemeCount: 2, ReturnPercentage: -10},
			grade:   "D",
		},
	}
	for _, tc := range cases {
		hs := g.calculateHealthScore(tc.report, tc.summary)
		if hs.Grade != tc.grade {
			t.Errorf("%s: grade = %q (score %d), want %q", tc.name, hs.Grade, hs.Score, tc.grade)
		}
		if hs.Score < 0 || hs.Score > 100 {
			t.Errorf("%s: score %d out of range", tc.name, hs.Score)
		}
	}
}

func TestCalculateHealthScore_Clamped(t *testing.T) {
	g := NewGenerator(nil)
	risks := make([]models.Insight, 10)
	for i := range risks {
		risks[i] = models.Insight{Severity: models.SeverityHigh}
	}
	hs := g.calculateHealthScore(&models.InsightReport{Risks: risks}, models.Summary{ReturnPercentage: -50})
	if hs.Score != 0 {
		t.Errorf("score = %d, want clamped to 0", hs.Score)
	}
	if hs.Grade != "D" {
		t.Errorf("grade = %q, want D", hs.Grade)
	}
}
