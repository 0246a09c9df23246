// Package insight evaluates a deterministic rule set over a computed
// portfolio view and produces findings plus a letter-grade health score.
package insight

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/wealthlens/wealthlens/internal/models"
)

// Generator holds the policy table. All rule thresholds come from the table,
// never from the rule code.
type Generator struct {
	rules *models.RulesConfig
}

// NewGenerator creates a generator from a policy table, falling back to the
// shipped defaults when nil.
func NewGenerator(rules *models.RulesConfig) *Generator {
	if rules == nil {
		rules = models.DefaultRulesConfig()
	}
	return &Generator{rules: rules}
}

// Generate evaluates every rule over the computed view. A degenerate
// portfolio (zero or one holding) short-circuits to no findings rather than
// producing divide-by-zero noise.
func (g *Generator) Generate(holdings []models.Holding, summary models.Summary, assetAllocation []models.AssetAllocation, amcAllocation []models.AMCAllocation) *models.InsightReport {
	report := &models.InsightReport{
		SummaryInsights: []models.Insight{},
		Actionables:     []models.Insight{},
		Risks:           []models.Insight{},
		Opportunities:   []models.Insight{},
	}

	if len(holdings) > 1 && summary.TotalValue > 0 {
		g.analyzeConcentration(report, holdings, summary)
		g.analyzeDiversification(report, holdings, summary)
		g.analyzeAssetAllocation(report, assetAllocation)
		g.analyzeAMCOverlap(report, holdings, amcAllocation)
		g.analyzePerformance(report, holdings)
		g.detectFundOverlap(report, holdings)
	}

	report.HealthScore = g.calculateHealthScore(report, summary)
	return report
}

// analyzeConcentration flags any single holding holding too large a share of
// the portfolio.
func (g *Generator) analyzeConcentration(report *models.InsightReport, holdings []models.Holding, summary models.Summary) {
	for i := range holdings {
		h := &holdings[i]
		share := h.CurrentValue / summary.TotalValue * 100

		switch {
		case share > g.rules.Concentration.HighPct:
			report.Risks = append(report.Risks, models.Insight{
				Type:     models.InsightHighConcentration,
				Severity: models.SeverityHigh,
				Title:    "High Single Fund Concentration",
				Description: fmt.Sprintf("Your holding '%s' represents %.1f%% of your portfolio.",
					truncate(h.SchemeName, 40), share),
				Recommendation: fmt.Sprintf("Consider rebalancing to reduce concentration below %.0f%% in any single fund.",
					g.rules.Concentration.HighPct),
			})
		case share > g.rules.Concentration.MediumPct:
			report.Risks = append(report.Risks, models.Insight{
				Type:     models.InsightModerateConcentration,
				Severity: models.SeverityMedium,
				Title:    "Moderate Concentration Risk",
				Description: fmt.Sprintf("'%s' represents %.1f%% of your portfolio.",
					truncate(h.SchemeName, 40), share),
				Recommendation: "Monitor this position and consider gradual diversification.",
			})
		}
	}
}

// analyzeDiversification flags portfolios fragmented across too many schemes
// with no position large enough to matter.
func (g *Generator) analyzeDiversification(report *models.InsightReport, holdings []models.Holding, summary models.Summary) {
	if summary.SchemeCount <= g.rules.Diversification.MaxSchemes {
		return
	}
	for i := range holdings {
		share := holdings[i].CurrentValue / summary.TotalValue * 100
		if share > g.rules.Diversification.MinTopHoldingPct {
			return
		}
	}

	target := (g.rules.Diversification.IdealMinSchemes + g.rules.Diversification.IdealMaxSchemes) / 2
	report.Risks = append(report.Risks, models.Insight{
		Type:     models.InsightOverDiversification,
		Severity: models.SeverityMedium,
		Title:    "Portfolio Over-Diversification",
		Description: fmt.Sprintf("You have %d schemes, none above %.0f%% of the portfolio, which is difficult to track and manage.",
			summary.SchemeCount, g.rules.Diversification.MinTopHoldingPct),
		Recommendation: fmt.Sprintf("Consider consolidating into %d-%d well-chosen funds for better manageability.",
			g.rules.Diversification.IdealMinSchemes, g.rules.Diversification.IdealMaxSchemes),
	})
	report.Actionables = append(report.Actionables, models.Insight{
		Type:        models.InsightOverDiversification,
		Priority:    models.SeverityMedium,
		Action:      "Consolidate Portfolio",
		Description: fmt.Sprintf("Review and merge similar funds. Target: reduce from %d to ~%d schemes.", summary.SchemeCount, target),
		Impact:      "Easier tracking, lower overlap, potentially lower costs",
	})
}

// analyzeAssetAllocation checks the equity share against the target band and
// derives the actionable's priority from how far outside the band it sits.
func (g *Generator) analyzeAssetAllocation(report *models.InsightReport, allocation []models.AssetAllocation) {
	var equityPct, debtPct float64
	for _, row := range allocation {
		switch strings.ToLower(row.AssetClass) {
		case "equity", "us equity":
			equityPct += row.Percentage
		case "debt":
			debtPct += row.Percentage
		}
	}

	min := g.rules.AssetAllocation.EquityMinPct
	max := g.rules.AssetAllocation.EquityMaxPct

	switch {
	case equityPct > max:
		report.SummaryInsights = append(report.SummaryInsights, models.Insight{
			Type:  models.InsightAllocation,
			Title: "Aggressive Portfolio",
			Description: fmt.Sprintf("Your portfolio is %.0f%% in equity, suitable for long-term goals (7+ years) with high risk tolerance.",
				equityPct),
		})
		report.Actionables = append(report.Actionables, models.Insight{
			Type:        models.InsightAllocation,
			Priority:    bandPriority(equityPct - max),
			Action:      "Consider Adding Debt",
			Description: "For stability during market corrections, consider a 10-20% allocation to debt funds.",
			Impact:      "Reduced volatility, emergency liquidity",
		})
	case equityPct < min:
		report.SummaryInsights = append(report.SummaryInsights, models.Insight{
			Type:  models.InsightAllocation,
			Title: "Conservative Portfolio",
			Description: fmt.Sprintf("Your portfolio has only %.0f%% in equity and may not beat inflation long-term.",
				equityPct),
		})
		report.Actionables = append(report.Actionables, models.Insight{
			Type:        models.InsightAllocation,
			Priority:    bandPriority(min - equityPct),
			Action:      "Increase Equity Exposure",
			Description: "If your investment horizon is 5+ years, consider increasing equity to 60-70%.",
			Impact:      "Better long-term wealth creation potential",
		})
	default:
		report.SummaryInsights = append(report.SummaryInsights, models.Insight{
			Type:  models.InsightAllocation,
			Title: "Balanced Portfolio",
			Description: fmt.Sprintf("Your %.0f%% equity and %.0f%% debt allocation is well-balanced for moderate risk.",
				equityPct, debtPct),
		})
	}
}

// bandPriority maps distance outside the allocation band to a priority.
func bandPriority(deviation float64) string {
	switch {
	case deviation > 20:
		return models.SeverityHigh
	case deviation > 10:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// analyzeAMCOverlap flags too many holdings with one issuer in the same asset
// class, plus overall concentration with the top AMC.
func (g *Generator) analyzeAMCOverlap(report *models.InsightReport, holdings []models.Holding, amcAllocation []models.AMCAllocation) {
	type key struct {
		amc   string
		class models.AssetClass
	}
	counts := make(map[key]int)
	for i := range holdings {
		h := &holdings[i]
		if h.AMC == "" {
			continue
		}
		counts[key{amc: h.AMC, class: h.AssetClass}]++
	}

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].amc != keys[j].amc {
			return keys[i].amc < keys[j].amc
		}
		return keys[i].class < keys[j].class
	})

	for _, k := range keys {
		if counts[k] <= g.rules.AMCOverlap.MaxPerAMCClass {
			continue
		}
		report.Risks = append(report.Risks, models.Insight{
			Type:     models.InsightAMCOverlap,
			Severity: models.SeverityMedium,
			Title:    "Issuer Overlap",
			Description: fmt.Sprintf("You have %d %s holdings with %s, which concentrates issuer risk.",
				counts[k], strings.ToLower(k.class.DisplayName()), k.amc),
			Recommendation: "Consider spreading holdings within this asset class across more fund houses.",
		})
	}

	if len(amcAllocation) > 0 && amcAllocation[0].Percentage > g.rules.AMCOverlap.TopAMCPct {
		top := amcAllocation[0]
		report.Risks = append(report.Risks, models.Insight{
			Type:           models.InsightAMCConcentration,
			Severity:       models.SeverityLow,
			Title:          "AMC Concentration",
			Description:    fmt.Sprintf("%.0f%% of your portfolio is with %s.", top.Percentage, top.AMC),
			Recommendation: "Consider diversifying across 3-4 AMCs to reduce operational risk.",
		})
	}
}

// analyzePerformance surfaces losers for review and summarizes strong
// performers. Underperformer call-outs are sorted worst first and capped.
func (g *Generator) analyzePerformance(report *models.InsightReport, holdings []models.Holding) {
	var underperformers, strong []models.Holding
	for i := range holdings {
		h := holdings[i]
		if h.InvestedAmount <= 0 {
			continue
		}
		if h.PercentageReturn < g.rules.Performance.UnderperformerPct {
			underperformers = append(underperformers, h)
		} else if h.PercentageReturn > g.rules.Performance.StrongPct {
			strong = append(strong, h)
		}
	}

	if len(underperformers) > 0 {
		sort.Slice(underperformers, func(i, j int) bool {
			return underperformers[i].PercentageReturn < underperformers[j].PercentageReturn
		})

		var totalLoss float64
		for _, h := range underperformers {
			totalLoss += h.AbsoluteReturn
		}
		report.SummaryInsights = append(report.SummaryInsights, models.Insight{
			Type:  models.InsightPerformance,
			Title: "Underperforming Funds",
			Description: fmt.Sprintf("%d funds are in loss, totaling ₹%.0f unrealized loss.",
				len(underperformers), math.Abs(totalLoss)),
		})

		callouts := underperformers
		if len(callouts) > g.rules.Performance.MaxCallouts {
			callouts = callouts[:g.rules.Performance.MaxCallouts]
		}
		for _, h := range callouts {
			report.Opportunities = append(report.Opportunities, models.Insight{
				Type:        models.InsightReviewNeeded,
				Fund:        truncate(h.SchemeName, 50),
				Return:      fmt.Sprintf("%.1f%%", h.PercentageReturn),
				Description: "Review the fund's recent performance and consider switching if it consistently underperforms its benchmark.",
			})
		}
	}

	if len(strong) > 0 {
		var totalGain float64
		for _, h := range strong {
			totalGain += h.AbsoluteReturn
		}
		report.SummaryInsights = append(report.SummaryInsights, models.Insight{
			Type:  models.InsightPerformance,
			Title: "Strong Performers",
			Description: fmt.Sprintf("%d funds have delivered >%.0f%% returns, totaling ₹%.0f in gains.",
				len(strong), g.rules.Performance.StrongPct, totalGain),
		})
	}
}

// detectFundOverlap flags multiple funds with the same mandate.
func (g *Generator) detectFundOverlap(report *models.InsightReport, holdings []models.Holding) {
	var largeCap, flexiCap int
	for i := range holdings {
		h := &holdings[i]
		if h.AssetClass != models.AssetClassEquity && h.AssetClass != models.AssetClassMutualFunds {
			continue
		}
		name := strings.ToLower(h.SchemeName)
		if strings.Contains(name, "large cap") || strings.Contains(name, "largecap") || strings.Contains(name, "bluechip") {
			largeCap++
		}
		if strings.Contains(name, "flexi") || strings.Contains(name, "multi") {
			flexiCap++
		}
	}

	if largeCap > 2 {
		report.Risks = append(report.Risks, models.Insight{
			Type:           models.InsightFundOverlap,
			Severity:       models.SeverityMedium,
			Title:          "Large Cap Fund Overlap",
			Description:    fmt.Sprintf("You have %d large cap funds which likely hold similar stocks.", largeCap),
			Recommendation: "Large cap funds typically hold the same top 50-100 stocks. Consider consolidating into 1-2 funds.",
		})
		report.Actionables = append(report.Actionables, models.Insight{
			Type:        models.InsightFundOverlap,
			Priority:    models.SeverityMedium,
			Action:      "Consolidate Large Cap Funds",
			Description: "Keep 1 active large cap fund OR switch entirely to a low-cost Nifty 50 index fund.",
			Impact:      "Reduced overlap, lower expense ratio, simpler tracking",
		})
	}

	if flexiCap > 2 {
		report.Risks = append(report.Risks, models.Insight{
			Type:           models.InsightFundOverlap,
			Severity:       models.SeverityLow,
			Title:          "Multiple Flexi Cap Funds",
			Description:    fmt.Sprintf("You have %d flexi/multi cap funds with overlapping mandates.", flexiCap),
			Recommendation: "Consider keeping 1-2 best performing flexi cap funds.",
		})
	}
}

// calculateHealthScore folds the findings into a 0-100 score and grade using
// the policy table weights.
func (g *Generator) calculateHealthScore(report *models.InsightReport, summary models.Summary) models.HealthScore {
	hs := g.rules.HealthScore
	score := 100
	var factors []string

	for _, r := range report.Risks {
		switch r.Severity {
		case models.SeverityHigh:
			score -= hs.HighRiskPenalty
		case models.SeverityMedium:
			score -= hs.MediumRiskPenalty
		case models.SeverityLow:
			score -= hs.LowRiskPenalty
		}
	}

	if summary.ReturnPercentage > hs.StrongReturnPct {
		score += hs.StrongReturnBonus
		factors = append(factors, "Strong returns")
	} else if summary.ReturnPercentage < 0 {
		score -= hs.NegativeReturnPenalty
		factors = append(factors, "Negative returns")
	}

	if summary.SchemeCount >= g.rules.Diversification.IdealMinSchemes &&
		summary.SchemeCount <= g.rules.Diversification.IdealMaxSchemes {
		score += hs.DiversificationBonus
		factors = append(factors, "Good diversification")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	var grade, verdict string
	switch {
	case score >= hs.GradeACutoff:
		grade, verdict = "A", "Excellent"
	case score >= hs.GradeBCutoff:
		grade, verdict = "B", "Good"
	case score >= hs.GradeCCutoff:
		grade, verdict = "C", "Average"
	default:
		grade, verdict = "D", "Needs Attention"
	}

	if factors == nil {
		factors = []string{}
	}
	return models.HealthScore{Score: score, Grade: grade, Verdict: verdict, Factors: factors}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
