package models

// Severity levels used by risks and actionable priorities.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Insight types emitted by the rule set.
const (
	InsightHighConcentration     = "high_concentration"
	InsightModerateConcentration = "moderate_concentration"
	InsightOverDiversification   = "over_diversification"
	InsightAllocation            = "allocation"
	InsightAMCConcentration      = "amc_concentration"
	InsightAMCOverlap            = "amc_overlap"
	InsightFundOverlap           = "fund_overlap"
	InsightPerformance           = "performance"
	InsightReviewNeeded          = "review_needed"
)

// Insight is a single finding produced by the rule set. Risks carry Severity,
// actionables carry Priority; the remaining fields are shared.
type Insight struct {
	Type           string `json:"type"`
	Severity       string `json:"severity,omitempty"`
	Priority       string `json:"priority,omitempty"`
	Title          string `json:"title,omitempty"`
	Fund           string `json:"fund,omitempty"`
	Return         string `json:"return,omitempty"`
	Action         string `json:"action,omitempty"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation,omitempty"`
	Impact         string `json:"impact,omitempty"`
}

// HealthScore is the A-D letter grade summarizing portfolio posture.
type HealthScore struct {
	Score   int      `json:"score"`
	Grade   string   `json:"grade"`
	Verdict string   `json:"verdict"`
	Factors []string `json:"factors"`
}

// InsightReport groups all findings for a portfolio.
type InsightReport struct {
	SummaryInsights []Insight   `json:"summary_insights"`
	Actionables     []Insight   `json:"actionables"`
	Risks           []Insight   `json:"risks"`
	Opportunities   []Insight   `json:"opportunities"`
	HealthScore     HealthScore `json:"health_score"`
}
