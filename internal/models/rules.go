package models

// RulesConfig is the policy table driving the insight generator. Thresholds
// live here, not in the rule code, so they are adjustable via the rules TOML
// file without touching the algorithm.
type RulesConfig struct {
	Concentration   ConcentrationRules   `toml:"concentration"`
	Diversification DiversificationRules `toml:"diversification"`
	AssetAllocation AllocationRules      `toml:"asset_allocation"`
	AMCOverlap      AMCOverlapRules      `toml:"amc_overlap"`
	Performance     PerformanceRules     `toml:"performance"`
	HealthScore     HealthScoreRules     `toml:"health_score"`
}

// ConcentrationRules bounds single-holding portfolio share.
type ConcentrationRules struct {
	HighPct   float64 `toml:"high_pct"`   // share above this is a high-severity risk
	MediumPct float64 `toml:"medium_pct"` // share above this (up to high) is medium
}

// DiversificationRules bounds scheme counts.
type DiversificationRules struct {
	MaxSchemes       int     `toml:"max_schemes"`         // above this with no dominant holding: over-diversified
	MinTopHoldingPct float64 `toml:"min_top_holding_pct"` // "no dominant holding" cutoff
	IdealMinSchemes  int     `toml:"ideal_min_schemes"`
	IdealMaxSchemes  int     `toml:"ideal_max_schemes"`
}

// AllocationRules is the target equity band.
type AllocationRules struct {
	EquityMinPct float64 `toml:"equity_min_pct"`
	EquityMaxPct float64 `toml:"equity_max_pct"`
}

// AMCOverlapRules bounds issuer concentration.
type AMCOverlapRules struct {
	MaxPerAMCClass int     `toml:"max_per_amc_class"` // holdings sharing amc+asset_class above this raise a risk
	TopAMCPct      float64 `toml:"top_amc_pct"`       // top AMC share above this raises a low-severity risk
}

// PerformanceRules bounds return-based call-outs.
type PerformanceRules struct {
	UnderperformerPct float64 `toml:"underperformer_pct"` // returns below this (negative) are surfaced
	StrongPct         float64 `toml:"strong_pct"`         // returns above this count as strong performers
	MaxCallouts       int     `toml:"max_callouts"`       // cap on underperformer opportunities
}

// HealthScoreRules weights findings into the 0-100 score and letter grade.
type HealthScoreRules struct {
	HighRiskPenalty       int     `toml:"high_risk_penalty"`
	MediumRiskPenalty     int     `toml:"medium_risk_penalty"`
	LowRiskPenalty        int     `toml:"low_risk_penalty"`
	StrongReturnBonus     int     `toml:"strong_return_bonus"`
	StrongReturnPct       float64 `toml:"strong_return_pct"`
	NegativeReturnPenalty int     `toml:"negative_return_penalty"`
	DiversificationBonus  int     `toml:"diversification_bonus"`
	GradeACutoff          int     `toml:"grade_a_cutoff"`
	GradeBCutoff          int     `toml:"grade_b_cutoff"`
	GradeCCutoff          int     `toml:"grade_c_cutoff"`
}

// DefaultRulesConfig returns the shipped policy table.
func DefaultRulesConfig() *RulesConfig {
	return &RulesConfig{
		Concentration: ConcentrationRules{
			HighPct:   25,
			MediumPct: 15,
		},
		Diversification: DiversificationRules{
			MaxSchemes:       20,
			MinTopHoldingPct: 5,
			IdealMinSchemes:  5,
			IdealMaxSchemes:  12,
		},
		AssetAllocation: AllocationRules{
			EquityMinPct: 20,
			EquityMaxPct: 90,
		},
		AMCOverlap: AMCOverlapRules{
			MaxPerAMCClass: 3,
			TopAMCPct:      60,
		},
		Performance: PerformanceRules{
			UnderperformerPct: -5,
			StrongPct:         15,
			MaxCallouts:       3,
		},
		HealthScore: HealthScoreRules{
			HighRiskPenalty:       15,
			MediumRiskPenalty:     8,
			LowRiskPenalty:        3,
			StrongReturnBonus:     5,
			StrongReturnPct:       12,
			NegativeReturnPenalty: 10,
			DiversificationBonus:  5,
			GradeACutoff:          80,
			GradeBCutoff:          65,
			GradeCCutoff:          50,
		},
	}
}
