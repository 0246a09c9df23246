package models

import (
	"time"
)

// StatementFormat identifies the statement layout a source was parsed from.
type StatementFormat string

const (
	FormatNSDLCAS  StatementFormat = "nsdl_cas"
	FormatVestedUS StatementFormat = "vested_us"
)

// StatementSource is one ingested statement. SourceID is the hex SHA-256
// fingerprint of the raw uploaded bytes; re-uploading identical content maps
// to the same SourceID and is a no-op.
type StatementSource struct {
	SourceID   string          `json:"source_id"`
	Format     StatementFormat `json:"format"`
	Filename   string          `json:"filename"`
	UploadedAt time.Time       `json:"uploaded_at"`
	Holdings   []Holding       `json:"holdings"`
}

// TotalValue sums the current value of the source's holdings.
func (s *StatementSource) TotalValue() float64 {
	var total float64
	for i := range s.Holdings {
		total += s.Holdings[i].CurrentValue
	}
	return total
}

// Portfolio is the persisted per-user aggregate: the set of ingested
// statement sources plus manually tracked positions. The merged holding
// sequence is always derived from these, never stored.
type Portfolio struct {
	UserID    string                      `json:"user_id"`
	Sources   map[string]*StatementSource `json:"sources"`
	Manual    map[string]*Holding         `json:"manual_holdings"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// NewPortfolio returns an empty portfolio owned by userID.
func NewPortfolio(userID string) *Portfolio {
	now := time.Now()
	return &Portfolio{
		UserID:    userID,
		Sources:   map[string]*StatementSource{},
		Manual:    map[string]*Holding{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasSource reports whether a statement with the given fingerprint has
// already been ingested.
func (p *Portfolio) HasSource(sourceID string) bool {
	_, ok := p.Sources[sourceID]
	return ok
}

// SourceInfo is the metadata view of an ingested statement returned by the
// sources listing endpoint.
type SourceInfo struct {
	SourceID      string          `json:"source_id"`
	Format        StatementFormat `json:"format"`
	Filename      string          `json:"filename"`
	UploadedAt    time.Time       `json:"uploaded_at"`
	HoldingsCount int             `json:"holdings_count"`
	TotalValue    float64         `json:"total_value"`
}

// Summary aggregates the merged holding set.
type Summary struct {
	TotalValue       float64 `json:"total_value"`
	TotalInvested    float64 `json:"total_invested"`
	TotalReturn      float64 `json:"total_return"`
	ReturnPercentage float64 `json:"return_percentage"`
	SchemeCount      int     `json:"scheme_count"`
	FolioCount       int     `json:"folio_count"`
}

// AssetAllocation is one row of the asset-class allocation table.
type AssetAllocation struct {
	AssetClass  string  `json:"asset_class"`
	Value       float64 `json:"value"`
	Percentage  float64 `json:"percentage"`
	SchemeCount int     `json:"scheme_count"`
}

// AMCAllocation is one row of the AMC/broker allocation table.
type AMCAllocation struct {
	AMC         string  `json:"amc"`
	Value       float64 `json:"value"`
	Percentage  float64 `json:"percentage"`
	SchemeCount int     `json:"scheme_count"`
}

// PortfolioView is the full computed response for a user: merged holdings,
// analytics tables, and insights. Recomputed on every read.
type PortfolioView struct {
	Summary         Summary           `json:"summary"`
	Holdings        []Holding         `json:"holdings"`
	AssetAllocation []AssetAllocation `json:"asset_allocation"`
	AMCAllocation   []AMCAllocation   `json:"amc_allocation"`
	Insights        *InsightReport    `json:"insights"`
	Sources         []SourceInfo      `json:"sources"`
	Duplicate       bool              `json:"duplicate,omitempty"`
}

// ManualEntry is the caller-supplied shape for adding a manual holding.
// Derived fields are computed server-side and never trusted from input.
type ManualEntry struct {
	SchemeName     string  `json:"scheme_name"`
	AssetClass     string  `json:"asset_class"`
	AMC            string  `json:"amc"`
	Units          float64 `json:"units"`
	NAV            float64 `json:"nav"`             // current price per unit
	PurchaseNAV    float64 `json:"purchase_nav"`    // cost per unit
	InvestedAmount float64 `json:"invested_amount"` // optional; overrides units*purchase_nav
}
