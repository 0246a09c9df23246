// Package models defines data structures for WealthLens
package models

import (
	"strings"
	"time"
)

// AssetClass categorizes a holding for allocation analysis.
type AssetClass string

const (
	AssetClassEquity      AssetClass = "equity"
	AssetClassMutualFunds AssetClass = "mutual_funds"
	AssetClassUSEquity    AssetClass = "us_equity"
	AssetClassCrypto      AssetClass = "crypto"
	AssetClassCash        AssetClass = "cash"
	AssetClassDebt        AssetClass = "debt"
	AssetClassGold        AssetClass = "gold"
	AssetClassHybrid      AssetClass = "hybrid"
)

// ParseAssetClass normalizes a raw asset class label. The legacy labels
// "other" and "mutual_fund" map to mutual_funds, as does anything unrecognized.
func ParseAssetClass(raw string) AssetClass {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "equity":
		return AssetClassEquity
	case "us_equity", "us equity":
		return AssetClassUSEquity
	case "crypto":
		return AssetClassCrypto
	case "cash":
		return AssetClassCash
	case "debt":
		return AssetClassDebt
	case "gold":
		return AssetClassGold
	case "hybrid":
		return AssetClassHybrid
	default:
		return AssetClassMutualFunds
	}
}

// DisplayName returns the asset class label used by allocation tables.
func (a AssetClass) DisplayName() string {
	switch a {
	case AssetClassEquity:
		return "Equity"
	case AssetClassMutualFunds:
		return "Mutual Funds"
	case AssetClassUSEquity:
		return "US Equity"
	case AssetClassCrypto:
		return "Crypto"
	case AssetClassCash:
		return "Cash"
	case AssetClassDebt:
		return "Debt"
	case AssetClassGold:
		return "Gold"
	case AssetClassHybrid:
		return "Hybrid"
	default:
		return string(a)
	}
}

// HoldingSource marks the provenance of a holding.
type HoldingSource string

const (
	SourceStatement HoldingSource = "statement"
	SourceManual    HoldingSource = "manual"
)

// Holding represents a single position in a portfolio.
type Holding struct {
	SchemeName       string        `json:"scheme_name"`
	ISIN             string        `json:"isin,omitempty"`
	Symbol           string        `json:"symbol,omitempty"`
	AssetClass       AssetClass    `json:"asset_class"`
	AMC              string        `json:"amc"`
	Folio            string        `json:"folio,omitempty"`
	Units            float64       `json:"units"`
	NAV              float64       `json:"nav"`
	CurrentValue     float64       `json:"current_value"`
	InvestedAmount   float64       `json:"invested_amount"`
	AbsoluteReturn   float64       `json:"absolute_return"`
	PercentageReturn float64       `json:"percentage_return"`
	Currency         string        `json:"currency,omitempty"` // native currency when not INR (e.g. "USD")
	Source           HoldingSource `json:"source"`
	ValuationDate    time.Time     `json:"valuation_date,omitempty"`
}

// NormalizeSchemeName lowercases and collapses whitespace so scheme names
// compare consistently across statement formats.
func NormalizeSchemeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// IdentityKey returns the merge identity for the holding: ISIN plus scheme
// name when an ISIN is present, otherwise the normalized scheme name alone.
func (h *Holding) IdentityKey() string {
	name := NormalizeSchemeName(h.SchemeName)
	isin := strings.ToUpper(strings.TrimSpace(h.ISIN))
	if isin != "" {
		return isin + "|" + name
	}
	return name
}

// Recompute derives current_value and the return fields from units, nav and
// invested_amount. Caller-supplied derived values are never trusted.
func (h *Holding) Recompute() {
	if h.Units > 0 && h.NAV > 0 {
		h.CurrentValue = h.Units * h.NAV
	}
	h.AbsoluteReturn = 0
	h.PercentageReturn = 0
	if h.InvestedAmount > 0 {
		h.AbsoluteReturn = h.CurrentValue - h.InvestedAmount
		h.PercentageReturn = h.AbsoluteReturn / h.InvestedAmount * 100
	}
}

// IsEmpty reports whether the holding carries no position at all. Rows like
// this appear in statements as closed-out or placeholder entries and are
// dropped by the normalizer.
func (h *Holding) IsEmpty() bool {
	return h.Units <= 0 && h.CurrentValue <= 0
}
