package statement

import (
	"strings"

	"github.com/wealthlens/wealthlens/internal/models"
)

var equityKeywords = []string{
	"equity", "flexi cap", "flexicap", "large cap", "largecap", "mid cap", "midcap",
	"small cap", "smallcap", "multi cap", "multicap", "focused", "elss", "tax saver",
	"bluechip", "blue chip", "value fund", "contra", "dividend yield", "index fund",
	"nifty", "sensex", "etf", "exchange traded", "thematic", "sectoral", "pharma",
	"banking", "infrastructure", "consumption", "technology", "it fund",
}

var debtKeywords = []string{
	"debt", "liquid", "overnight", "ultra short", "money market",
	"low duration", "short duration", "medium duration", "long duration",
	"gilt", "corporate bond", "credit risk", "banking & psu", "psu bond",
	"floater", "fixed maturity", "fmp", "income fund", "bond fund",
}

var hybridKeywords = []string{
	"hybrid", "balanced", "aggressive hybrid", "conservative hybrid", "dynamic",
	"asset allocation", "multi asset", "arbitrage", "equity savings", "balanced advantage",
}

var goldKeywords = []string{"gold", "precious metal", "commodities", "silver"}

// ClassifyScheme infers the asset class of a mutual fund scheme from its name,
// optionally hinted by the statement's own type column.
func ClassifyScheme(schemeName, schemeType string) models.AssetClass {
	name := strings.ToLower(schemeName)
	typ := strings.ToLower(schemeType)

	if typ != "" {
		switch {
		case strings.Contains(typ, "equity"):
			return models.AssetClassEquity
		case strings.Contains(typ, "debt"), strings.Contains(typ, "liquid"):
			return models.AssetClassDebt
		case strings.Contains(typ, "hybrid"):
			return models.AssetClassHybrid
		}
	}

	for _, kw := range equityKeywords {
		if strings.Contains(name, kw) {
			return models.AssetClassEquity
		}
	}
	for _, kw := range debtKeywords {
		if strings.Contains(name, kw) {
			return models.AssetClassDebt
		}
	}
	for _, kw := range hybridKeywords {
		if strings.Contains(name, kw) {
			return models.AssetClassHybrid
		}
	}
	for _, kw := range goldKeywords {
		if strings.Contains(name, kw) {
			return models.AssetClassGold
		}
	}

	if strings.Contains(name, "growth") && strings.Contains(name, "fund") {
		return models.AssetClassEquity
	}

	return models.AssetClassMutualFunds
}

// knownUSStocks maps ticker symbols to display names for statements whose
// description column is truncated or mangled by extraction.
var knownUSStocks = map[string]string{
	"AAPL":  "Apple Inc",
	"AMZN":  "Amazon",
	"ARKK":  "ARK Innovation ETF",
	"BRK.B": "Berkshire Hathaway",
	"FIG":   "Figma Inc",
	"GOOGL": "Alphabet (Google)",
	"ITA":   "iShares US Aerospace & Defense ETF",
	"JPM":   "JPMorgan Chase",
	"META":  "Meta (Facebook)",
	"METV":  "Roundhill Ball Metaverse ETF",
	"MSFT":  "Microsoft",
	"SHOP":  "Shopify",
	"SOXX":  "iShares Semiconductor ETF",
	"XYZ":   "Block Inc",
	"TSLA":  "Tesla",
	"NVDA":  "NVIDIA",
	"NFLX":  "Netflix",
	"DIS":   "Disney",
	"V":     "Visa",
	"MA":    "Mastercard",
	"DWBS":  "DW Bank Sweep",
}

// Tokens that look like symbols but are security-name suffixes.
var symbolStopWords = map[string]bool{
	"COM": true, "INC": true, "ETF": true, "TR": true, "CLASS": true,
	"CL": true, "A": true, "B": true, "C": true, "NEW": true, "DEL": true,
}

var descriptionSuffixes = []string{
	" COM", " INC", " CORP", " CLASS A", " CLASS B", " CL A", " CL B",
	" ETF", " TR", " LTD", " NEW", " DEL",
}

// CleanDescription reduces a raw security description to a readable name,
// preferring the known-symbol table when the symbol is recognized.
func CleanDescription(description, symbol string) string {
	if name, ok := knownUSStocks[symbol]; ok {
		return name
	}
	if strings.TrimSpace(description) == "" {
		return symbol
	}

	name := strings.ToUpper(description)
	for _, suffix := range descriptionSuffixes {
		name = strings.ReplaceAll(name, suffix, "")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return symbol
	}
	return titleCase(name)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
