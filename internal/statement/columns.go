package statement

import "strings"

// casColumn identifies a canonical statement column.
type casColumn int

const (
	colUnits casColumn = iota
	colNAV
	colPurchaseNAV
	colValue
	colInvested
)

// columnSynonyms maps lowercased header labels to canonical columns.
// Registrars label the same column differently; unrecognized labels are
// ignored rather than rejected.
var columnSynonyms = map[string]casColumn{
	"shares":   colUnits,
	"quantity": colUnits,
	"qty":      colUnits,
	"balance":  colUnits,
	"units":    colUnits,

	"ltp":          colNAV,
	"cmp":          colNAV,
	"market price": colNAV,
	"price":        colNAV,
	"nav":          colNAV,

	"avg price":      colPurchaseNAV,
	"average price":  colPurchaseNAV,
	"cost price":     colPurchaseNAV,
	"buy price":      colPurchaseNAV,
	"purchase price": colPurchaseNAV,

	"value":         colValue,
	"market value":  colValue,
	"current value": colValue,
	"amount":        colValue,

	"invested":        colInvested,
	"invested amount": colInvested,
	"total cost":      colInvested,
	"cost":            colInvested,
}

// parseHeaderLayout reads a table-header line and returns the canonical
// column for each recognized label, left to right. Two-word labels like
// "Avg Price" are matched before their single-word parts. Lines carrying
// numbers or an ISIN are never headers, and at least three recognized
// labels are required so ordinary prose does not register as one.
func parseHeaderLayout(text string) []casColumn {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if IsAmount(f) || isinPattern.MatchString(f) {
			return nil
		}
		tokens = append(tokens, strings.ToLower(strings.Trim(f, "().,:;")))
	}

	var layout []casColumn
	for i := 0; i < len(tokens); i++ {
		if i+1 < len(tokens) {
			if col, ok := columnSynonyms[tokens[i]+" "+tokens[i+1]]; ok {
				layout = append(layout, col)
				i++
				continue
			}
		}
		if col, ok := columnSynonyms[tokens[i]]; ok {
			layout = append(layout, col)
		}
	}
	if len(layout) < 3 {
		return nil
	}
	return layout
}

// mapColumns applies a header layout to a row's numbers. The row must carry
// exactly one number per recognized column; otherwise the layout does not
// describe this row and the caller falls back to the product heuristic.
// Value and invested amount are derived from per-unit prices when the
// statement prints no total column.
func mapColumns(layout []casColumn, numbers []float64) (units, nav, value, invested float64, ok bool) {
	if len(layout) == 0 || len(numbers) != len(layout) {
		return 0, 0, 0, 0, false
	}

	var purchaseNAV float64
	for i, col := range layout {
		switch col {
		case colUnits:
			units = numbers[i]
		case colNAV:
			nav = numbers[i]
		case colPurchaseNAV:
			purchaseNAV = numbers[i]
		case colValue:
			value = numbers[i]
		case colInvested:
			invested = numbers[i]
		}
	}

	if value <= 0 && units > 0 && nav > 0 {
		value = units * nav
	}
	if invested <= 0 && units > 0 && purchaseNAV > 0 {
		invested = units * purchaseNAV
	}
	return units, nav, value, invested, true
}
