// Package analytics computes summary and allocation tables over a merged
// holding set.
package analytics

import (
	"sort"

	"github.com/wealthlens/wealthlens/internal/models"
)

// AMC label applied to manually tracked positions that carry no fund house.
const manualAMCLabel = "Manual"

// Summarize computes portfolio-level totals over the merged holdings.
func Summarize(holdings []models.Holding, folioCount int) models.Summary {
	var totalValue, totalInvested float64
	for i := range holdings {
		totalValue += holdings[i].CurrentValue
		totalInvested += holdings[i].InvestedAmount
	}

	totalReturn := totalValue - totalInvested
	returnPct := 0.0
	if totalInvested > 0 {
		returnPct = models.RoundPercent(totalReturn / totalInvested * 100)
	} else {
		totalReturn = 0
	}

	return models.Summary{
		TotalValue:       models.RoundMoney(totalValue),
		TotalInvested:    models.RoundMoney(totalInvested),
		TotalReturn:      models.RoundMoney(totalReturn),
		ReturnPercentage: returnPct,
		SchemeCount:      len(holdings),
		FolioCount:       folioCount,
	}
}

// AssetAllocation groups holdings by asset class, largest value first.
// Percentages are zero when the portfolio total is zero.
func AssetAllocation(holdings []models.Holding) []models.AssetAllocation {
	type bucket struct {
		value float64
		count int
	}
	buckets := make(map[models.AssetClass]*bucket)
	var total float64

	for i := range holdings {
		h := &holdings[i]
		b := buckets[h.AssetClass]
		if b == nil {
			b = &bucket{}
			buckets[h.AssetClass] = b
		}
		b.value += h.CurrentValue
		b.count++
		total += h.CurrentValue
	}

	rows := make([]models.AssetAllocation, 0, len(buckets))
	for class, b := range buckets {
		if b.value <= 0 {
			continue
		}
		rows = append(rows, models.AssetAllocation{
			AssetClass:  class.DisplayName(),
			Value:       models.RoundMoney(b.value),
			Percentage:  percentage(b.value, total),
			SchemeCount: b.count,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].AssetClass < rows[j].AssetClass
	})
	return rows
}

// AMCAllocation groups holdings by fund house or broker, largest value first.
func AMCAllocation(holdings []models.Holding) []models.AMCAllocation {
	type bucket struct {
		value float64
		count int
	}
	buckets := make(map[string]*bucket)
	var total float64

	for i := range holdings {
		h := &holdings[i]
		amc := h.AMC
		if amc == "" {
			amc = manualAMCLabel
		}
		b := buckets[amc]
		if b == nil {
			b = &bucket{}
			buckets[amc] = b
		}
		b.value += h.CurrentValue
		b.count++
		total += h.CurrentValue
	}

	rows := make([]models.AMCAllocation, 0, len(buckets))
	for amc, b := range buckets {
		if b.value <= 0 {
			continue
		}
		rows = append(rows, models.AMCAllocation{
			AMC:         amc,
			Value:       models.RoundMoney(b.value),
			Percentage:  percentage(b.value, total),
			SchemeCount: b.count,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].AMC < rows[j].AMC
	})
	return rows
}

// SortHoldings orders holdings by current value descending, breaking ties by
// scheme name so the view is deterministic.
func SortHoldings(holdings []models.Holding) {
	sort.Slice(holdings, func(i, j int) bool {
		if holdings[i].CurrentValue != holdings[j].CurrentValue {
			return holdings[i].CurrentValue > holdings[j].CurrentValue
		}
		return holdings[i].SchemeName < holdings[j].SchemeName
	})
}

// percentage computes value/total*100 rounded half-to-even to two decimals,
// returning 0 when the total is zero.
func percentage(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return models.RoundPercent(value / total * 100)
}
