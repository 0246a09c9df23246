package portfolio

import (
	"sort"
	"time"

	"github.com/wealthlens/wealthlens/internal/models"
)

// mergeHoldings derives the consolidated holding sequence from a portfolio's
// sources and manual entries. When the same identity (ISIN plus scheme name,
// or normalized scheme name alone) appears in several statement sources, the
// one with the latest valuation date wins; sources without a valuation date
// fall back to their upload time. Manual holdings never collapse with
// statement holdings.
func mergeHoldings(p *models.Portfolio) []models.Holding {
	type candidate struct {
		holding   models.Holding
		effective time.Time
		uploaded  time.Time
	}
	winners := make(map[string]candidate)

	for _, src := range p.Sources {
		for i := range src.Holdings {
			h := src.Holdings[i]
			effective := h.ValuationDate
			if effective.IsZero() {
				effective = src.UploadedAt
			}
			c := candidate{holding: h, effective: effective, uploaded: src.UploadedAt}

			key := h.IdentityKey()
			prev, ok := winners[key]
			if !ok || c.effective.After(prev.effective) ||
				(c.effective.Equal(prev.effective) && c.uploaded.After(prev.uploaded)) {
				winners[key] = c
			}
		}
	}

	keys := make([]string, 0, len(winners))
	for k := range winners {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	merged := make([]models.Holding, 0, len(winners)+len(p.Manual))
	for _, k := range keys {
		merged = append(merged, winners[k].holding)
	}

	manualKeys := make([]string, 0, len(p.Manual))
	for k := range p.Manual {
		manualKeys = append(manualKeys, k)
	}
	sort.Strings(manualKeys)
	for _, k := range manualKeys {
		merged = append(merged, *p.Manual[k])
	}

	return merged
}

// countFolios counts distinct folio identifiers across the merged holdings.
func countFolios(holdings []models.Holding) int {
	folios := make(map[string]bool)
	for i := range holdings {
		if f := holdings[i].Folio; f != "" {
			folios[f] = true
		}
	}
	return len(folios)
}
