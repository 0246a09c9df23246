package statement

import (
	"regexp"
	"strings"

	"github.com/wealthlens/wealthlens/internal/models"
)

var symbolPattern = regexp.MustCompile(`^[A-Z]{1,5}(\.[A-Z])?$`)

// parseVested extracts US stock holdings from a Vested / VF Securities
// account statement. Values are converted from USD to INR at the configured
// rate; the native USD unit price is preserved via the Currency marker.
func parseVested(filename string, doc *Document, usdToINR float64) ([]*models.Holding, error) {
	var holdings []*models.Holding
	seen := make(map[string]bool)

	inHoldings := false
	for _, line := range doc.Lines() {
		text := line.Text()
		upper := strings.ToUpper(text)

		if strings.Contains(upper, "HOLDINGS") || strings.Contains(text, "Equity") {
			inHoldings = true
			continue
		}
		if strings.Contains(upper, "ACTIVITY") {
			inHoldings = false
			continue
		}
		if !inHoldings {
			continue
		}

		h := parseVestedRow(line.Fields(), usdToINR)
		if h == nil || seen[h.Symbol] {
			continue
		}
		seen[h.Symbol] = true
		holdings = append(holdings, h)
	}

	if len(holdings) == 0 {
		return nil, unparseable(filename, "no holdings found in brokerage statement", nil)
	}
	return holdings, nil
}

// parseVestedRow parses one table row of the holdings section. A row is a
// security description, the ticker symbol, then at least five numbers:
// quantity, unit cost, total cost, market price, market value, and optionally
// gain/loss (parenthesised when negative).
func parseVestedRow(fields []string, usdToINR float64) *models.Holding {
	if len(fields) < 5 {
		return nil
	}

	symbolIdx := -1
	for i, f := range fields {
		if !symbolPattern.MatchString(f) || symbolStopWords[f] {
			continue
		}
		numbersAfter := len(extractAmounts(fields[i+1:]))
		if numbersAfter >= 3 {
			symbolIdx = i
			break
		}
	}
	if symbolIdx < 0 {
		return nil
	}

	symbol := fields[symbolIdx]
	description := strings.TrimSpace(strings.Join(fields[:symbolIdx], " "))
	numbers := extractAmounts(fields[symbolIdx+1:])
	if len(numbers) < 5 {
		return nil
	}

	quantity := numbers[0]
	totalCost := numbers[2]
	marketPrice := numbers[3]
	marketValue := numbers[4]
	gainLoss := marketValue - totalCost
	if len(numbers) > 5 {
		gainLoss = numbers[5]
	}

	if quantity <= 0 || marketValue <= 0 {
		return nil
	}

	pctReturn := 0.0
	if totalCost > 0 {
		pctReturn = gainLoss / totalCost * 100
	}

	return &models.Holding{
		SchemeName:       CleanDescription(description, symbol),
		Symbol:           symbol,
		AssetClass:       models.AssetClassUSEquity,
		AMC:              "Vested",
		Folio:            "Vested",
		Units:            quantity,
		NAV:              models.RoundMoney(marketPrice * usdToINR),
		CurrentValue:     models.RoundMoney(marketValue * usdToINR),
		InvestedAmount:   models.RoundMoney(totalCost * usdToINR),
		AbsoluteReturn:   models.RoundMoney(gainLoss * usdToINR),
		PercentageReturn: models.RoundMoney(pctReturn),
		Currency:         "USD",
		Source:           models.SourceStatement,
	}
}
