package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/wealthlens/wealthlens/internal/models"
)

// Indian ISINs: INE for listed securities, INF for mutual fund units.
var isinPattern = regexp.MustCompile(`^IN[EF][A-Z0-9]{8}[0-9]$`)

var folioPattern = regexp.MustCompile(`(?i)folio\s*no\.?\s*:?\s*([A-Z0-9/\-]+)`)

var asOnPattern = regexp.MustCompile(`(?i)as\s+on\s+(\d{1,2}[-/][A-Za-z0-9]{2,3}[-/]\d{4})`)

var casDateLayouts = []string{"02-Jan-2006", "02/Jan/2006", "02-01-2006", "02/01/2006"}

// parseNSDLCAS extracts holdings from an Indian consolidated account
// statement (NSDL, CDSL or CAMS layout). Both demat security rows and mutual
// fund folio rows carry an ISIN, which anchors row detection.
func parseNSDLCAS(filename string, doc *Document) ([]*models.Holding, time.Time, error) {
	var holdings []*models.Holding
	var valuationDate time.Time

	currentAMC := "Unknown AMC"
	currentFolio := ""
	var currentLayout []casColumn

	lines := doc.Lines()
	for i, line := range lines {
		text := line.Text()

		if valuationDate.IsZero() {
			if m := asOnPattern.FindStringSubmatch(text); m != nil {
				valuationDate = parseCASDate(m[1])
			}
		}
		if m := folioPattern.FindStringSubmatch(text); m != nil {
			currentFolio = m[1]
			continue
		}
		if amc := detectAMCHeading(text); amc != "" {
			currentAMC = amc
			continue
		}
		if layout := parseHeaderLayout(text); layout != nil {
			currentLayout = layout
			continue
		}

		fields := line.Fields()
		isinIdx := -1
		for idx, f := range fields {
			if isinPattern.MatchString(f) {
				isinIdx = idx
				break
			}
		}
		if isinIdx < 0 {
			continue
		}

		// Scheme rows occasionally wrap, leaving the numbers on the next line.
		numbers := extractAmounts(fields)
		if len(numbers) < 3 && i+1 < len(lines) {
			numbers = append(numbers, extractAmounts(lines[i+1].Fields())...)
		}

		h := buildCASHolding(fields, isinIdx, numbers, currentLayout, currentAMC, currentFolio)
		if h == nil || h.IsEmpty() {
			continue
		}
		h.ValuationDate = valuationDate
		holdings = append(holdings, h)
	}

	if len(holdings) == 0 {
		return nil, time.Time{}, unparseable(filename, "no holdings found in consolidated account statement", nil)
	}
	return holdings, valuationDate, nil
}

// detectAMCHeading recognizes fund house section headings like
// "HDFC Mutual Fund" that scope the folio rows beneath them.
func detectAMCHeading(text string) string {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	if strings.HasSuffix(lower, "mutual fund") && len(strings.Fields(trimmed)) <= 6 {
		return trimmed
	}
	return ""
}

// buildCASHolding assembles a holding from an ISIN-bearing row. The scheme
// name is the non-numeric text around the ISIN. Numeric columns follow the
// section's header layout when one was recognized; otherwise they are
// resolved by looking for a (units, nav, value) triple whose product checks
// out, with any preceding amount treated as cost.
func buildCASHolding(fields []string, isinIdx int, numbers []float64, layout []casColumn, amc, folio string) *models.Holding {
	isin := fields[isinIdx]

	var nameParts []string
	for idx, f := range fields {
		if idx == isinIdx || IsAmount(f) {
			continue
		}
		nameParts = append(nameParts, f)
	}
	name := strings.TrimSpace(strings.Join(nameParts, " "))
	if name == "" {
		name = "ISIN: " + isin
	}

	units, nav, value, invested, ok := mapColumns(layout, numbers)
	if !ok {
		units, nav, value, invested = resolveCASColumns(numbers)
	}
	if units <= 0 && value <= 0 {
		return nil
	}

	assetClass := models.AssetClassEquity
	if strings.HasPrefix(isin, "INF") {
		assetClass = ClassifyScheme(name, "")
	}

	h := &models.Holding{
		SchemeName:     name,
		ISIN:           isin,
		AssetClass:     assetClass,
		AMC:            amc,
		Folio:          folio,
		Units:          units,
		NAV:            nav,
		CurrentValue:   models.RoundMoney(value),
		InvestedAmount: models.RoundMoney(invested),
		Source:         models.SourceStatement,
	}
	h.Recompute()
	return h
}

// resolveCASColumns picks units, NAV, market value and cost out of a row's
// numbers. Layouts differ between registrars, so the triple is located by
// product rather than position; positional order is the fallback.
func resolveCASColumns(numbers []float64) (units, nav, value, invested float64) {
	if len(numbers) < 3 {
		return 0, 0, 0, 0
	}

	for i := len(numbers) - 1; i >= 2; i-- {
		for j := i - 1; j >= 1; j-- {
			for k := j - 1; k >= 0; k-- {
				u, n, v := numbers[k], numbers[j], numbers[i]
				if u <= 0 || n <= 0 || v <= 0 {
					continue
				}
				if product := u * n; product > 0 && withinTolerance(product, v, 0.015) {
					invested = 0
					if k > 0 {
						invested = numbers[k-1]
					}
					return u, n, v, invested
				}
			}
		}
	}

	// Fallback: cost, units, nav, value when four columns, else units, nav, value.
	if len(numbers) >= 4 {
		return numbers[1], numbers[2], numbers[3], numbers[0]
	}
	return numbers[0], numbers[1], numbers[2], 0
}

func withinTolerance(a, b, tol float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= b*tol
}

func parseCASDate(s string) time.Time {
	for _, layout := range casDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
