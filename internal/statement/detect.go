package statement

import (
	"strings"

	"github.com/wealthlens/wealthlens/internal/models"
)

// Text fragments unique to US brokerage statements.
var usBrokerIndicators = []string{
	"vf securities",
	"drivewealth",
	"alpaca securities",
	"clearing by apex",
	"account type: individual",
}

// Text fragments that identify an Indian consolidated account statement.
var indianCASIndicators = []string{
	"nsdl",
	"cdsl",
	"consolidated account statement",
	"depository participant",
	"demat account",
	"folio no",
	"pan:",
	"cams",
	"karvy",
	"kfintech",
	"sebi registration",
}

var usSymbolProbe = []string{
	"aapl", "googl", "goog", "msft", "amzn", "meta", "tsla", "nvda", "nflx", "spy", "qqq", "voo",
}

// DetectFormat decides which parser handles the statement. The filename is
// checked first because broker exports carry distinctive name patterns, then
// the first pages of text. Anything not recognized as a US brokerage
// statement is treated as an Indian CAS and left to that parser to accept or
// reject.
func DetectFormat(filename string, doc *Document) models.StatementFormat {
	lower := strings.ToLower(filename)
	if strings.Contains(lower, "vstf") || strings.Contains(lower, "vsvt") {
		return models.FormatVestedUS
	}

	// Only the first pages matter for detection.
	var sb strings.Builder
	for i, p := range doc.Pages {
		if i >= 3 {
			break
		}
		for _, l := range p.Lines {
			sb.WriteString(l.Text())
			sb.WriteString(" ")
		}
	}
	text := strings.ToLower(sb.String())

	for _, ind := range usBrokerIndicators {
		if strings.Contains(text, ind) {
			return models.FormatVestedUS
		}
	}

	indianMatches := 0
	for _, ind := range indianCASIndicators {
		if strings.Contains(text, ind) {
			indianMatches++
		}
	}
	if indianMatches >= 2 {
		return models.FormatNSDLCAS
	}

	symbolMatches := 0
	for _, sym := range usSymbolProbe {
		if strings.Contains(text, " "+sym+" ") || strings.Contains(text, " "+sym+",") {
			symbolMatches++
		}
	}
	if symbolMatches >= 3 {
		return models.FormatVestedUS
	}

	return models.FormatNSDLCAS
}
