package statement

import (
	"time"

	"github.com/wealthlens/wealthlens/internal/common"
	"github.com/wealthlens/wealthlens/internal/models"
)

// Parsed is the outcome of parsing one statement file.
type Parsed struct {
	Format        models.StatementFormat
	Holdings      []*models.Holding
	ValuationDate time.Time
}

// Parser detects the statement format and dispatches to the matching
// format parser.
type Parser struct {
	extractor Extractor
	usdToINR  float64
	logger    *common.Logger
}

// NewParser creates a statement parser using the default PDF extractor.
func NewParser(usdToINR float64, logger *common.Logger) *Parser {
	return &Parser{
		extractor: NewPDFExtractor(),
		usdToINR:  usdToINR,
		logger:    logger,
	}
}

// NewParserWithExtractor creates a parser with a custom extractor.
func NewParserWithExtractor(extractor Extractor, usdToINR float64, logger *common.Logger) *Parser {
	return &Parser{
		extractor: extractor,
		usdToINR:  usdToINR,
		logger:    logger,
	}
}

// Parse extracts text from the PDF, detects the statement format, and parses
// out the holdings. A wrong password or unreadable file reports as
// ErrUnparseable rather than a distinct error class.
func (p *Parser) Parse(filename string, content []byte, password string) (*Parsed, error) {
	doc, err := p.extractor.Extract(content, password)
	if err != nil {
		return nil, unparseable(filename, "failed to extract text", err)
	}

	format := DetectFormat(filename, doc)
	p.logger.Debug().
		Str("filename", filename).
		Str("format", string(format)).
		Int("pages", len(doc.Pages)).
		Msg("Statement format detected")

	var parsed *Parsed
	switch format {
	case models.FormatVestedUS:
		holdings, err := parseVested(filename, doc, p.usdToINR)
		if err != nil {
			return nil, err
		}
		parsed = &Parsed{Format: format, Holdings: holdings}
	default:
		holdings, valuationDate, err := parseNSDLCAS(filename, doc)
		if err != nil {
			return nil, err
		}
		parsed = &Parsed{Format: models.FormatNSDLCAS, Holdings: holdings, ValuationDate: valuationDate}
	}

	p.logger.Info().
		Str("filename", filename).
		Str("format", string(parsed.Format)).
		Int("holdings", len(parsed.Holdings)).
		Msg("Statement parsed")

	return parsed, nil
}
