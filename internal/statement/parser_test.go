package statement

import (
	"errors"
	"testing"

	"github.com/wealthlens/wealthlens/internal/common"
	"github.com/wealthlens/wealthlens/internal/models"
)

// textExtractor treats the uploaded bytes as plain text, bypassing PDF
// extraction so parsing can be exercised with fixtures.
type textExtractor struct {
	err error
}

func (e *textExtractor) Extract(content []byte, password string) (*Document, error) {
	if e.err != nil {
		return nil, e.err
	}
	return DocumentFromText(string(content)), nil
}

func newTestParser() *Parser {
	return NewParserWithExtractor(&textExtractor{}, 84.50, common.NewSilentLogger())
}

func TestParser_DispatchesVested(t *testing.T) {
	p := newTestParser()
	parsed, err := p.Parse("statement.pdf", []byte(vestedFixture), "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.Format != models.FormatVestedUS {
		t.Errorf("Format = %q, want vested_us", parsed.Format)
	}
	if len(parsed.Holdings) != 2 {
		t.Errorf("got %d holdings, want 2", len(parsed.Holdings))
	}
}

func TestParser_DispatchesCAS(t *testing.T) {
	p := newTestParser()
	parsed, err := p.Parse("cas.pdf", []byte(casFixture), "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.Format != models.FormatNSDLCAS {
		t.Errorf("Format = %q, want nsdl_cas", parsed.Format)
	}
	if parsed.ValuationDate.IsZero() {
		t.Error("expected a valuation date from the statement")
	}
}

func TestParser_ExtractionFailure(t *testing.T) {
	p := NewParserWithExtractor(&textExtractor{err: errors.New("bad pdf")}, 84.50, common.NewSilentLogger())
	_, err := p.Parse("broken.pdf", []byte("x"), "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrUnparseable) {
		t.Errorf("error %v is not ErrUnparseable", err)
	}
}

func TestParser_NoRows(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("letter.pdf", []byte("Dear investor, thank you for choosing us."), "")
	if err == nil {
		t.Fatal("expected error for statement with no rows")
	}
	if !errors.Is(err, ErrUnparseable) {
		t.Errorf("error %v is not ErrUnparseable", err)
	}
}
