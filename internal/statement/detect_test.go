package statement

import (
	"testing"

	"github.com/wealthlens/wealthlens/internal/models"
)

func TestDetectFormat_FilenameHint(t *testing.T) {
	doc := DocumentFromText("some text")
	if got := DetectFormat("VSTF123456_statement.pdf", doc); got != models.FormatVestedUS {
		t.Errorf("got %q, want vested_us for vstf filename", got)
	}
	if got := DetectFormat("vsvt_march.pdf", doc); got != models.FormatVestedUS {
		t.Errorf("got %q, want vested_us for vsvt filename", got)
	}
}

func TestDetectFormat_USBrokerIndicator(t *testing.T) {
	doc := DocumentFromText("Account Statement\nClearing by Apex Clearing Corporation\nAccount Type: Individual")
	if got := DetectFormat("statement.pdf", doc); got != models.FormatVestedUS {
		t.Errorf("got %q, want vested_us", got)
	}

	doc = DocumentFromText("Brokerage services provided by DriveWealth LLC")
	if got := DetectFormat("statement.pdf", doc); got != models.FormatVestedUS {
		t.Errorf("got %q, want vested_us for drivewealth indicator", got)
	}
}

func TestDetectFormat_IndianCAS(t *testing.T) {
	doc := DocumentFromText("NSDL Consolidated Account Statement\nFolio No: 1234/56\nPAN: ABCDE1234F")
	if got := DetectFormat("statement.pdf", doc); got != models.FormatNSDLCAS {
		t.Errorf("got %q, want nsdl_cas", got)
	}
}

func TestDetectFormat_SymbolProbe(t *testing.T) {
	doc := DocumentFromText("Positions\nHoldings: AAPL MSFT TSLA and more")
	if got := DetectFormat("statement.pdf", doc); got != models.FormatVestedUS {
		t.Errorf("got %q, want vested_us from symbol probe", got)
	}
}

func TestDetectFormat_DefaultsToCAS(t *testing.T) {
	doc := DocumentFromText("nothing recognizable here")
	if got := DetectFormat("statement.pdf", doc); got != models.FormatNSDLCAS {
		t.Errorf("got %q, want nsdl_cas default", got)
	}
}
