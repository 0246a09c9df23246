package models

import (
	"testing"
)

func TestNewPortfolio(t *testing.T) {
	p := NewPortfolio("+919876543210")

	if p.UserID != "+919876543210" {
		t.Errorf("UserID = %q", p.UserID)
	}
	if p.Sources == nil || p.Manual == nil {
		t.Fatal("maps must be initialized")
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}
}

func TestHasSource(t *testing.T) {
	p := NewPortfolio("u1")
	if p.HasSource("abc") {
		t.Error("empty portfolio should have no sources")
	}
	p.Sources["abc"] = &StatementSource{SourceID: "abc"}
	if !p.HasSource("abc") {
		t.Error("expected source to be present")
	}
}

func TestStatementSourceTotalValue(t *testing.T) {
	src := &StatementSource{
		Holdings: []Holding{
			{CurrentValue: 1000},
			{CurrentValue: 250.5},
		},
	}
	if got := src.TotalValue(); got != 1250.5 {
		t.Errorf("TotalValue() = %v, want 1250.5", got)
	}
}
