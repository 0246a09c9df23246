package common

import (
	"context"
	"testing"
)

func TestUserContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	if UserContextFromContext(ctx) != nil {
		t.Error("expected nil for an unauthenticated context")
	}
	if ResolveUserID(ctx) != "" {
		t.Error("expected empty user ID for an unauthenticated context")
	}

	uc := &UserContext{Phone: "+919876543210", Name: "Asha"}
	ctx = WithUserContext(ctx, uc)

	got := UserContextFromContext(ctx)
	if got == nil || got.Phone != "+919876543210" || got.Name != "Asha" {
		t.Errorf("got %+v", got)
	}
	if ResolveUserID(ctx) != "+919876543210" {
		t.Errorf("ResolveUserID = %q", ResolveUserID(ctx))
	}
}
