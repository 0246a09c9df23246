package server

import (
	"net/http"
	"testing"
)

const casStatement = `NSDL Consolidated Account Statement as on 31-Mar-2025
HDFC Bank Ltd INE040A01034 72525.00 50 1620.75 81037.50`

func TestPortfolioEndpoints_RequireAuth(t *testing.T) {
	h := newTestServer().Handler()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/portfolio"},
		{http.MethodPost, "/api/portfolio/upload"},
		{http.MethodPost, "/api/portfolio/manual"},
		{http.MethodDelete, "/api/portfolio/manual/Bitcoin"},
		{http.MethodGet, "/api/portfolio/sources"},
		{http.MethodDelete, "/api/portfolio/sources/abc"},
		{http.MethodPost, "/api/portfolio/reset"},
		{http.MethodGet, "/api/portfolio/chart"},
	}
	for _, p := range paths {
		rec := doJSON(h, p.method, p.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: got %d, want 401", p.method, p.path, rec.Code)
		}
	}
}

func TestUploadStatement(t *testing.T) {
	h := newTestServer().Handler()
	token := login(t, h, testPhone)

	rec := uploadStatement(t, h, token, "cas.pdf", []byte(casStatement))
	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	summary, _ := body["summary"].(map[string]interface{})
	if summary == nil {
		t.Fatal("expected summary in response")
	}
	if summary["total_value"] != 81037.5 {
		t.Errorf("total_value = %v, want 81037.5", summary["total_value"])
	}
}

func TestUploadStatement_DuplicateReturns200(t *testing.T) {
	h := newTestServer().Handler()
	token := login(t, h, testPhone)

	if rec := uploadStatement(t, h, token, "cas.pdf", []byte(casStatement)); rec.Code != http.StatusCreated {
		t.Fatalf("first upload: got %d", rec.Code)
	}

	rec := uploadStatement(t, h, token, "cas.pdf", []byte(casStatement))
	if rec.Code != http.StatusOK {
		t.Fatalf("duplicate upload: got %d, want 200", rec.Code)
	}
	if decodeBody(t, rec)["duplicate"] != true {
		t.Error("expected duplicate flag")
	}
}

func TestUploadStatement_Unparseable(t *testing.T) {
	h := newTestServer().Handler()
	token := login(t, h, testPhone)

	rec := uploadStatement(t, h, token, "junk.pdf", []byte("Dear investor, hello."))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, want 422", rec.Code)
	}
	if decodeBody(t, rec)["code"] != "unparseable_statement" {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestUploadStatement_EmptyFile(t *testing.T) {
	h := newTestServer().Handler()
	token := login(t, h, testPhone)

	rec := uploadStatement(t, h, token, "empty.pdf", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400 for an empty file", rec.Code)
	}
}

func TestManualHolding_AddAndDelete(t *testing.T) {
	h := newTestServer().Handler()
	token := login(t, h, testPhone)

	rec := doJSON(h, http.MethodPost, "/api/portfolio/manual", token, map[string]interface{}{
		"scheme_name":  "Bitcoin",
		"asset_class":  "crypto",
		"units":        0.5,
		"nav":          60000,
		"purchase_nav": 30000,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(h, http.MethodDelete, "/api/portfolio/manual/Bitcoin", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: got %d", rec.Code)
	}

	// Deleting again is a no-op, still 200.
	rec = doJSON(h, http.MethodDelete, "/api/portfolio/manual/Bitcoin", token, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("second delete: got %d", rec.Code)
	}
}

func TestManualHolding_DeleteWithSlashInName(t *testing.T) {
	h := newTestServer().Handler()
	token := login(t, h, testPhone)

	rec := doJSON(h, http.MethodPost, "/api/portfolio/manual", token, map[string]interface{}{
		"scheme_name": "HDFC/Top 100 Fund",
		"asset_class": "equity",
		"units":       10,
		"nav":         250,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: got %d: %s", rec.Code, rec.Body.String())
	}

	// An encoded "/" must stay inside the scheme segment.
	rec = doJSON(h, http.MethodDelete, "/api/portfolio/manual/HDFC%2FTop%20100%20Fund", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(h, http.MethodGet, "/api/portfolio", token, nil)
	holdings, _ := decodeBody(t, rec)["holdings"].([]interface{})
	if len(holdings) != 0 {
		t.Errorf("got %d holdings after delete, want 0", len(holdings))
	}
}

func TestManualHolding_ValidationError(t *testing.T) {
	h := newTestServer().Handler()
	token := login(t, h, testPhone)

	rec := doJSON(h, http.MethodPost, "/api/portfolio/manual", token, map[string]interface{}{
		"scheme_name": "Bitcoin",
		"units":       0,
		"nav":         60000,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	if decodeBody(t, rec)["code"] != "validation_error" {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestSources_ListAndDelete(t *testing.T) {
	h := newTestServer().Handler()
	token := login(t, h, testPhone)

	if rec := uploadStatement(t, h, token, "cas.pdf", []byte(casStatement)); rec.Code != http.StatusCreated {
		t.Fatalf("upload: got %d", rec.Code)
	}

	rec := doJSON(h, http.MethodGet, "/api/portfolio/sources", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("sources: got %d", rec.Code)
	}
	sources, _ := decodeBody(t, rec)["sources"].([]interface{})
	if len(sources) != 1 {
		t.Fatalf("got %d sources, want 1", len(sources))
	}
	sourceID, _ := sources[0].(map[string]interface{})["source_id"].(string)
	if sourceID == "" {
		t.Fatal("expected a source_id")
	}

	rec = doJSON(h, http.MethodDelete, "/api/portfolio/sources/"+sourceID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete source: got %d", rec.Code)
	}

	rec = doJSON(h, http.MethodGet, "/api/portfolio", token, nil)
	body := decodeBody(t, rec)
	holdings, _ := body["holdings"].([]interface{})
	if len(holdings) != 0 {
		t.Errorf("got %d holdings after source removal, want 0", len(holdings))
	}
}

func TestPortfolioReset(t *testing.T) {
	h := newTestServer().Handler()
	token := login(t, h, testPhone)

	if rec := uploadStatement(t, h, token, "cas.pdf", []byte(casStatement)); rec.Code != http.StatusCreated {
		t.Fatalf("upload: got %d", rec.Code)
	}

	rec := doJSON(h, http.MethodPost, "/api/portfolio/reset", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("reset: got %d", rec.Code)
	}
	if decodeBody(t, rec)["success"] != true {
		t.Error("expected success flag")
	}

	rec = doJSON(h, http.MethodGet, "/api/portfolio", token, nil)
	summary, _ := decodeBody(t, rec)["summary"].(map[string]interface{})
	if summary["total_value"] != 0.0 {
		t.Errorf("total_value = %v after reset, want 0", summary["total_value"])
	}
}

func TestAllocationChart(t *testing.T) {
	h := newTestServer().Handler()
	token := login(t, h, testPhone)

	rec := doJSON(h, http.MethodGet, "/api/portfolio/chart", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("empty portfolio chart: got %d, want 404", rec.Code)
	}

	if rec := uploadStatement(t, h, token, "cas.pdf", []byte(casStatement)); rec.Code != http.StatusCreated {
		t.Fatalf("upload: got %d", rec.Code)
	}

	rec = doJSON(h, http.MethodGet, "/api/portfolio/chart", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("chart: got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if b := rec.Body.Bytes(); len(b) < 8 || string(b[1:4]) != "PNG" {
		t.Error("expected PNG payload")
	}
}

func TestPortfolioUsersAreIsolated(t *testing.T) {
	h := newTestServer().Handler()
	tokenA := login(t, h, "+919876543210")
	tokenB := login(t, h, "+919812345678")

	if rec := uploadStatement(t, h, tokenA, "cas.pdf", []byte(casStatement)); rec.Code != http.StatusCreated {
		t.Fatalf("upload: got %d", rec.Code)
	}

	rec := doJSON(h, http.MethodGet, "/api/portfolio", tokenB, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	holdings, _ := decodeBody(t, rec)["holdings"].([]interface{})
	if len(holdings) != 0 {
		t.Errorf("user B sees %d holdings from user A", len(holdings))
	}
}
