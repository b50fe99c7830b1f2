package agent

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFacts_String(t *testing.T) {
	f := Facts{"VIX_D1": "+5.00%", "SPX_D1": "-1.20%", "GOLD_D1": ""}
	if got, want := f.String(), "- SPX_D1: -1.20%\n- VIX_D1: +5.00%\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAnalyst_Alerts(t *testing.T) {
	var path, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"VIX em alta\n • S&P em queda "}]}}]}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	client, err := NewClient(ctx, "test-key", srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	a := NewAnalyst(client, "")
	got, err := a.Alerts(ctx, Facts{"VIX_D1": "+5.00%"})
	if err != nil {
		t.Fatalf("Alerts() error = %v", err)
	}
	if want := "VIX em alta • S&P em queda"; got != want {
		t.Errorf("Alerts() = %q, want %q", got, want)
	}
	if !strings.Contains(path, DefaultModel) {
		t.Errorf("request path %q does not name the model %q", path, DefaultModel)
	}
	if !strings.Contains(body, "VIX_D1: +5.00%") {
		t.Errorf("request body does not contain the facts: %s", body)
	}
}

func TestAnalyst_NoFacts(t *testing.T) {
	a := NewAnalyst(nil, "")
	if got, err := a.Alerts(context.Background(), nil); got != "" || err != nil {
		t.Errorf("Alerts(nil) = %q, %v want empty", got, err)
	}
}
