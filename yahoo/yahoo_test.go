package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etnz/hud"
	"github.com/etnz/hud/date"
	"github.com/etnz/hud/fetch"
)

// 2025-08-19 13:30 UTC, 2025-08-20 13:30 UTC, 2025-08-21 13:30 UTC
const chartJSON = `{"chart":{"result":[{
	"meta":{"symbol":"^GSPC","gmtoffset":-14400},
	"timestamp":[1755610200,1755696600,1755783000],
	"indicators":{"quote":[{"close":[6400.5,null,6450.0]}]}
}],"error":null}}`

const emptyJSON = `{"chart":{"result":[{"meta":{"symbol":"DX-Y.NYB","gmtoffset":-14400},"indicators":{"quote":[{}]}}],"error":null}}`

func server(t *testing.T, bodies map[string]string) *Provider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.TrimPrefix(r.URL.Path, "/chart/")
		body, ok := bodies[symbol]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("interval") != "1d" {
			http.Error(w, "bad interval", http.StatusBadRequest)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	old := BaseURL
	BaseURL = srv.URL + "/chart/"
	t.Cleanup(func() { BaseURL = old })
	return New(fetch.NewClient("", 0))
}

func TestProvider_History(t *testing.T) {
	p := server(t, map[string]string{"^GSPC": chartJSON})
	today := date.New(2025, 8, 21)
	series, err := p.History(context.Background(), "^GSPC", today)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if series.Len() != 2 {
		t.Fatalf("History().Len() = %d, want 2 (null close skipped)", series.Len())
	}
	for on, v := range series.Since(date.New(2025, 8, 19)) {
		if on != date.New(2025, 8, 19) || v != 6400.5 {
			t.Errorf("first close = %v on %v, want 6400.5 on 2025-08-19", v, on)
		}
		break
	}
	if got := hud.DayOverDayReturn(series); !got.Ok() {
		t.Errorf("DayOverDayReturn() = %v, want a value", got)
	}
}

func TestProvider_History_Period(t *testing.T) {
	var period1, period2 string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period1, period2 = r.URL.Query().Get("period1"), r.URL.Query().Get("period2")
		w.Write([]byte(chartJSON))
	}))
	defer srv.Close()
	old := BaseURL
	BaseURL = srv.URL + "/chart/"
	defer func() { BaseURL = old }()

	p := New(fetch.NewClient("", 0))
	if _, err := p.History(context.Background(), "^GSPC", date.New(2025, 8, 21)); err != nil {
		t.Fatalf("History() error = %v", err)
	}
	// 2024-02-18 and 2025-08-22 at midnight UTC
	if period1 != "1708214400" || period2 != "1755820800" {
		t.Errorf("History() requested period1=%s period2=%s, want 1708214400 and 1755820800", period1, period2)
	}
}

func TestProvider_Series_Fallback(t *testing.T) {
	p := server(t, map[string]string{"DX-Y.NYB": emptyJSON, "^DXY": chartJSON})
	in := hud.Instrument{Key: "DXY", Symbol: "DX-Y.NYB", Fallback: "^DXY"}
	series, err := p.Series(context.Background(), in, date.New(2025, 8, 21))
	if err != nil {
		t.Fatalf("Series() error = %v", err)
	}
	if series.Len() != 2 {
		t.Errorf("Series().Len() = %d, want the fallback series", series.Len())
	}
}

func TestProvider_Series_Error(t *testing.T) {
	p := server(t, nil)
	if _, err := p.Series(context.Background(), hud.Instrument{Key: "X", Symbol: "X"}, date.New(2025, 8, 21)); err == nil {
		t.Errorf("Series() on an unknown symbol should fail")
	}
}
