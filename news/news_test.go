package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/etnz/hud/date"
	"github.com/etnz/hud/fetch"
)

const rssA = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>A</title>
<item><title>Ibovespa sobe</title><link>https://a.example/1</link><pubDate>Thu, 21 Aug 2025 13:00:00 +0000</pubDate></item>
<item><title>Sem data</title><link>https://a.example/2</link></item>
<item><title></title><link>https://a.example/3</link></item>
</channel></rss>`

const rssB = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>B</title>
<item><title>Dólar cai</title><link>https://b.example/1</link><pubDate>Thu, 21 Aug 2025 14:30:00 +0000</pubDate></item>
<item><title>Ontem</title><link>https://b.example/2</link><pubDate>Wed, 20 Aug 2025 10:00:00 +0000</pubDate></item>
</channel></rss>`

func feeds(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/a":
			w.Write([]byte(rssA))
		case "/b":
			w.Write([]byte(rssB))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestReader_Latest(t *testing.T) {
	srv := feeds(t)
	r := &Reader{
		Client: fetch.NewClient("", 0),
		Feeds:  []Feed{{"A", srv.URL + "/a"}, {"B", srv.URL + "/b"}, {"Down", srv.URL + "/down"}},
	}
	items, err := r.Latest(context.Background(), 3)
	if err == nil {
		t.Errorf("Latest() error = nil, want the error of the unreachable feed")
	}
	if len(items) != 3 {
		t.Fatalf("Latest() returned %d items, want 3", len(items))
	}
	want := []string{"Dólar cai", "Ibovespa sobe", "Ontem"}
	for i, w := range want {
		if items[i].Title != w {
			t.Errorf("items[%d].Title = %q, want %q", i, items[i].Title, w)
		}
	}
	brt := time.FixedZone("BRT", -3*3600)
	if got, want := items[0].Date(brt), "2025-08-21 11:30 BRT"; got != want {
		t.Errorf("Date() = %q, want %q", got, want)
	}
	if items[0].Source != "B" {
		t.Errorf("Source = %q, want B", items[0].Source)
	}

	all, _ := r.Latest(context.Background(), 10)
	if len(all) != 4 || all[3].Title != "Sem data" || all[3].Date(brt) != "" {
		t.Errorf("undated item should come last with no date: %+v", all)
	}
}

func TestEvent_Line(t *testing.T) {
	brt := time.FixedZone("BRT", -3*3600)
	testCases := []struct {
		name string
		in   Event
		want string
	}{
		{"full", Event{Date: "2025-08-21T12:00:00", Event: "IPCA", Actual: "0.3%", Forecast: "0.2%", Previous: "0.1%"}, "- 09:00 — IPCA (Real: 0.3% • Cons.: 0.2% • Ant.: 0.1%)"},
		{"no details", Event{DateUTC: "2025-08-21T18:00:00Z", Category: "Fed Speech"}, "- 15:00 — Fed Speech"},
		{"no date", Event{Previous: "1"}, "- --:-- — Evento (Ant.: 1)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Line(brt); got != tc.want {
				t.Errorf("Line() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCalendar_Today(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`[
			{"Country":"Brazil","Date":"2025-08-21T12:00:00","Event":"IPCA","Actual":null,"Forecast":0.2,"Previous":"0.1%"},
			{"Country":"United States","Date":"2025-08-21T12:30:00","Event":"Jobless Claims"},
			{"Country":"Japan","Date":"2025-08-21T00:30:00","Event":"CPI"}
		]`))
	}))
	defer srv.Close()
	defer func(u string) { CalendarURL = u }(CalendarURL)
	CalendarURL = srv.URL

	c := NewCalendar(fetch.NewClient("", 0), "guest:guest")
	br, us, err := c.Today(context.Background(), date.New(2025, 8, 21), time.FixedZone("BRT", -3*3600))
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}
	if len(br) != 1 || br[0] != "- 09:00 — IPCA (Cons.: 0.2 • Ant.: 0.1%)" {
		t.Errorf("Today() br = %q", br)
	}
	if len(us) != 1 || us[0] != "- 09:30 — Jobless Claims" {
		t.Errorf("Today() us = %q", us)
	}
	if query == "" {
		t.Errorf("no query sent")
	}

	br, us, err = NewCalendar(nil, "").Today(context.Background(), date.New(2025, 8, 21), time.UTC)
	if br != nil || us != nil || err != nil {
		t.Errorf("Today() without api key = %v, %v, %v want nothing", br, us, err)
	}
}
