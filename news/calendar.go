package news

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/etnz/hud/date"
	"github.com/etnz/hud/fetch"
)

// CalendarURL is the TradingEconomics calendar endpoint.
var CalendarURL = "https://api.tradingeconomics.com/calendar"

// text is a json value read as text, whatever its json type.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = text(strings.TrimSpace(v))
	default:
		*t = text(fmt.Sprint(v))
	}
	return nil
}

// Event is a macro economic calendar event.
type Event struct {
	Country  text `json:"Country"`
	Date     text `json:"Date"`
	DateUTC  text `json:"DateUtc"`
	Category text `json:"Category"`
	Event    text `json:"Event"`
	Actual   text `json:"Actual"`
	Forecast text `json:"Forecast"`
	Previous text `json:"Previous"`
}

// eventTimeFormats are the layouts of event dates, all in UTC.
var eventTimeFormats = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04:05.999999999"}

// Line formats the event as a markdown list item, with its time in loc.
//
//	- 09:00 — IPCA (Real: 0.3% • Cons.: 0.2% • Ant.: 0.1%)
func (e Event) Line(loc *time.Location) string {
	hhmm := "--:--"
	when := string(cmp.Or(e.DateUTC, e.Date))
	for _, layout := range eventTimeFormats {
		if t, err := time.Parse(layout, when); err == nil {
			hhmm = t.In(loc).Format("15:04")
			break
		}
	}
	title := string(cmp.Or(e.Event, e.Category, "Evento"))
	line := fmt.Sprintf("- %s — %s", hhmm, title)

	var details []string
	if e.Actual != "" {
		details = append(details, "Real: "+string(e.Actual))
	}
	if e.Forecast != "" {
		details = append(details, "Cons.: "+string(e.Forecast))
	}
	if e.Previous != "" {
		details = append(details, "Ant.: "+string(e.Previous))
	}
	if len(details) > 0 {
		line += " (" + strings.Join(details, " • ") + ")"
	}
	return line
}

// Calendar reads today's events from TradingEconomics.
type Calendar struct {
	Client *http.Client
	APIKey string
}

// NewCalendar returns a Calendar. Without apiKey it always returns empty lists.
func NewCalendar(client *http.Client, apiKey string) *Calendar {
	if client == nil {
		client = fetch.NewClient("", fetch.TTL)
	}
	return &Calendar{Client: client, APIKey: apiKey}
}

// Today returns the events of the day in Brazil and in the United States,
// formatted with Event.Line.
func (c *Calendar) Today(ctx context.Context, today date.Date, loc *time.Location) (br, us []string, err error) {
	if c.APIKey == "" {
		return nil, nil, nil
	}
	d := today.String()
	q := url.Values{
		"d1":     {d},
		"d2":     {d},
		"c":      {"brazil,united states"},
		"format": {"json"},
		"client": {c.APIKey},
	}
	var events []Event
	if err := fetch.JSON(ctx, c.Client, CalendarURL+"?"+q.Encode(), &events); err != nil {
		return nil, nil, fmt.Errorf("cannot read macro calendar: %w", err)
	}
	for _, e := range events {
		country := strings.ToLower(string(e.Country))
		switch {
		case strings.Contains(country, "brazil"):
			br = append(br, e.Line(loc))
		case strings.Contains(country, "united states"):
			us = append(us, e.Line(loc))
		}
	}
	return br, us, nil
}
