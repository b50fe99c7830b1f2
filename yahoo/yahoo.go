// Package yahoo fetches daily price histories from the Yahoo Finance chart API.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/hud"
	"github.com/etnz/hud/date"
	"github.com/etnz/hud/fetch"
	"github.com/phuslu/log"
)

// Lookback is the number of days of history fetched, enough for the 12 months return.
const Lookback = 550

// BaseURL is the chart API endpoint.
var BaseURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// Provider fetches price histories.
type Provider struct {
	Client *http.Client
}

// New returns a Provider using client, or a cached client when nil.
func New(client *http.Client) *Provider {
	if client == nil {
		client = fetch.NewClient("", fetch.TTL)
	}
	return &Provider{Client: client}
}

// midnight returns the start of d in UTC.
func midnight(d date.Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// History returns the daily closes of symbol over the Lookback days ending on today.
func (p *Provider) History(ctx context.Context, symbol string, today date.Date) (*hud.Series, error) {
	start, end := midnight(today.Add(-Lookback)), midnight(today.Add(1))
	addr := fmt.Sprintf("%s%s?period1=%d&period2=%d&interval=1d", BaseURL, url.PathEscape(symbol), start.Unix(), end.Unix())
	body, err := fetch.Get(ctx, p.Client, addr, http.Header{"User-Agent": {"Mozilla/5.0"}})
	if err != nil {
		return nil, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", symbol, err)
	}
	series, err := parseChart(jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", symbol, err)
	}
	return series, nil
}

// Series returns the history of an instrument, trying its fallback symbol when
// the main one has no data.
func (p *Provider) Series(ctx context.Context, in hud.Instrument, today date.Date) (*hud.Series, error) {
	series, err := p.History(ctx, in.Symbol, today)
	if err == nil && series.Len() > 0 || in.Fallback == "" {
		return series, err
	}
	log.Info().Str("instrument", in.Key).Str("fallback", in.Fallback).Err(err).Msg("trying fallback symbol")
	fallback, ferr := p.History(ctx, in.Fallback, today)
	if ferr != nil {
		return series, errors.Join(err, ferr)
	}
	return fallback, nil
}

// get evaluates a json path on a decoded json object.
func get(path string, jobj any) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return jval, nil
}

// parseChart extracts the daily closes of a chart response.
//
// Null closes are skipped. Dates are taken in the exchange time zone.
func parseChart(jobj any) (*hud.Series, error) {
	series := new(hud.Series)
	jts, err := get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		// no timestamp at all is an instrument without trades in the range.
		if _, cerr := get("$.chart.result[0].meta", jobj); cerr == nil {
			return series, nil
		}
		return nil, err
	}
	jcloses, err := get("$.chart.result[0].indicators.quote[0].close", jobj)
	if err != nil {
		return nil, err
	}
	var offset float64
	if joff, err := get("$.chart.result[0].meta.gmtoffset", jobj); err == nil {
		offset, _ = joff.(float64)
	}

	timestamps, ok1 := jts.([]any)
	closes, ok2 := jcloses.([]any)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("unexpected chart layout: %T %T", jts, jcloses)
	}
	for i, jt := range timestamps {
		ts, ok := jt.(float64)
		if !ok || i >= len(closes) {
			continue
		}
		price, ok := closes[i].(float64)
		if !ok {
			continue // null
		}
		day := date.Of(time.Unix(int64(ts+offset), 0).UTC())
		series.Append(day, price)
	}
	return series, nil
}
