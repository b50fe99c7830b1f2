// Package sheets reads the dashboard tables from a Google spreadsheet, or
// from a directory of CSV files with the same layout.
package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/hud"
	"github.com/etnz/hud/date"
	"github.com/etnz/hud/fetch"
)

// Tab names of the spreadsheet.
const (
	DailyTab      = "DailyHUD"
	ActivitiesTab = "Activities"
	TurtleTab     = "Turtle"
)

// Activities column names.
const (
	KindColumn     = "Tipo"
	DistanceColumn = "Distância (km)"
	DurationColumn = "Duração (min)"
	HRColumn       = "FC Média"
	VO2Column      = "VO2 Máx"
)

// BaseURL is the Google Sheets endpoint.
var BaseURL = "https://docs.google.com/spreadsheets/d/"

// Source reads tables either from a published Google spreadsheet or from a local directory.
type Source struct {
	ID     string       // spreadsheet id
	Dir    string       // local directory, used when not empty
	Client *http.Client // http client for the spreadsheet
}

// New returns a Source. dir takes precedence over id.
func New(id, dir string, client *http.Client) (*Source, error) {
	if id == "" && dir == "" {
		return nil, errors.New("no spreadsheet id and no local directory")
	}
	if client == nil {
		client = fetch.NewClient("", fetch.TTL)
	}
	return &Source{ID: id, Dir: dir, Client: client}, nil
}

// String describes the source.
func (s *Source) String() string {
	if s.Dir != "" {
		return s.Dir
	}
	return "gsheet:" + s.ID
}

// csvURL returns the CSV export address of a tab.
func (s *Source) csvURL(tab string) string {
	return fmt.Sprintf("%s%s/gviz/tq?tqx=out:csv&sheet=%s", BaseURL, url.PathEscape(s.ID), url.QueryEscape(tab))
}

// Table returns the non blank rows of a tab, header first.
func (s *Source) Table(ctx context.Context, tab string) ([][]string, error) {
	var content []byte
	var err error
	if s.Dir != "" {
		content, err = os.ReadFile(filepath.Join(s.Dir, tab+".csv"))
	} else {
		content, err = fetch.Get(ctx, s.Client, s.csvURL(tab), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read tab %q from %v: %w", tab, s, err)
	}
	content = bytes.TrimPrefix(content, []byte("\ufeff"))

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse tab %q: %w", tab, err)
	}
	rows := records[:0]
	for _, r := range records {
		if !blank(r) {
			rows = append(rows, r)
		}
	}
	return rows, nil
}

// Daily loads the daily records table.
//
// Rows without a valid date are dropped, and unparseable cells are missing.
func (s *Source) Daily(ctx context.Context) (*hud.DailyTable, error) {
	rows, err := s.Table(ctx, DailyTab)
	if err != nil {
		return nil, err
	}
	return parseDaily(rows), nil
}

func parseDaily(rows [][]string) *hud.DailyTable {
	if len(rows) == 0 {
		return hud.NewDailyTable(nil)
	}
	h := newHeader(rows[0])
	dateIdx, ok := h.index(string(hud.DateColumn))
	if !ok {
		return hud.NewDailyTable(nil)
	}
	columns := make(map[hud.Column]int)
	for _, c := range hud.Columns {
		if i, ok := h.index(string(c)); ok {
			columns[c] = i
		}
	}

	records := make([]hud.DailyRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		day, ok := parseDate(cell(row, dateIdx))
		if !ok {
			continue
		}
		r := hud.DailyRecord{Date: day}
		for c, i := range columns {
			r.Set(c, parseNumber(cell(row, i)))
		}
		records = append(records, r)
	}
	return hud.NewDailyTable(records)
}

// Activities loads the activity events.
func (s *Source) Activities(ctx context.Context) ([]hud.ActivityEvent, error) {
	rows, err := s.Table(ctx, ActivitiesTab)
	if err != nil {
		return nil, err
	}
	return parseActivities(rows), nil
}

func parseActivities(rows [][]string) []hud.ActivityEvent {
	if len(rows) == 0 {
		return nil
	}
	h := newHeader(rows[0])
	dateIdx, ok := h.index(string(hud.DateColumn))
	if !ok {
		return nil
	}
	kind, _ := h.index(KindColumn)
	dist, _ := h.index(DistanceColumn)
	dur, _ := h.index(DurationColumn)
	hr, _ := h.index(HRColumn)
	vo2, _ := h.index(VO2Column)
	pace, _ := h.index(string(hud.PaceColumn))

	var events []hud.ActivityEvent
	for _, row := range rows[1:] {
		day, ok := parseDate(cell(row, dateIdx))
		if !ok {
			continue
		}
		e := hud.ActivityEvent{
			Date:        day,
			Kind:        strings.TrimSpace(cell(row, kind)),
			DistanceKm:  parseNumber(cell(row, dist)),
			DurationMin: parseNumber(cell(row, dur)),
			AvgHR:       parseNumber(cell(row, hr)),
			VO2Max:      parseNumber(cell(row, vo2)),
		}
		// the pace is either a number of minutes or an already formatted text.
		if v, ok := parseNumber(cell(row, pace)).Get(); ok {
			e.Pace = hud.NumericPace(v)
		} else {
			e.Pace = hud.TextPace(cell(row, pace))
		}
		events = append(events, e)
	}
	return events
}

// Objective returns the objective of the day from the Turtle tab: today's, or
// else the latest one before today. It returns the hud.Placeholder when none is found.
func (s *Source) Objective(ctx context.Context, today date.Date) (string, error) {
	rows, err := s.Table(ctx, TurtleTab)
	if err != nil {
		return hud.Placeholder, err
	}
	return parseObjective(rows, today), nil
}

func parseObjective(rows [][]string, today date.Date) string {
	if len(rows) == 0 {
		return hud.Placeholder
	}
	h := newHeader(rows[0])
	dateIdx, okDate := h.index("data", "date", "dia")
	objIdx, okObj := h.index("objetivo", "objective", "goal", "meta")
	if !okDate || !okObj {
		return hud.Placeholder
	}

	var best date.Date
	objective := hud.Placeholder
	for _, row := range rows[1:] {
		day, ok := parseDate(cell(row, dateIdx))
		if !ok || day.After(today) || day.Before(best) {
			continue
		}
		// later rows of the same day win.
		best = day
		objective = strings.TrimSpace(cell(row, objIdx))
	}
	switch strings.ToLower(objective) {
	case "", "nan", "none":
		return hud.Placeholder
	}
	return objective
}
