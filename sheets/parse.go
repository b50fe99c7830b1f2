package sheets

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/etnz/hud"
	"github.com/etnz/hud/date"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dateFormats are the layouts accepted for a date cell, tried in order.
var dateFormats = []string{
	"2006-1-2",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2T15:04:05Z07:00",
	"2/1/2006",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
}

// serialOrigin is the day zero of spreadsheet serial dates.
var serialOrigin = date.New(1899, time.December, 30)

// parseDate parses a date cell. Day/month dates are read day first.
// Numbers are spreadsheet serial dates.
func parseDate(s string) (date.Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return date.Date{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return date.Of(t), true
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 && serial < 2958466 {
		return serialOrigin.Add(int(serial)), true
	}
	return date.Date{}, false
}

// parseNumber parses a numeric cell, accepting a comma or a dot as decimal separator.
// Anything else is missing.
func parseNumber(s string) hud.Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return hud.None()
	}
	dot, comma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case comma >= 0 && dot >= 0 && comma > dot: // 1.234,5
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case comma >= 0 && dot >= 0: // 1,234.5
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return hud.None()
	}
	return hud.Some(x)
}

// fold normalizes a header name: no accents, lower case, trimmed.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// header indexes the columns of a table by folded name.
type header map[string]int

func newHeader(names []string) header {
	h := make(header, len(names))
	for i, name := range names {
		key := fold(name)
		if _, exists := h[key]; !exists && key != "" {
			h[key] = i
		}
	}
	return h
}

// index returns the position of the first column matching one of names.
func (h header) index(names ...string) (int, bool) {
	for _, name := range names {
		if i, ok := h[fold(name)]; ok {
			return i, true
		}
	}
	return -1, false
}

// cell returns the i-th cell of row, or "" when out of range.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// blank reports whether every cell of the row is empty.
func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
