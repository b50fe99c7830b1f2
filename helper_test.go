package hud

import (
	"testing"

	"github.com/etnz/hud/date"
)

// today is a Thursday, the week started on Monday 2025-08-18.
var today = date.New(2025, 8, 21)

// day returns the date n days before today.
func day(n int) date.Date { return today.Add(-n) }

// breathwork returns a table with one row per day ending on last, one row per minutes value, oldest first.
func breathwork(t *testing.T, last date.Date, minutes ...float64) *DailyTable {
	t.Helper()
	var records []DailyRecord
	for i, m := range minutes {
		records = append(records, DailyRecord{
			Date:       last.Add(i - len(minutes) + 1),
			Breathwork: Some(m),
		})
	}
	return NewDailyTable(records)
}
