package hud

import (
	"slices"
	"strings"

	"github.com/etnz/hud/date"
)

// Column names a numeric field of a DailyRecord, as it appears in the spreadsheet header.
type Column string

const (
	DateColumn       Column = "Data"
	SleepHours       Column = "Sono (h)"
	SleepDeep        Column = "Sono Deep (h)"
	SleepREM         Column = "Sono REM (h)"
	SleepLight       Column = "Sono Light (h)"
	SleepScore       Column = "Sono (score)"
	BodyBatteryStart Column = "Body Battery (start)"
	BodyBatteryEnd   Column = "Body Battery (end)"
	BodyBatteryMin   Column = "Body Battery (mín)"
	BodyBatteryMax   Column = "Body Battery (máx)"
	Stress           Column = "Stress (média)"
	Steps            Column = "Passos"
	Calories         Column = "Calorias (total dia)"
	RunKm            Column = "Corrida (km)"
	PaceColumn       Column = "Pace (min/km)"
	Breathwork       Column = "Breathwork (min)"
)

// Columns lists the numeric columns of a DailyRecord in sheet order.
var Columns = []Column{
	SleepHours, SleepDeep, SleepREM, SleepLight, SleepScore,
	BodyBatteryStart, BodyBatteryEnd, BodyBatteryMin, BodyBatteryMax,
	Stress, Steps, Calories, RunKm, PaceColumn, Breathwork,
}

// DailyRecord holds the health and activity values of one calendar day.
type DailyRecord struct {
	Date             date.Date
	SleepHours       Value
	SleepDeep        Value
	SleepREM         Value
	SleepLight       Value
	SleepScore       Value
	BodyBatteryStart Value
	BodyBatteryEnd   Value
	BodyBatteryMin   Value
	BodyBatteryMax   Value
	Stress           Value
	Steps            Value
	Calories         Value
	RunKm            Value
	Pace             Value // minutes per km
	Breathwork       Value // minutes
}

// field returns a pointer to the field of r named by c, or nil for an unknown column.
func (r *DailyRecord) field(c Column) *Value {
	switch c {
	case SleepHours:
		return &r.SleepHours
	case SleepDeep:
		return &r.SleepDeep
	case SleepREM:
		return &r.SleepREM
	case SleepLight:
		return &r.SleepLight
	case SleepScore:
		return &r.SleepScore
	case BodyBatteryStart:
		return &r.BodyBatteryStart
	case BodyBatteryEnd:
		return &r.BodyBatteryEnd
	case BodyBatteryMin:
		return &r.BodyBatteryMin
	case BodyBatteryMax:
		return &r.BodyBatteryMax
	case Stress:
		return &r.Stress
	case Steps:
		return &r.Steps
	case Calories:
		return &r.Calories
	case RunKm:
		return &r.RunKm
	case PaceColumn:
		return &r.Pace
	case Breathwork:
		return &r.Breathwork
	}
	return nil
}

// Get returns the value of column c. Unknown columns are missing.
func (r DailyRecord) Get(c Column) Value {
	if p := r.field(c); p != nil {
		return *p
	}
	return None()
}

// Set sets the value of column c and reports whether the column is known.
func (r *DailyRecord) Set(c Column, v Value) bool {
	p := r.field(c)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// DailyTable is a chronological set of DailyRecord, unique by date.
type DailyTable struct {
	rows []DailyRecord
}

// NewDailyTable builds a table from records in any order.
//
// Records with a zero date are dropped. When several records share a date,
// the last one in records wins.
func NewDailyTable(records []DailyRecord) *DailyTable {
	byDate := make(map[date.Date]int, len(records))
	t := &DailyTable{}
	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		if i, ok := byDate[r.Date]; ok {
			t.rows[i] = r
			continue
		}
		byDate[r.Date] = len(t.rows)
		t.rows = append(t.rows, r)
	}
	slices.SortFunc(t.rows, func(a, b DailyRecord) int { return a.Date.Sub(b.Date) })
	return t
}

// Len returns the number of days in the table.
func (t *DailyTable) Len() int { return len(t.rows) }

// Rows returns the records in chronological order.
func (t *DailyTable) Rows() []DailyRecord { return slices.Clone(t.rows) }

// First returns the earliest date of the table, or the zero date when empty.
func (t *DailyTable) First() date.Date {
	if len(t.rows) == 0 {
		return date.Date{}
	}
	return t.rows[0].Date
}

// Get returns the record of a given day.
func (t *DailyTable) Get(day date.Date) (DailyRecord, bool) {
	i, found := slices.BinarySearchFunc(t.rows, day, func(r DailyRecord, d date.Date) int { return r.Date.Sub(d) })
	if !found {
		return DailyRecord{}, false
	}
	return t.rows[i], true
}

// Between returns the records in the closed range r, in chronological order.
func (t *DailyTable) Between(r date.Range) []DailyRecord {
	var rows []DailyRecord
	for _, row := range t.rows {
		if r.Contains(row.Date) {
			rows = append(rows, row)
		}
	}
	return rows
}

// column returns the values of c over the given records.
func column(rows []DailyRecord, c Column) []Value {
	values := make([]Value, len(rows))
	for i, r := range rows {
		values[i] = r.Get(c)
	}
	return values
}

// PaceKind tells how a Pace is represented.
type PaceKind int

const (
	PaceMissing PaceKind = iota
	PaceNumeric                 // minutes per km
	PaceText                    // already formatted, like "5:30"
)

// Pace is the running pace of an activity as found in the source data:
// either a number of minutes per km or an already formatted text.
type Pace struct {
	Kind    PaceKind
	Minutes float64
	Text    string
}

// NumericPace returns a numeric pace, missing when minutes is not a finite number.
func NumericPace(minutes float64) Pace {
	if !Some(minutes).Ok() {
		return Pace{}
	}
	return Pace{Kind: PaceNumeric, Minutes: minutes}
}

// TextPace returns a pre-formatted pace, missing when s is blank or "nan".
func TextPace(s string) Pace {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return Pace{}
	}
	return Pace{Kind: PaceText, Text: s}
}

// String formats the pace as M:SS.
func (p Pace) String() string {
	switch p.Kind {
	case PaceNumeric:
		return MinutesToMMSS(Some(p.Minutes))
	case PaceText:
		return p.Text
	default:
		return Placeholder
	}
}

// Activity kinds used by the aggregators.
const Running = "running"

// ActivityEvent is one recorded activity. Several events can share a date.
type ActivityEvent struct {
	Date        date.Date
	Kind        string
	DistanceKm  Value
	DurationMin Value
	AvgHR       Value
	VO2Max      Value
	Pace        Pace
}

// IsRunning reports whether the event kind is running, ignoring case.
func (e ActivityEvent) IsRunning() bool { return strings.EqualFold(strings.TrimSpace(e.Kind), Running) }
