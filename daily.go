package hud

import (
	"math"

	"github.com/etnz/hud/date"
)

// LatestEnergyLevel returns the energy level of a day: its maximum body
// battery, or else its end of day body battery, truncated to an integer.
func LatestEnergyLevel(row DailyRecord) (int, bool) {
	for _, v := range []Value{row.BodyBatteryMax, row.BodyBatteryEnd} {
		if x, ok := v.Get(); ok {
			return int(x), true
		}
	}
	return 0, false
}

// Latest returns the most recent record of the table.
func Latest(t *DailyTable) (DailyRecord, bool) {
	if t.Len() == 0 {
		return DailyRecord{}, false
	}
	return t.rows[len(t.rows)-1], true
}

// DayOrLatest returns the record of day, or the most recent record when day is absent.
func DayOrLatest(t *DailyTable, day date.Date) (DailyRecord, bool) {
	if r, ok := t.Get(day); ok {
		return r, true
	}
	return Latest(t)
}

// PeriodAggregate reduces column c over the window ending on today.
func PeriodAggregate(t *DailyTable, c Column, w date.Window, mode Mode, today date.Date) Value {
	r, ok := w.Range(today, t.First())
	if !ok {
		return None()
	}
	return reduce(mode, column(t.Between(r), c)...)
}

// WeeklyStressMean returns the mean stress since Monday.
func WeeklyStressMean(t *DailyTable, today date.Date) Value {
	return PeriodAggregate(t, Stress, date.WeekToDate, Mean, today)
}

// SleepPeriodAverage returns the mean of a sleep column over a window.
func SleepPeriodAverage(t *DailyTable, c Column, w date.Window, today date.Date) Value {
	return PeriodAggregate(t, c, w, Mean, today)
}

// BreathworkTodayAndWeekAverage returns today's breathwork minutes and the
// average over the last 7 days.
//
// The average is taken over the rows of the window, and a row without
// breathwork counts as zero minutes. Both numbers are 0 when there is no data.
func BreathworkTodayAndWeekAverage(t *DailyTable, today date.Date) (todayMin, avg7 int) {
	if r, ok := t.Get(today); ok {
		todayMin = int(math.RoundToEven(r.Breathwork.Or(0)))
	}
	r, _ := date.Rolling7.Range(today, t.First())
	rows := t.Between(r)
	if len(rows) == 0 {
		return todayMin, 0
	}
	var sum float64
	for _, row := range rows {
		sum += row.Breathwork.Or(0)
	}
	return todayMin, int(math.RoundToEven(sum / float64(len(rows))))
}

// BreathworkStreak counts the consecutive days with breathwork, ending on the
// most recent day that has some.
//
// Empty days after the most recent practice are skipped. Once counting has
// started, the streak stops at the first empty day or at the first missing day.
func BreathworkStreak(t *DailyTable) int {
	var streak int
	var last date.Date
	for i := len(t.rows) - 1; i >= 0; i-- {
		row := t.rows[i]
		if row.Breathwork.Or(0) <= 0 {
			if streak == 0 {
				continue
			}
			break
		}
		if streak > 0 && last.Sub(row.Date) != 1 {
			break
		}
		streak++
		last = row.Date
	}
	return streak
}
