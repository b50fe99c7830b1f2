package hud

import (
	"slices"

	"github.com/etnz/hud/date"
)

// DailyRun aggregates the running events of one day.
type DailyRun struct {
	Date        date.Date
	DistanceKm  Value // sum
	DurationMin Value // sum
	Pace        Value // duration / distance, in minutes per km
	AvgHR       Value // mean
	VO2Max      Value // mean
}

// DailyRunAggregate groups the running events by day, in chronological order.
// Events of other kinds are ignored.
func DailyRunAggregate(events []ActivityEvent) []DailyRun {
	type acc struct {
		dist, dur, hr, vo2 []Value
	}
	byDay := make(map[date.Date]*acc)
	var days []date.Date
	for _, e := range events {
		if !e.IsRunning() || e.Date.IsZero() {
			continue
		}
		a, ok := byDay[e.Date]
		if !ok {
			a = new(acc)
			byDay[e.Date] = a
			days = append(days, e.Date)
		}
		a.dist = append(a.dist, e.DistanceKm)
		a.dur = append(a.dur, e.DurationMin)
		a.hr = append(a.hr, e.AvgHR)
		a.vo2 = append(a.vo2, e.VO2Max)
	}
	slices.SortFunc(days, func(a, b date.Date) int { return a.Sub(b) })

	runs := make([]DailyRun, 0, len(days))
	for _, day := range days {
		a := byDay[day]
		run := DailyRun{
			Date:        day,
			DistanceKm:  reduce(Sum, a.dist...),
			DurationMin: reduce(Sum, a.dur...),
			AvgHR:       reduce(Mean, a.hr...),
			VO2Max:      reduce(Mean, a.vo2...),
		}
		km, okKm := run.DistanceKm.Get()
		minutes, okMin := run.DurationMin.Get()
		if okKm && okMin && km > 0 {
			run.Pace = Some(minutes / km)
		}
		runs = append(runs, run)
	}
	return runs
}

// RunSession is the display summary of a running session.
type RunSession struct {
	Date, Distance, Pace, HeartRate, VO2 string
}

// LastRunningSession summarizes the most recent running event.
// Every field is the Placeholder when there is no running event.
func LastRunningSession(events []ActivityEvent) RunSession {
	var last *ActivityEvent
	for i := range events {
		e := &events[i]
		if !e.IsRunning() || e.Date.IsZero() {
			continue
		}
		// Among events of the same day, the later one in the input wins.
		if last == nil || !e.Date.Before(last.Date) {
			last = e
		}
	}
	if last == nil {
		return RunSession{Placeholder, Placeholder, Placeholder, Placeholder, Placeholder}
	}
	return RunSession{
		Date:      last.Date.String(),
		Distance:  NumFormat(last.DistanceKm, 2),
		Pace:      last.Pace.String(),
		HeartRate: NumFormat(last.AvgHR, 0),
		VO2:       NumFormat(last.VO2Max, 0),
	}
}

// RunningPeriodAveragePace returns the mean daily pace over a window.
// code is a window code such as "7D", "SEM", "MES", "TRIM" or "ANO".
// Unknown codes, 12M and TOTAL are missing.
func RunningPeriodAveragePace(runs []DailyRun, code string, today date.Date) Value {
	w, err := date.ParseWindow(code)
	if err != nil || w == date.Total || w == date.Trailing12M {
		return None()
	}
	r, ok := w.Range(today, date.Date{})
	if !ok {
		return None()
	}
	var paces []Value
	for _, run := range runs {
		if r.Contains(run.Date) {
			paces = append(paces, run.Pace)
		}
	}
	return reduce(Mean, paces...)
}

// LastRunningVO2 returns the VO2 max of the most recent day that has one.
func LastRunningVO2(runs []DailyRun) Value {
	var last DailyRun
	found := false
	for _, run := range runs {
		if !run.VO2Max.Ok() {
			continue
		}
		if !found || !run.Date.Before(last.Date) {
			last, found = run, true
		}
	}
	if !found {
		return None()
	}
	return last.VO2Max
}
