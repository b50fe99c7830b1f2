package hud

import (
	"github.com/etnz/hud/date"
)

// Series is a daily price series.
type Series = date.History[float64]

// ReturnPeriod names an entry of a ReturnSet.
type ReturnPeriod string

const (
	D1  ReturnPeriod = "D1"
	WTD ReturnPeriod = "WTD"
	MTD ReturnPeriod = "MTD"
	QTD ReturnPeriod = "QTD"
	YTD ReturnPeriod = "YTD"
	Y1  ReturnPeriod = "12M"
)

// ReturnPeriods lists the periods of a ReturnSet in display order.
var ReturnPeriods = []ReturnPeriod{D1, WTD, MTD, QTD, YTD, Y1}

// ReturnSet holds the fractional returns of an instrument, 0.0123 being +1.23%.
type ReturnSet map[ReturnPeriod]Value

// Get returns the return of period p, missing when absent.
func (s ReturnSet) Get(p ReturnPeriod) Value { return s[p] }

// lastTwo returns the two most recent valid prices.
func lastTwo(series *Series) (last, prev Value) {
	if series == nil {
		return None(), None()
	}
	for _, x := range series.Backward() {
		v := Some(x)
		if !v.Ok() {
			continue
		}
		if !last.Ok() {
			last = v
			continue
		}
		return last, v
	}
	return last, None()
}

// firstOnOrAfter returns the earliest valid price on or after day.
func firstOnOrAfter(series *Series, day date.Date) Value {
	if series == nil {
		return None()
	}
	for _, x := range series.Since(day) {
		if v := Some(x); v.Ok() {
			return v
		}
	}
	return None()
}

// ratio returns a/b - 1, missing when b is zero.
func ratio(a, b Value) Value {
	x, okA := a.Get()
	y, okB := b.Get()
	if !okA || !okB || y == 0 {
		return None()
	}
	return Some(x/y - 1)
}

// PeriodReturn returns the return from the first valid price on or after start
// to the last valid price.
func PeriodReturn(series *Series, start date.Date) Value {
	last, _ := lastTwo(series)
	return ratio(last, firstOnOrAfter(series, start))
}

// DayOverDayReturn returns the return between the last two valid prices.
func DayOverDayReturn(series *Series) Value {
	return ratio(lastTwo(series))
}

// ComputeReturnSet computes every ReturnPeriods of series, anchored on today.
func ComputeReturnSet(series *Series, today date.Date) ReturnSet {
	set := ReturnSet{D1: DayOverDayReturn(series)}
	for p, w := range map[ReturnPeriod]date.Window{
		WTD: date.WeekToDate,
		MTD: date.MonthToDate,
		QTD: date.QuarterToDate,
		YTD: date.YearToDate,
		Y1:  date.Trailing12M,
	} {
		start, _ := w.Start(today, date.Date{})
		set[p] = PeriodReturn(series, start)
	}
	return set
}

// Instrument is a market quote displayed on the dashboard.
type Instrument struct {
	Key      string  // dashboard key, like "SPX"
	Symbol   string  // provider symbol, like "^GSPC"
	Fallback string  // symbol used when Symbol has no data
	Scale    float64 // level multiplier, 0 means 1
	Decimals int     // level decimals
	Suffix   string  // level unit
	HasLevel bool    // whether the level is displayed
}

// Level returns the last valid price, adjusted by the instrument scale.
func (in Instrument) Level(series *Series) Value {
	last, _ := lastTwo(series)
	if in.Scale == 0 {
		return last
	}
	return last.Mul(in.Scale)
}

// FormatLevel returns the displayed level.
func (in Instrument) FormatLevel(series *Series) string {
	return LevelFormat(in.Level(series), in.Decimals, in.Suffix)
}

// DefaultInstruments returns the instruments of the dashboard.
// WIN and WDO futures are only added when their symbol is known.
func DefaultInstruments(winSymbol, wdoSymbol string) []Instrument {
	instruments := []Instrument{
		{Key: "SPX", Symbol: "^GSPC", Decimals: 2},
		{Key: "IBOV", Symbol: "^BVSP", Decimals: 0},
		{Key: "VIX", Symbol: "^VIX", Decimals: 2, HasLevel: true},
		{Key: "US10Y", Symbol: "^TNX", Scale: 0.1, Decimals: 2, Suffix: "%", HasLevel: true}, // quoted in tenths of percent
		{Key: "DXY", Symbol: "DX-Y.NYB", Fallback: "^DXY", Decimals: 2, HasLevel: true},
		{Key: "USDBRL", Symbol: "BRL=X", Decimals: 4, HasLevel: true},
		{Key: "BRENT", Symbol: "BZ=F", Decimals: 2, HasLevel: true},
		{Key: "GOLD", Symbol: "GC=F", Decimals: 2, HasLevel: true},
	}
	if winSymbol != "" {
		instruments = append(instruments, Instrument{Key: "WIN", Symbol: winSymbol, Decimals: 0})
	}
	if wdoSymbol != "" {
		instruments = append(instruments, Instrument{Key: "WDO", Symbol: wdoSymbol, Decimals: 2})
	}
	return instruments
}
