package date

import (
	"fmt"
	"strings"
)

// Window identifies a right-anchored date window ending today.
type Window string

const (
	Rolling7      Window = "7D"    // the last 7 days, today included
	WeekToDate    Window = "WTD"   // since Monday
	MonthToDate   Window = "MTD"   // since the first of the month
	QuarterToDate Window = "QTD"   // since the first day of the quarter
	YearToDate    Window = "YTD"   // since January 1st
	Trailing12M   Window = "12M"   // the last 365 days
	Total         Window = "TOTAL" // since the first date of the dataset
)

// ParseWindow parses a window code. It is case-insensitive and also accepts
// the portuguese codes SEM, MES, TRIM and ANO.
func ParseWindow(code string) (Window, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "7D":
		return Rolling7, nil
	case "WTD", "SEM":
		return WeekToDate, nil
	case "MTD", "MES", "MÊS":
		return MonthToDate, nil
	case "QTD", "TRIM":
		return QuarterToDate, nil
	case "YTD", "ANO":
		return YearToDate, nil
	case "12M":
		return Trailing12M, nil
	case "TOTAL":
		return Total, nil
	default:
		return "", fmt.Errorf("unknown window %q", code)
	}
}

// Start returns the first day of the window ending on today.
//
// first is the earliest date of the dataset and is only used by Total.
// It returns false for an unknown window, or for Total when first is zero.
func (w Window) Start(today, first Date) (Date, bool) {
	switch w {
	case Rolling7:
		return today.Add(-6), true
	case WeekToDate:
		return today.StartOf(Weekly), true
	case MonthToDate:
		return today.StartOf(Monthly), true
	case QuarterToDate:
		return today.StartOf(Quarterly), true
	case YearToDate:
		return today.StartOf(Yearly), true
	case Trailing12M:
		return today.Add(-365), true
	case Total:
		if first.IsZero() {
			return Date{}, false
		}
		return first, true
	default:
		return Date{}, false
	}
}

// Range returns the closed range [start, today] of the window.
func (w Window) Range(today, first Date) (Range, bool) {
	start, ok := w.Start(today, first)
	if !ok {
		return Range{}, false
	}
	return Range{From: start, To: today}, true
}
