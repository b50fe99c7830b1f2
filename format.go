package hud

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Placeholder is displayed for every missing or invalid value.
const Placeholder = "-"

// grouping renders integers with a dot as thousands separator, the brazilian way.
var grouping = money.NewFormatter(0, ",", ".", "", "1")

// HoursToHHMM formats a duration in decimal hours as HH:MM, rounded to the nearest minute.
//
//	HoursToHHMM(Some(7.25)) == "07:15"
func HoursToHHMM(v Value) string {
	x, ok := v.Get()
	if !ok {
		return Placeholder
	}
	minutes := int64(math.RoundToEven(x * 60))
	sign := ""
	if minutes < 0 {
		sign, minutes = "-", -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

// MinutesToMMSS formats a duration in decimal minutes as M:SS, rounded to the nearest second.
// Zero or negative durations are displayed as the placeholder.
//
//	MinutesToMMSS(Some(5.5)) == "5:30"
func MinutesToMMSS(v Value) string {
	x, ok := v.Get()
	if !ok || x <= 0 {
		return Placeholder
	}
	seconds := int64(math.RoundToEven(x * 60))
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// IntFormat rounds v to the nearest integer and groups thousands with a dot.
//
//	IntFormat(Some(12345)) == "12.345"
func IntFormat(v Value) string {
	x, ok := v.Get()
	if !ok || math.Abs(x) >= 1e18 {
		return Placeholder
	}
	return grouping.Format(int64(math.RoundToEven(x)))
}

// NumFormat formats v with a fixed number of decimals.
func NumFormat(v Value, decimals int) string {
	x, ok := v.Get()
	if !ok {
		return Placeholder
	}
	return decimal.NewFromFloat(x).StringFixedBank(int32(max(decimals, 0)))
}

// PctFormat formats a fraction as a signed percentage with two decimals.
//
//	PctFormat(Some(0.0123)) == "+1.23%"
func PctFormat(v Value) string {
	x, ok := v.Get()
	if !ok {
		return Placeholder
	}
	s := decimal.NewFromFloat(x).Shift(2).StringFixedBank(2)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s + "%"
}

// LevelFormat formats an instrument level with its decimals and unit suffix.
func LevelFormat(v Value, decimals int, suffix string) string {
	s := NumFormat(v, decimals)
	if s == Placeholder {
		return s
	}
	return s + suffix
}

// EnergyBar draws a 10 cells gauge of an energy percentage.
//
//	EnergyBar(72, true) == "[███████···]"
func EnergyBar(pct int, ok bool) string {
	if !ok {
		return "[..........]"
	}
	filled := int(math.RoundToEven(float64(pct) / 10))
	filled = min(max(filled, 0), 10)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", 10-filled) + "]"
}
