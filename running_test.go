package hud

import (
	"testing"
)

func TestDailyRunAggregate(t *testing.T) {
	events := []ActivityEvent{
		{Date: day(1), Kind: "Running", DistanceKm: Some(5), DurationMin: Some(25), AvgHR: Some(150), VO2Max: Some(50)},
		{Date: day(1), Kind: "cycling", DistanceKm: Some(30), DurationMin: Some(60), AvgHR: Some(120)},
		{Date: day(1), Kind: "running", DistanceKm: Some(3), DurationMin: Some(19), AvgHR: Some(160), VO2Max: Some(52)},
		{Date: day(3), Kind: "running", DistanceKm: Some(0), DurationMin: Some(10)},
		{Date: day(2), Kind: "walking", DistanceKm: Some(2)},
	}
	runs := DailyRunAggregate(events)
	if len(runs) != 2 {
		t.Fatalf("DailyRunAggregate() returned %d days, want 2", len(runs))
	}

	zero, mixed := runs[0], runs[1]
	if zero.Date != day(3) || mixed.Date != day(1) {
		t.Errorf("DailyRunAggregate() dates = %v, %v want %v, %v", zero.Date, mixed.Date, day(3), day(1))
	}
	if zero.Pace.Ok() {
		t.Errorf("pace with zero distance = %v, want None", zero.Pace)
	}

	if mixed.DistanceKm != Some(8) {
		t.Errorf("distance = %v, want 8", mixed.DistanceKm)
	}
	if mixed.DurationMin != Some(44) {
		t.Errorf("duration = %v, want 44", mixed.DurationMin)
	}
	if mixed.Pace != Some(5.5) {
		t.Errorf("pace = %v, want 5.5", mixed.Pace)
	}
	if mixed.AvgHR != Some(155) || mixed.VO2Max != Some(51) {
		t.Errorf("heart rate, vo2 = %v, %v want 155, 51", mixed.AvgHR, mixed.VO2Max)
	}
}

func TestLastRunningSession(t *testing.T) {
	testCases := []struct {
		name   string
		events []ActivityEvent
		want   RunSession
	}{
		{"no activity", nil, RunSession{"-", "-", "-", "-", "-"}},
		{"no running", []ActivityEvent{{Date: day(1), Kind: "swimming"}}, RunSession{"-", "-", "-", "-", "-"}},
		{
			"numeric pace",
			[]ActivityEvent{
				{Date: day(1), Kind: "running", DistanceKm: Some(10.123), AvgHR: Some(151.4), VO2Max: Some(49.6), Pace: NumericPace(5.25)},
				{Date: day(5), Kind: "running", DistanceKm: Some(3)},
			},
			RunSession{"2025-08-20", "10.12", "5:15", "151", "50"},
		},
		{
			"text pace",
			[]ActivityEvent{{Date: day(0), Kind: "RUNNING", DistanceKm: Some(5), Pace: TextPace(" 5:42 ")}},
			RunSession{"2025-08-21", "5.00", "5:42", "-", "-"},
		},
		{
			"missing pace",
			[]ActivityEvent{{Date: day(0), Kind: "running", Pace: TextPace("nan")}},
			RunSession{"2025-08-21", "-", "-", "-", "-"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LastRunningSession(tc.events); got != tc.want {
				t.Errorf("LastRunningSession() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestRunningPeriodAveragePace(t *testing.T) {
	runs := []DailyRun{
		{Date: day(40), Pace: Some(7)},
		{Date: day(10), Pace: Some(6)},
		{Date: day(3), Pace: Some(5)},
		{Date: day(1), Pace: None()},
		{Date: day(0), Pace: Some(4)},
	}
	testCases := []struct {
		code string
		want Value
	}{
		{"7D", Some(4.5)},
		{"SEM", Some(4.5)},
		{"WTD", Some(4.5)},
		{"MES", Some(5)},
		{"TRIM", Some(5.5)},
		{"ANO", Some(5.5)},
		{"TOTAL", None()},
		{"XYZ", None()},
	}
	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			if got := RunningPeriodAveragePace(runs, tc.code, today); got != tc.want {
				t.Errorf("RunningPeriodAveragePace(%q) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
	if got := RunningPeriodAveragePace(nil, "7D", today); got.Ok() {
		t.Errorf("RunningPeriodAveragePace(no runs) = %v, want None", got)
	}
}

func TestLastRunningVO2(t *testing.T) {
	runs := []DailyRun{
		{Date: day(5), VO2Max: Some(48)},
		{Date: day(3), VO2Max: Some(49)},
		{Date: day(1)},
	}
	if got := LastRunningVO2(runs); got != Some(49) {
		t.Errorf("LastRunningVO2() = %v, want 49", got)
	}
	if got := LastRunningVO2(nil); got.Ok() {
		t.Errorf("LastRunningVO2(nil) = %v, want None", got)
	}

	// a day averaging 52 and 53 rounds half to even
	same := DailyRunAggregate([]ActivityEvent{
		{Date: day(0), Kind: Running, VO2Max: Some(52)},
		{Date: day(0), Kind: Running, VO2Max: Some(53)},
	})
	if got, want := NumFormat(LastRunningVO2(same), 0), "52"; got != want {
		t.Errorf("NumFormat(LastRunningVO2()) = %q, want %q", got, want)
	}
}
