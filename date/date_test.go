package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestSub(t *testing.T) {
	testCases := []struct {
		name string
		d, x Date
		want int
	}{
		{"same day", New(2025, 3, 1), New(2025, 3, 1), 0},
		{"over february", New(2025, 3, 1), New(2025, 2, 27), 2},
		{"leap year", New(2024, 3, 1), New(2024, 2, 28), 2},
		{"backward", New(2025, 1, 1), New(2025, 1, 8), -7},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.Sub(tc.x); got != tc.want {
				t.Errorf("%v.Sub(%v) = %d, want %d", tc.d, tc.x, got, tc.want)
			}
		})
	}
}

func TestOf(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	// 01:30 UTC is still the previous evening in Brasília.
	utc := time.Date(2025, time.August, 22, 1, 30, 0, 0, time.UTC)
	if got, want := Of(utc.In(loc)), New(2025, time.August, 21); got != want {
		t.Errorf("Of(%v) = %v, want %v", utc.In(loc), got, want)
	}
	if got, want := Of(utc), New(2025, time.August, 22); got != want {
		t.Errorf("Of(%v) = %v, want %v", utc, got, want)
	}
}

func TestLocation(t *testing.T) {
	if _, err := time.LoadLocation(Zone); err != nil {
		t.Skipf("no timezone database: %v", err)
	}
	if got := Location().String(); got != Zone {
		t.Errorf("Location() = %q, want %q", got, Zone)
	}
	if Today().IsZero() {
		t.Errorf("Today() is zero")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-07-01", New(2025, 7, 1), false},
		{"2025-7-1", New(2025, 7, 1), false},
		{"01/07/2025", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
