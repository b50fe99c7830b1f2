package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[0], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[1], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[0], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[1], v2)
	}

}

func TestAppend_LastWins(t *testing.T) {
	h := new(History[float64])
	d := New(2025, 7, 1)
	h.Append(d, 1).Append(d, 2)
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	for on, v := range h.Since(d) {
		if on != d || v != 2 {
			t.Errorf("Since(%v) yields %v, %v want %v, 2", d, on, v, d)
		}
	}
}

func TestSince(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2025, 7, 1), 1).Append(New(2025, 7, 3), 3).Append(New(2025, 7, 5), 5)

	var got []float64
	for _, v := range h.Since(New(2025, 7, 2)) {
		got = append(got, v)
	}
	if len(got) != 2 || got[0] != 3 || got[1] != 5 {
		t.Errorf("Since(2025-07-02) = %v, want [3 5]", got)
	}

	got = got[:0]
	for _, v := range h.Backward() {
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 5 || got[2] != 1 {
		t.Errorf("Backward() = %v, want [5 3 1]", got)
	}
}
