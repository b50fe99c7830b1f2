package hud

import (
	"fmt"
	"math"
)

// Value is an optional float64.
//
// The zero Value is missing. NaN and infinite numbers are never present.
type Value struct {
	v  float64
	ok bool
}

// Some returns a present Value, unless x is NaN or infinite.
func Some(x float64) Value {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Value{}
	}
	return Value{v: x, ok: true}
}

// None returns a missing Value.
func None() Value { return Value{} }

// Get returns the number and whether it is present.
func (v Value) Get() (float64, bool) { return v.v, v.ok }

// Ok reports whether v is present.
func (v Value) Ok() bool { return v.ok }

// Or returns the number or def when missing.
func (v Value) Or(def float64) float64 {
	if !v.ok {
		return def
	}
	return v.v
}

// Mul scales a present value by k.
func (v Value) Mul(k float64) Value {
	if !v.ok {
		return v
	}
	return Some(v.v * k)
}

func (v Value) String() string {
	if !v.ok {
		return "None"
	}
	return fmt.Sprint(v.v)
}

// Mode is the reduction applied to the values of a window.
type Mode int

const (
	Mean Mode = iota
	Sum
)

// reduce folds the present values with the given mode. It returns None when
// no value is present.
func reduce(mode Mode, values ...Value) Value {
	var sum float64
	var n int
	for _, v := range values {
		if x, ok := v.Get(); ok {
			sum += x
			n++
		}
	}
	if n == 0 {
		return None()
	}
	if mode == Sum {
		return Some(sum)
	}
	return Some(sum / float64(n))
}
