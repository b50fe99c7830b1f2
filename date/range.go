package date

import "fmt"

// Range is a closed range of dates.
type Range struct{ From, To Date }

// Contains reports whether date is in r, boundaries included.
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// String formats r as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
