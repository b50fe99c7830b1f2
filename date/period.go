package date

// Period is a calendar period used to find the start of a window.
// Weeks start on Monday, quarters in January, April, July and October.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)
