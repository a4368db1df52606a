package archive

import "time"

// PreviousMonth returns the closed [start, end] interval covering the
// calendar month before ref. start is the first instant of day 1 of that
// month; end is one microsecond before the first instant of ref's month.
// Both bounds carry ref's location, so callers choose the comparison
// domain (UTC for remote stores, local for filesystem times) by the
// location they hand in.
func PreviousMonth(ref time.Time) (start, end time.Time) {
	firstOfCurrent := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start = firstOfCurrent.AddDate(0, -1, 0)
	end = firstOfCurrent.Add(-time.Microsecond)
	return start, end
}

// Rebase re-labels t's wall-clock date as midnight in loc without
// converting the instant. The reference date stays the date the caller
// named regardless of which zone selection runs in.
func Rebase(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
