// Package clock supplies the current instant and the calendar facts the
// reset engine derives from it.
package clock

import "time"

// DayKeyLayout is the layout of a calendar-day identity.
const DayKeyLayout = "2006-01-02"

// Clock returns the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock and reports it in Location (time.Local when nil).
type System struct {
	Location *time.Location
}

func (c System) Now() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// Fixed always returns T. Tests move it forward by assigning T.
type Fixed struct {
	T time.Time
}

func (c *Fixed) Now() time.Time { return c.T }

// Advance moves the fixed clock forward by d.
func (c *Fixed) Advance(d time.Duration) { c.T = c.T.Add(d) }

// DayKey returns the calendar-day identity of t in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// StartOfWeek returns the most recent Sunday at 00:00:00 in t's location.
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

// MonthAfter reports whether (now.Year, now.Month) is strictly after
// (last.Year, last.Month), with last read in now's location.
func MonthAfter(now, last time.Time) bool {
	last = last.In(now.Location())
	if now.Year() != last.Year() {
		return now.Year() > last.Year()
	}
	return now.Month() > last.Month()
}

// LoadLocation resolves an IANA zone name. An empty name means time.Local.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
