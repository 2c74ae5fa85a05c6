package booking

import (
	"fmt"
	"time"
)

const DayLayout = "2006-01-02"

// Calendar decides which days can be picked. Days are compared as calendar
// dates in Location, so today itself stays selectable for the whole day.
type Calendar struct {
	Now      func() time.Time
	Location *time.Location
}

func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{Now: time.Now, Location: loc}
}

// Day truncates t to midnight of its calendar date in the calendar's location.
func (c *Calendar) Day(t time.Time) time.Time {
	t = t.In(c.Location)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Location)
}

func (c *Calendar) Today() time.Time {
	return c.Day(c.Now())
}

func (c *Calendar) Disabled(day time.Time) bool {
	return c.Day(day).Before(c.Today())
}

// Select stores day on the session unless it is earlier than today.
func (c *Calendar) Select(s *Session, day time.Time) error {
	if c.Disabled(day) {
		return ErrDateInPast
	}
	s.SetDate(c.Day(day))
	return nil
}

func (c *Calendar) Deselect(s *Session) {
	s.ClearDate()
}

// ParseDay reads a YYYY-MM-DD date in the calendar's location.
func (c *Calendar) ParseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation(DayLayout, value, c.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", value, err)
	}
	return day, nil
}

type Day struct {
	Date     time.Time
	Today    bool
	Selected bool
	Disabled bool
}

// Month lays out every day of the given month. selected may be nil.
func (c *Calendar) Month(year int, month time.Month, selected *time.Time) []Day {
	today := c.Today()
	first := time.Date(year, month, 1, 0, 0, 0, 0, c.Location)

	var days []Day
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:     d,
			Today:    d.Equal(today),
			Selected: selected != nil && c.Day(*selected).Equal(d),
			Disabled: d.Before(today),
		})
	}
	return days
}
