package calendar

import (
	"sort"
	"sync"
	"time"
)

// Business window bounds shared by every business day.
const (
	WindowOpenHour  = 9
	WindowCloseHour = 18
)

// WindowHours is the length of one business day in hours.
const WindowHours = WindowCloseHour - WindowOpenHour

const dateLayout = "2006-01-02"

// Calendar tracks holiday dates and answers business-day/time predicates.
// All timestamps are interpreted on a single canonical local clock; the
// calendar never converts between timezones.
type Calendar struct {
	mu       sync.RWMutex
	holidays map[string]struct{}
}

// New builds a calendar with the given holiday dates (YYYY-MM-DD).
func New(holidays ...string) *Calendar {
	set := make(map[string]struct{}, len(holidays))
	for _, d := range holidays {
		set[d] = struct{}{}
	}
	return &Calendar{holidays: set}
}

// NewWithDefaults builds a calendar seeded with the built-in national
// holiday dates for 2025 and 2026.
func NewWithDefaults(extra ...string) *Calendar {
	cal := New(defaultHolidays()...)
	for _, d := range extra {
		if _, err := time.Parse(dateLayout, d); err == nil {
			cal.holidays[d] = struct{}{}
		}
	}
	return cal
}

// IsHoliday reports whether the date (time-of-day ignored) is a holiday.
func (c *Calendar) IsHoliday(t time.Time) bool {
	key := t.Format(dateLayout)
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.holidays[key]
	return ok
}

// IsBusinessDay reports whether the date is Mon-Fri and not a holiday.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !c.IsHoliday(t)
}

// IsBusinessHour reports whether the clock hour falls inside the business
// window, independent of day-of-week.
func (c *Calendar) IsBusinessHour(t time.Time) bool {
	hour := t.Hour()
	return hour >= WindowOpenHour && hour < WindowCloseHour
}

// IsBusinessTime reports whether t is within the window on a business day.
func (c *Calendar) IsBusinessTime(t time.Time) bool {
	return c.IsBusinessDay(t) && c.IsBusinessHour(t)
}

// AddHoliday marks a date as a holiday. Adding the same date twice is a no-op.
func (c *Calendar) AddHoliday(date time.Time) {
	key := date.Format(dateLayout)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.holidays[key] = struct{}{}
}

// Holidays returns a sorted snapshot of all holiday dates as YYYY-MM-DD strings.
func (c *Calendar) Holidays() []string {
	c.mu.RLock()
	out := make([]string, 0, len(c.holidays))
	for d := range c.holidays {
		out = append(out, d)
	}
	c.mu.RUnlock()
	sort.Strings(out)
	return out
}
