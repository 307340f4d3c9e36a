package calendar

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrNegativeSpan is returned when a negative hour or day count is
	// passed to the arithmetic functions.
	ErrNegativeSpan = errors.New("business time span must be non-negative")
	// ErrInvalidRange is returned when the end of a range precedes its start.
	ErrInvalidRange = errors.New("range end must not precede start")
)

// AddBusinessHours advances start by the given number of business hours,
// counting only time inside the business window on business days. A start
// outside the window is first snapped forward to the next window open.
func (c *Calendar) AddBusinessHours(start time.Time, hours float64) (time.Time, error) {
	if hours < 0 {
		return time.Time{}, ErrNegativeSpan
	}

	cur := start
	if !c.IsBusinessDay(cur) {
		cur = c.nextBusinessDayOpen(cur)
	} else if !c.IsBusinessHour(cur) {
		if cur.Hour() < WindowOpenHour {
			cur = atHour(cur, WindowOpenHour)
		} else {
			cur = c.nextBusinessDayOpen(cur)
		}
	}

	remaining := hours
	for remaining > 0 {
		untilClose := float64(WindowCloseHour-cur.Hour()) - float64(cur.Minute())/60
		if remaining <= untilClose {
			minutes := math.Round(remaining * 60)
			cur = cur.Add(time.Duration(minutes) * time.Minute)
			remaining = 0
		} else {
			remaining -= untilClose
			cur = c.nextBusinessDayOpen(cur)
		}
	}
	return cur, nil
}

// AddBusinessDays advances start by whole business days, one day counting
// as the full business window (9 hours).
func (c *Calendar) AddBusinessDays(start time.Time, days float64) (time.Time, error) {
	if days < 0 {
		return time.Time{}, ErrNegativeSpan
	}
	return c.AddBusinessHours(start, days*WindowHours)
}

// BusinessHoursBetween measures the business hours elapsed between start and
// end by intersecting each business day's window with the range. The result
// may be fractional.
func (c *Calendar) BusinessHoursBetween(start, end time.Time) (float64, error) {
	if end.Before(start) {
		return 0, ErrInvalidRange
	}

	total := 0.0
	cur := start
	for cur.Before(end) {
		if c.IsBusinessDay(cur) {
			hour, minute := cur.Hour(), cur.Minute()
			if hour >= WindowCloseHour {
				cur = nextMidnight(cur)
				continue
			}
			if hour < WindowOpenHour {
				hour, minute = WindowOpenHour, 0
			}

			sliceStart := time.Date(cur.Year(), cur.Month(), cur.Day(), hour, minute, 0, 0, cur.Location())
			sliceEnd := atHour(cur, WindowCloseHour)
			if end.Before(sliceEnd) {
				sliceEnd = end
			}
			if sliceEnd.After(sliceStart) {
				total += sliceEnd.Sub(sliceStart).Hours()
			}
		}
		cur = nextMidnight(cur)
	}
	return total, nil
}

// nextBusinessDayOpen walks forward one calendar day at a time until it
// lands on a business day, returning that day's window open.
func (c *Calendar) nextBusinessDayOpen(t time.Time) time.Time {
	day := atHour(t.AddDate(0, 0, 1), WindowOpenHour)
	for !c.IsBusinessDay(day) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

func nextMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}
