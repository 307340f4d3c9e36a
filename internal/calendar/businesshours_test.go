package calendar

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestAddBusinessHours(t *testing.T) {
	cal := NewWithDefaults()

	tests := []struct {
		name  string
		start time.Time
		hours float64
		want  time.Time
	}{
		{
			name:  "within the same day",
			start: date(2025, time.June, 2, 10, 0), // Monday
			hours: 4,
			want:  date(2025, time.June, 2, 14, 0),
		},
		{
			name:  "carries into next day",
			start: date(2025, time.June, 2, 17, 0), // Monday 17:00, 1h left
			hours: 2,
			want:  date(2025, time.June, 3, 10, 0),
		},
		{
			name:  "skips the weekend",
			start: date(2025, time.June, 6, 17, 0), // Friday
			hours: 2,
			want:  date(2025, time.June, 9, 10, 0), // Monday
		},
		{
			name:  "zero hours inside window returns start unchanged",
			start: date(2025, time.June, 2, 10, 30),
			hours: 0,
			want:  date(2025, time.June, 2, 10, 30),
		},
		{
			name:  "zero hours before open snaps to window open",
			start: date(2025, time.June, 2, 7, 15),
			hours: 0,
			want:  date(2025, time.June, 2, 9, 0),
		},
		{
			name:  "zero hours after close snaps to next day open",
			start: date(2025, time.June, 2, 18, 0),
			hours: 0,
			want:  date(2025, time.June, 3, 9, 0),
		},
		{
			name:  "weekend start snaps to monday open",
			start: date(2025, time.June, 7, 12, 0), // Saturday
			hours: 1,
			want:  date(2025, time.June, 9, 10, 0),
		},
		{
			name:  "holiday start snaps past the holiday",
			start: date(2025, time.January, 1, 10, 0), // New Year
			hours: 1,
			want:  date(2025, time.January, 2, 10, 0),
		},
		{
			name:  "fractional hours round to the nearest minute",
			start: date(2025, time.June, 2, 9, 0),
			hours: 1.5,
			want:  date(2025, time.June, 2, 10, 30),
		},
		{
			name:  "multi-day budget lands at close of third day",
			start: date(2025, time.June, 2, 9, 0),
			hours: 27, // three full business days
			want:  date(2025, time.June, 4, 18, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.AddBusinessHours(tt.start, tt.hours)
			if err != nil {
				t.Fatalf("AddBusinessHours returned error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("AddBusinessHours(%v, %v) = %v, want %v", tt.start, tt.hours, got, tt.want)
			}
		})
	}
}

func TestAddBusinessHoursRejectsNegative(t *testing.T) {
	cal := New()
	if _, err := cal.AddBusinessHours(date(2025, time.June, 2, 10, 0), -1); !errors.Is(err, ErrNegativeSpan) {
		t.Errorf("expected ErrNegativeSpan, got %v", err)
	}
}

func TestAddBusinessHoursMonotonic(t *testing.T) {
	cal := NewWithDefaults()
	start := date(2025, time.June, 2, 11, 0)

	prev, err := cal.AddBusinessHours(start, 0)
	if err != nil {
		t.Fatal(err)
	}
	for h := 1.0; h <= 40; h++ {
		next, err := cal.AddBusinessHours(start, h)
		if err != nil {
			t.Fatal(err)
		}
		if !next.After(prev) {
			t.Fatalf("AddBusinessHours not monotonic at %v hours: %v !> %v", h, next, prev)
		}
		prev = next
	}
}

func TestAddBusinessDays(t *testing.T) {
	cal := NewWithDefaults()
	start := date(2025, time.June, 2, 9, 0)

	got, err := cal.AddBusinessDays(start, 3)
	if err != nil {
		t.Fatal(err)
	}
	viaHours, err := cal.AddBusinessHours(start, 3*WindowHours)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(viaHours) {
		t.Errorf("AddBusinessDays(3) = %v, want same as AddBusinessHours(27) = %v", got, viaHours)
	}

	if _, err := cal.AddBusinessDays(start, -1); !errors.Is(err, ErrNegativeSpan) {
		t.Errorf("expected ErrNegativeSpan, got %v", err)
	}
}

func TestBusinessHoursBetween(t *testing.T) {
	cal := NewWithDefaults()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{
			name:  "full monday plus tuesday morning",
			start: date(2025, time.June, 2, 9, 0),
			end:   date(2025, time.June, 3, 12, 0),
			want:  12,
		},
		{
			name:  "same-day partial",
			start: date(2025, time.June, 2, 10, 0),
			end:   date(2025, time.June, 2, 14, 30),
			want:  4.5,
		},
		{
			name:  "weekend contributes nothing",
			start: date(2025, time.June, 6, 17, 0), // Friday
			end:   date(2025, time.June, 9, 10, 0), // Monday
			want:  2,
		},
		{
			name:  "out-of-window portions excluded",
			start: date(2025, time.June, 2, 6, 0),
			end:   date(2025, time.June, 2, 20, 0),
			want:  9,
		},
		{
			name:  "holiday contributes nothing",
			start: date(2024, time.December, 31, 9, 0),
			end:   date(2025, time.January, 2, 18, 0),
			want:  18, // Dec 31 and Jan 2; Jan 1 is a holiday
		},
		{
			name:  "zero-length range",
			start: date(2025, time.June, 2, 10, 0),
			end:   date(2025, time.June, 2, 10, 0),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.BusinessHoursBetween(tt.start, tt.end)
			if err != nil {
				t.Fatalf("BusinessHoursBetween returned error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BusinessHoursBetween(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestBusinessHoursBetweenRejectsReversedRange(t *testing.T) {
	cal := New()
	start := date(2025, time.June, 2, 9, 0)
	end := date(2025, time.June, 3, 9, 0)

	if _, err := cal.BusinessHoursBetween(end, start); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestAddThenMeasureRoundTrip(t *testing.T) {
	cal := NewWithDefaults()
	start := date(2025, time.June, 2, 9, 30)

	for _, hours := range []float64{0.5, 1, 4, 8.5, 9, 13, 22.25} {
		end, err := cal.AddBusinessHours(start, hours)
		if err != nil {
			t.Fatal(err)
		}
		measured, err := cal.BusinessHoursBetween(start, end)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(measured-hours) > 1.0/60+1e-9 {
			t.Errorf("round-trip mismatch for %v hours: measured %v", hours, measured)
		}
	}
}
