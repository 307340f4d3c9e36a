package sla

import (
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/sla-engine/internal/calendar"
	"github.com/spec-kit/sla-engine/internal/domain"
)

func date(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func newTestEngine(now time.Time) *Engine {
	engine := NewEngine(calendar.NewWithDefaults(), NewRegistry())
	engine.now = func() time.Time { return now }
	return engine
}

func ptr[T any](v T) *T { return &v }

func TestCalculateDueDatesWallClockForP1(t *testing.T) {
	engine := newTestEngine(time.Now())

	// Friday evening; P1 ignores the weekend entirely.
	createdAt := date(2025, time.June, 6, 23, 50)
	dates, err := engine.CalculateDueDates(domain.TicketPriorityP1, createdAt)
	if err != nil {
		t.Fatal(err)
	}

	if want := createdAt.Add(15 * time.Minute); !dates.ResponseDueAt.Equal(want) {
		t.Errorf("response due = %v, want %v", dates.ResponseDueAt, want)
	}
	if want := createdAt.Add(120 * time.Minute); !dates.DueAt.Equal(want) {
		t.Errorf("due = %v, want %v", dates.DueAt, want)
	}
}

func TestCalculateDueDatesBusinessHoursForP2(t *testing.T) {
	engine := newTestEngine(time.Now())

	// Monday 16:00: one business hour fits the same day, eight spill into Tuesday.
	createdAt := date(2025, time.June, 2, 16, 0)
	dates, err := engine.CalculateDueDates(domain.TicketPriorityP2, createdAt)
	if err != nil {
		t.Fatal(err)
	}

	if want := date(2025, time.June, 2, 17, 0); !dates.ResponseDueAt.Equal(want) {
		t.Errorf("response due = %v, want %v", dates.ResponseDueAt, want)
	}
	// 8h budget: 2h left Monday, 6h on Tuesday from 09:00.
	if want := date(2025, time.June, 3, 15, 0); !dates.DueAt.Equal(want) {
		t.Errorf("due = %v, want %v", dates.DueAt, want)
	}
}

func TestCalculateDueDatesResponseNeverAfterResolution(t *testing.T) {
	engine := newTestEngine(time.Now())

	starts := []time.Time{
		date(2025, time.June, 2, 10, 0),
		date(2025, time.June, 6, 17, 45),
		date(2025, time.June, 7, 3, 0),
		date(2024, time.December, 31, 23, 0),
	}
	for _, createdAt := range starts {
		for _, priority := range domain.Priorities() {
			dates, err := engine.CalculateDueDates(priority, createdAt)
			if err != nil {
				t.Fatal(err)
			}
			if dates.ResponseDueAt.After(dates.DueAt) {
				t.Errorf("%s from %v: response due %v after due %v", priority, createdAt, dates.ResponseDueAt, dates.DueAt)
			}
		}
	}
}

func TestCalculateDueDatesUnknownPriority(t *testing.T) {
	engine := newTestEngine(time.Now())

	if _, err := engine.CalculateDueDates("CRITICAL", date(2025, time.June, 2, 10, 0)); !errors.Is(err, ErrUnknownPriority) {
		t.Errorf("expected ErrUnknownPriority, got %v", err)
	}
}

func TestIsOverdue(t *testing.T) {
	now := date(2025, time.June, 10, 12, 0)
	engine := newTestEngine(now)

	past := date(2025, time.June, 9, 12, 0)
	future := date(2025, time.June, 11, 12, 0)

	tests := []struct {
		name   string
		ticket domain.Ticket
		want   bool
	}{
		{
			name: "closed ticket never overdue",
			ticket: domain.Ticket{
				Status: domain.TicketStatusClosed,
				DueAt:  ptr(past),
			},
			want: false,
		},
		{
			name: "canceled ticket never overdue",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusCanceled,
				ResponseDueAt: ptr(past),
				DueAt:         ptr(past),
			},
			want: false,
		},
		{
			name: "resolved without assignment past response due",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusResolved,
				ResponseDueAt: ptr(past),
				DueAt:         ptr(past),
			},
			want: true,
		},
		{
			name: "resolved late but assigned is not overdue",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusResolved,
				AssignedAt:    ptr(past),
				ResponseDueAt: ptr(past),
				DueAt:         ptr(past),
			},
			want: false,
		},
		{
			name: "resolved unassigned with response due in the future",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusResolved,
				ResponseDueAt: ptr(future),
			},
			want: false,
		},
		{
			name: "open unassigned past response due",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusOpen,
				ResponseDueAt: ptr(past),
				DueAt:         ptr(future),
			},
			want: true,
		},
		{
			name: "open assigned past response due but within due",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusOpen,
				AssignedAt:    ptr(past),
				ResponseDueAt: ptr(past),
				DueAt:         ptr(future),
			},
			want: false,
		},
		{
			name: "in progress past resolution due",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusInProgress,
				AssignedAt:    ptr(past),
				ResponseDueAt: ptr(future),
				DueAt:         ptr(past),
			},
			want: true,
		},
		{
			name: "pending user with no deadlines set",
			ticket: domain.Ticket{
				Status: domain.TicketStatusPendingUser,
			},
			want: false,
		},
		{
			name: "open with everything in the future",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusOpen,
				ResponseDueAt: ptr(future),
				DueAt:         ptr(future),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.IsOverdue(&tt.ticket); got != tt.want {
				t.Errorf("IsOverdue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	now := date(2025, time.June, 10, 12, 0)
	engine := newTestEngine(now)

	responseDue := date(2025, time.June, 9, 10, 0)
	due := date(2025, time.June, 9, 18, 0)

	tests := []struct {
		name           string
		ticket         domain.Ticket
		wantResponse   Compliance
		wantResolution Compliance
	}{
		{
			name: "nothing evaluable yet",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusOpen,
				ResponseDueAt: ptr(now.Add(time.Hour)),
				DueAt:         ptr(now.Add(2 * time.Hour)),
			},
			wantResponse:   ComplianceUnknown,
			wantResolution: ComplianceUnknown,
		},
		{
			name: "assigned on time, not resolved",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusInProgress,
				AssignedAt:    ptr(responseDue.Add(-30 * time.Minute)),
				ResponseDueAt: ptr(responseDue),
				DueAt:         ptr(due),
			},
			wantResponse:   ComplianceMet,
			wantResolution: ComplianceUnknown,
		},
		{
			name: "assigned exactly at the deadline counts as met",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusInProgress,
				AssignedAt:    ptr(responseDue),
				ResponseDueAt: ptr(responseDue),
				DueAt:         ptr(due),
			},
			wantResponse:   ComplianceMet,
			wantResolution: ComplianceUnknown,
		},
		{
			name: "assigned late, resolved on time",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusResolved,
				AssignedAt:    ptr(responseDue.Add(time.Hour)),
				ResolvedAt:    ptr(due.Add(-time.Hour)),
				ResponseDueAt: ptr(responseDue),
				DueAt:         ptr(due),
			},
			wantResponse:   ComplianceMissed,
			wantResolution: ComplianceMet,
		},
		{
			name: "resolved late",
			ticket: domain.Ticket{
				Status:        domain.TicketStatusResolved,
				AssignedAt:    ptr(responseDue.Add(-time.Hour)),
				ResolvedAt:    ptr(due.Add(time.Hour)),
				ResponseDueAt: ptr(responseDue),
				DueAt:         ptr(due),
			},
			wantResponse:   ComplianceMet,
			wantResolution: ComplianceMissed,
		},
		{
			name: "assigned but no response deadline stays unknown",
			ticket: domain.Ticket{
				Status:     domain.TicketStatusInProgress,
				AssignedAt: ptr(now),
			},
			wantResponse:   ComplianceUnknown,
			wantResolution: ComplianceUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := engine.Status(&tt.ticket)
			if status.ResponseMet != tt.wantResponse {
				t.Errorf("response = %s, want %s", status.ResponseMet, tt.wantResponse)
			}
			if status.ResolutionMet != tt.wantResolution {
				t.Errorf("resolution = %s, want %s", status.ResolutionMet, tt.wantResolution)
			}
			if want := engine.IsOverdue(&tt.ticket); status.Overdue != want {
				t.Errorf("overdue = %v, want %v", status.Overdue, want)
			}
		})
	}
}
