package sla

import (
	"testing"
	"time"

	"github.com/spec-kit/sla-engine/internal/domain"
)

func TestMetricsEmptyPopulation(t *testing.T) {
	engine := newTestEngine(time.Now())

	metrics := engine.Metrics(nil)

	if metrics.Total != 0 || metrics.OverdueCount != 0 {
		t.Errorf("expected zero counts, got %+v", metrics)
	}
	if metrics.ResponseMetRate != 0 || metrics.ResolutionMetRate != 0 || metrics.OverdueRate != 0 {
		t.Errorf("expected zero rates, got %+v", metrics)
	}
	if len(metrics.ByPriority) != 4 {
		t.Fatalf("expected all four priority buckets, got %d", len(metrics.ByPriority))
	}
	for priority, bucket := range metrics.ByPriority {
		if bucket.Total != 0 || bucket.ResponseMetRate != 0 || bucket.ResolutionMetRate != 0 {
			t.Errorf("%s bucket not zeroed: %+v", priority, bucket)
		}
	}
}

func TestMetricsAggregation(t *testing.T) {
	now := date(2025, time.June, 10, 12, 0)
	engine := newTestEngine(now)

	past := date(2025, time.June, 9, 10, 0)
	future := date(2025, time.June, 11, 10, 0)

	tickets := []domain.Ticket{
		// P1 assigned on time, resolved on time.
		{
			Priority:      domain.TicketPriorityP1,
			Status:        domain.TicketStatusResolved,
			AssignedAt:    ptr(past.Add(-2 * time.Hour)),
			ResolvedAt:    ptr(past.Add(-time.Hour)),
			ResponseDueAt: ptr(past),
			DueAt:         ptr(past),
		},
		// P1 assigned late, unresolved, past its resolution deadline.
		{
			Priority:      domain.TicketPriorityP1,
			Status:        domain.TicketStatusInProgress,
			AssignedAt:    ptr(past.Add(time.Hour)),
			ResponseDueAt: ptr(past),
			DueAt:         ptr(past),
		},
		// P2 unassigned and fresh: nothing evaluable, not overdue.
		{
			Priority:      domain.TicketPriorityP2,
			Status:        domain.TicketStatusOpen,
			ResponseDueAt: ptr(future),
			DueAt:         ptr(future),
		},
		// P3 canceled: counted in totals, never overdue.
		{
			Priority:      domain.TicketPriorityP3,
			Status:        domain.TicketStatusCanceled,
			ResponseDueAt: ptr(past),
			DueAt:         ptr(past),
		},
	}

	metrics := engine.Metrics(tickets)

	if metrics.Total != 4 {
		t.Errorf("total = %d, want 4", metrics.Total)
	}
	// Two tickets had evaluable response compliance, one met it.
	if metrics.ResponseMetCount != 1 {
		t.Errorf("response met count = %d, want 1", metrics.ResponseMetCount)
	}
	if metrics.ResponseMetRate != 50 {
		t.Errorf("response met rate = %v, want 50", metrics.ResponseMetRate)
	}
	// Only the resolved ticket had evaluable resolution compliance.
	if metrics.ResolutionMetCount != 1 {
		t.Errorf("resolution met count = %d, want 1", metrics.ResolutionMetCount)
	}
	if metrics.ResolutionMetRate != 100 {
		t.Errorf("resolution met rate = %v, want 100", metrics.ResolutionMetRate)
	}
	// Only the in-progress P1 is overdue.
	if metrics.OverdueCount != 1 {
		t.Errorf("overdue count = %d, want 1", metrics.OverdueCount)
	}
	if metrics.OverdueRate != 25 {
		t.Errorf("overdue rate = %v, want 25", metrics.OverdueRate)
	}

	p1 := metrics.ByPriority[domain.TicketPriorityP1]
	if p1.Total != 2 || p1.ResponseMetCount != 1 || p1.ResponseMetRate != 50 {
		t.Errorf("unexpected P1 bucket: %+v", p1)
	}
	if p1.ResolutionMetCount != 1 || p1.ResolutionMetRate != 100 {
		t.Errorf("unexpected P1 resolution bucket: %+v", p1)
	}
	p2 := metrics.ByPriority[domain.TicketPriorityP2]
	if p2.Total != 1 || p2.ResponseMetRate != 0 || p2.ResolutionMetRate != 0 {
		t.Errorf("unexpected P2 bucket: %+v", p2)
	}
	p4 := metrics.ByPriority[domain.TicketPriorityP4]
	if p4.Total != 0 {
		t.Errorf("unexpected P4 bucket: %+v", p4)
	}
}

func TestMetricsRatesRoundedToTwoDecimals(t *testing.T) {
	now := date(2025, time.June, 10, 12, 0)
	engine := newTestEngine(now)

	past := date(2025, time.June, 9, 10, 0)
	met := domain.Ticket{
		Priority:      domain.TicketPriorityP2,
		Status:        domain.TicketStatusInProgress,
		AssignedAt:    ptr(past.Add(-time.Hour)),
		ResponseDueAt: ptr(past),
		DueAt:         ptr(now.Add(time.Hour)),
	}
	missed := met
	missed.AssignedAt = ptr(past.Add(time.Hour))

	// One of three met: 33.333...% rounds to 33.33.
	metrics := engine.Metrics([]domain.Ticket{met, missed, missed})
	if metrics.ResponseMetRate != 33.33 {
		t.Errorf("response met rate = %v, want 33.33", metrics.ResponseMetRate)
	}

	// Two of three met: 66.666...% rounds to 66.67.
	metrics = engine.Metrics([]domain.Ticket{met, met, missed})
	if metrics.ResponseMetRate != 66.67 {
		t.Errorf("response met rate = %v, want 66.67", metrics.ResponseMetRate)
	}
}
