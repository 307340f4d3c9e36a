package sla

import (
	"errors"
	"testing"

	"github.com/spec-kit/sla-engine/internal/domain"
)

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		priority          domain.TicketPriority
		responseMinutes   int
		resolutionMinutes int
		businessHoursOnly bool
	}{
		{domain.TicketPriorityP1, 15, 120, false},
		{domain.TicketPriorityP2, 60, 480, true},
		{domain.TicketPriorityP3, 240, 4320, true},
		{domain.TicketPriorityP4, 1440, 7200, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			policy, err := registry.Get(tt.priority)
			if err != nil {
				t.Fatalf("Get(%s) returned error: %v", tt.priority, err)
			}
			if policy.ResponseMinutes != tt.responseMinutes {
				t.Errorf("response minutes = %d, want %d", policy.ResponseMinutes, tt.responseMinutes)
			}
			if policy.ResolutionMinutes != tt.resolutionMinutes {
				t.Errorf("resolution minutes = %d, want %d", policy.ResolutionMinutes, tt.resolutionMinutes)
			}
			if policy.BusinessHoursOnly != tt.businessHoursOnly {
				t.Errorf("business hours only = %v, want %v", policy.BusinessHoursOnly, tt.businessHoursOnly)
			}
			if policy.ResponseMinutes > policy.ResolutionMinutes {
				t.Errorf("response budget %d exceeds resolution budget %d", policy.ResponseMinutes, policy.ResolutionMinutes)
			}
		})
	}
}

func TestRegistryGetUnknownPriority(t *testing.T) {
	registry := NewRegistry()

	if _, err := registry.Get("P9"); !errors.Is(err, ErrUnknownPriority) {
		t.Errorf("expected ErrUnknownPriority, got %v", err)
	}
	if _, err := registry.Get(""); !errors.Is(err, ErrUnknownPriority) {
		t.Errorf("expected ErrUnknownPriority for empty priority, got %v", err)
	}
}

func TestRegistryAllIsDefensiveCopy(t *testing.T) {
	registry := NewRegistry()

	all := registry.All()
	if len(all) != 4 {
		t.Fatalf("expected 4 policies, got %d", len(all))
	}

	all[domain.TicketPriorityP1] = Policy{Priority: domain.TicketPriorityP1, ResponseMinutes: 1}
	fresh, err := registry.Get(domain.TicketPriorityP1)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.ResponseMinutes != 15 {
		t.Error("mutating the copy leaked into the registry")
	}
}
