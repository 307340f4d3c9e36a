package sla

import (
	"errors"
	"fmt"

	"github.com/spec-kit/sla-engine/internal/domain"
)

// ErrUnknownPriority is returned when a priority outside P1..P4 is looked up.
// It signals a schema mismatch between the caller and the registry and is
// not recoverable by defaulting.
var ErrUnknownPriority = errors.New("unknown priority")

// Policy defines the response/resolution budgets for one priority.
type Policy struct {
	Priority          domain.TicketPriority `json:"priority"`
	ResponseMinutes   int                   `json:"response_minutes"`
	ResolutionMinutes int                   `json:"resolution_minutes"`
	BusinessHoursOnly bool                  `json:"business_hours_only"`
}

// Registry holds the fixed priority to policy mapping. Policies are not
// editable at runtime.
type Registry struct {
	policies map[domain.TicketPriority]Policy
}

// NewRegistry builds the registry with the standard four policies:
// P1 responds in 15 minutes and resolves in 2 hours around the clock;
// P2-P4 are scoped to business hours.
func NewRegistry() *Registry {
	return &Registry{policies: map[domain.TicketPriority]Policy{
		domain.TicketPriorityP1: {
			Priority:          domain.TicketPriorityP1,
			ResponseMinutes:   15,
			ResolutionMinutes: 120,
			BusinessHoursOnly: false,
		},
		domain.TicketPriorityP2: {
			Priority:          domain.TicketPriorityP2,
			ResponseMinutes:   60,
			ResolutionMinutes: 480,
			BusinessHoursOnly: true,
		},
		domain.TicketPriorityP3: {
			Priority:          domain.TicketPriorityP3,
			ResponseMinutes:   240,
			ResolutionMinutes: 4320,
			BusinessHoursOnly: true,
		},
		domain.TicketPriorityP4: {
			Priority:          domain.TicketPriorityP4,
			ResponseMinutes:   1440,
			ResolutionMinutes: 7200,
			BusinessHoursOnly: true,
		},
	}}
}

// Get returns the policy for a priority.
func (r *Registry) Get(priority domain.TicketPriority) (Policy, error) {
	policy, ok := r.policies[priority]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %s", ErrUnknownPriority, priority)
	}
	return policy, nil
}

// All returns a defensive copy of the registry keyed by priority.
func (r *Registry) All() map[domain.TicketPriority]Policy {
	out := make(map[domain.TicketPriority]Policy, len(r.policies))
	for priority, policy := range r.policies {
		out[priority] = policy
	}
	return out
}
