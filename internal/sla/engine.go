package sla

import (
	"time"

	"github.com/spec-kit/sla-engine/internal/calendar"
	"github.com/spec-kit/sla-engine/internal/domain"
)

// Compliance is the tri-state outcome of an SLA check.
type Compliance string

const (
	ComplianceUnknown Compliance = "UNKNOWN"
	ComplianceMet     Compliance = "MET"
	ComplianceMissed  Compliance = "MISSED"
)

// DueDates holds the deadlines computed for one ticket.
type DueDates struct {
	ResponseDueAt time.Time
	DueAt         time.Time
}

// Status is the computed compliance view of a single ticket.
type Status struct {
	ResponseMet   Compliance `json:"response_met_sla"`
	ResolutionMet Compliance `json:"resolution_met_sla"`
	Overdue       bool       `json:"is_overdue"`
}

// Engine computes due dates, per-ticket compliance and fleet metrics against
// a business calendar and the fixed policy registry.
type Engine struct {
	calendar *calendar.Calendar
	policies *Registry
	now      func() time.Time
}

// NewEngine constructs the engine.
func NewEngine(cal *calendar.Calendar, policies *Registry) *Engine {
	return &Engine{calendar: cal, policies: policies, now: time.Now}
}

// Policies exposes the read-only policy registry.
func (e *Engine) Policies() *Registry {
	return e.policies
}

// Calendar exposes the business calendar backing the engine.
func (e *Engine) Calendar() *calendar.Calendar {
	return e.calendar
}

// CalculateDueDates derives the response and resolution deadlines for a
// ticket created at createdAt. Business-hours policies consume only window
// time; 24x7 policies add wall-clock minutes. The result reflects the
// holiday set at call time and is never recomputed afterwards.
func (e *Engine) CalculateDueDates(priority domain.TicketPriority, createdAt time.Time) (DueDates, error) {
	policy, err := e.policies.Get(priority)
	if err != nil {
		return DueDates{}, err
	}

	if !policy.BusinessHoursOnly {
		return DueDates{
			ResponseDueAt: createdAt.Add(time.Duration(policy.ResponseMinutes) * time.Minute),
			DueAt:         createdAt.Add(time.Duration(policy.ResolutionMinutes) * time.Minute),
		}, nil
	}

	responseDue, err := e.calendar.AddBusinessHours(createdAt, float64(policy.ResponseMinutes)/60)
	if err != nil {
		return DueDates{}, err
	}
	due, err := e.calendar.AddBusinessHours(createdAt, float64(policy.ResolutionMinutes)/60)
	if err != nil {
		return DueDates{}, err
	}
	return DueDates{ResponseDueAt: responseDue, DueAt: due}, nil
}

// IsOverdue reports whether the ticket is currently past one of its
// deadlines. Closed and canceled tickets never count. A resolved ticket
// counts only when it was never assigned and missed its response deadline;
// having resolved, its resolution deadline carries no further risk.
func (e *Engine) IsOverdue(ticket *domain.Ticket) bool {
	now := e.now()

	if ticket.Status.IsTerminal() {
		return false
	}

	if ticket.Status == domain.TicketStatusResolved {
		return ticket.AssignedAt == nil &&
			ticket.ResponseDueAt != nil &&
			now.After(*ticket.ResponseDueAt)
	}

	if ticket.AssignedAt == nil && ticket.ResponseDueAt != nil && now.After(*ticket.ResponseDueAt) {
		return true
	}
	if ticket.DueAt != nil && now.After(*ticket.DueAt) {
		return true
	}
	return false
}

// Status evaluates the compliance flags for one ticket. Response compliance
// stays UNKNOWN until the ticket is assigned, resolution compliance until it
// is resolved.
func (e *Engine) Status(ticket *domain.Ticket) Status {
	status := Status{
		ResponseMet:   ComplianceUnknown,
		ResolutionMet: ComplianceUnknown,
	}

	if ticket.AssignedAt != nil && ticket.ResponseDueAt != nil {
		if !ticket.AssignedAt.After(*ticket.ResponseDueAt) {
			status.ResponseMet = ComplianceMet
		} else {
			status.ResponseMet = ComplianceMissed
		}
	}
	if ticket.ResolvedAt != nil && ticket.DueAt != nil {
		if !ticket.ResolvedAt.After(*ticket.DueAt) {
			status.ResolutionMet = ComplianceMet
		} else {
			status.ResolutionMet = ComplianceMissed
		}
	}

	status.Overdue = e.IsOverdue(ticket)
	return status
}
