package events

import (
	"time"

	"github.com/spec-kit/sla-engine/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated         EventType = "ticket_created"
	EventTicketAssigned        EventType = "ticket_assigned"
	EventTicketStatusChanged   EventType = "ticket_status_changed"
	EventTicketPriorityChanged EventType = "ticket_priority_changed"
	EventSLABreached           EventType = "sla_breached"
	EventHolidayAdded          EventType = "holiday_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id,omitempty"`
	ActorID   *string     `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Priority      domain.TicketPriority `json:"priority"`
	Title         string                `json:"title"`
	ResponseDueAt time.Time             `json:"response_due_at"`
	DueAt         time.Time             `json:"due_at"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AssigneeID string    `json:"assignee_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
	Comment   string              `json:"comment,omitempty"`
}

// TicketPriorityChangedPayload payload. Due dates are replaced wholesale
// whenever the priority changes.
type TicketPriorityChangedPayload struct {
	OldPriority   domain.TicketPriority `json:"old_priority"`
	NewPriority   domain.TicketPriority `json:"new_priority"`
	ResponseDueAt time.Time             `json:"response_due_at"`
	DueAt         time.Time             `json:"due_at"`
}

// SLABreachedPayload payload.
type SLABreachedPayload struct {
	Priority      domain.TicketPriority `json:"priority"`
	Status        domain.TicketStatus   `json:"status"`
	ResponseDueAt *time.Time            `json:"response_due_at,omitempty"`
	DueAt         *time.Time            `json:"due_at,omitempty"`
}

// HolidayAddedPayload payload.
type HolidayAddedPayload struct {
	Date string `json:"date"`
}
