package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen        TicketStatus = "OPEN"
	TicketStatusInProgress  TicketStatus = "IN_PROGRESS"
	TicketStatusPendingUser TicketStatus = "PENDING_USER"
	TicketStatusResolved    TicketStatus = "RESOLVED"
	TicketStatusClosed      TicketStatus = "CLOSED"
	TicketStatusCanceled    TicketStatus = "CANCELED"
)

// IsTerminal reports whether the status excludes a ticket from overdue checks.
func (s TicketStatus) IsTerminal() bool {
	return s == TicketStatusClosed || s == TicketStatusCanceled
}

// TicketPriority enumerates SLA urgency levels.
type TicketPriority string

const (
	TicketPriorityP1 TicketPriority = "P1"
	TicketPriorityP2 TicketPriority = "P2"
	TicketPriorityP3 TicketPriority = "P3"
	TicketPriorityP4 TicketPriority = "P4"
)

// Priorities lists the defined priorities in severity order.
func Priorities() []TicketPriority {
	return []TicketPriority{TicketPriorityP1, TicketPriorityP2, TicketPriorityP3, TicketPriorityP4}
}

// ValidPriority reports whether p is one of the defined P1..P4 levels.
func ValidPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityP1, TicketPriorityP2, TicketPriorityP3, TicketPriorityP4:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests. The SLA engine reads priority,
// status and the timestamp fields; the rest is carried for the API surface.
type Ticket struct {
	ID            string
	ExternalKey   string
	RequesterID   string
	AssigneeID    *string
	Title         string
	Description   string
	Status        TicketStatus
	Priority      TicketPriority
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AssignedAt    *time.Time
	ResolvedAt    *time.Time
	ClosedAt      *time.Time
	ResponseDueAt *time.Time
	DueAt         *time.Time
}
