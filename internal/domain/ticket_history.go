package domain

import "time"

// HistoryChangeType categorizes ticket history entries.
type HistoryChangeType string

const (
	ChangeTypeStatus   HistoryChangeType = "status"
	ChangeTypePriority HistoryChangeType = "priority"
	ChangeTypeAssignee HistoryChangeType = "assignee"
)

// TicketHistory records an audited change to a ticket.
type TicketHistory struct {
	ID         string
	TicketID   string
	ActorID    *string
	ChangeType HistoryChangeType
	OldValue   map[string]any
	NewValue   map[string]any
	CreatedAt  time.Time
}
