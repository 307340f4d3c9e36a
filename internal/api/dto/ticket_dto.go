package dto

import (
	"time"

	"github.com/spec-kit/sla-engine/internal/domain"
)

// CreateTicketRequest describes ticket creation payload.
type CreateTicketRequest struct {
	RequesterID string                `json:"requester_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Priority    domain.TicketPriority `json:"priority"`
}

// AssignTicketRequest describes assignment payload.
type AssignTicketRequest struct {
	AssigneeID string `json:"assignee_id"`
}

// UpdateStatusRequest describes a status transition payload.
type UpdateStatusRequest struct {
	Status  domain.TicketStatus `json:"status"`
	Comment string              `json:"comment"`
}

// UpdatePriorityRequest describes a priority change payload.
type UpdatePriorityRequest struct {
	Priority domain.TicketPriority `json:"priority"`
}

// TicketResponse is the serialized ticket view.
type TicketResponse struct {
	ID            string                `json:"id"`
	ExternalKey   string                `json:"external_key"`
	RequesterID   string                `json:"requester_id"`
	AssigneeID    *string               `json:"assignee_id,omitempty"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Status        domain.TicketStatus   `json:"status"`
	Priority      domain.TicketPriority `json:"priority"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	AssignedAt    *time.Time            `json:"assigned_at,omitempty"`
	ResolvedAt    *time.Time            `json:"resolved_at,omitempty"`
	ClosedAt      *time.Time            `json:"closed_at,omitempty"`
	ResponseDueAt *time.Time            `json:"response_due_at,omitempty"`
	DueAt         *time.Time            `json:"due_at,omitempty"`
}

// TicketHistoryResponse is the serialized history entry.
type TicketHistoryResponse struct {
	ID         string                   `json:"id"`
	ChangeType domain.HistoryChangeType `json:"change_type"`
	ActorID    *string                  `json:"actor_id,omitempty"`
	OldValue   map[string]any           `json:"old_value,omitempty"`
	NewValue   map[string]any           `json:"new_value,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
}
