package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/sla-engine/internal/domain"
	"github.com/spec-kit/sla-engine/internal/events"
	"github.com/spec-kit/sla-engine/internal/repository"
	"github.com/spec-kit/sla-engine/internal/sla"
	apperrors "github.com/spec-kit/sla-engine/pkg/util"
)

// TicketService coordinates ticket lifecycle workflows and keeps the SLA
// deadline fields on each ticket consistent with the engine's policies.
type TicketService struct {
	tickets    repository.TicketRepository
	history    repository.TicketHistoryRepository
	engine     *sla.Engine
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo  repository.TicketRepository
	HistoryRepo repository.TicketHistoryRepository
	Engine      *sla.Engine
	Dispatcher  events.Dispatcher
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	RequesterID string
	Title       string
	Description string
	Priority    domain.TicketPriority
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		history:    deps.HistoryRepo,
		engine:     deps.Engine,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket creates a ticket and stamps its SLA deadlines from the
// policy for its priority.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	if input.Priority == "" {
		input.Priority = domain.TicketPriorityP3
	}
	if !domain.ValidPriority(input.Priority) {
		return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": input.Priority})
	}

	now := time.Now()
	dueDates, err := s.engine.CalculateDueDates(input.Priority, now)
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		ExternalKey:   generateTicketKey(),
		RequesterID:   input.RequesterID,
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		Status:        domain.TicketStatusOpen,
		Priority:      input.Priority,
		CreatedAt:     now,
		ResponseDueAt: &dueDates.ResponseDueAt,
		DueAt:         &dueDates.DueAt,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			Priority:      ticket.Priority,
			Title:         ticket.Title,
			ResponseDueAt: dueDates.ResponseDueAt,
			DueAt:         dueDates.DueAt,
		},
	})
	return ticket, nil
}

// GetTicket fetches a ticket by id.
func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, ticketID)
}

// AssignTicket records the first assignment, fixing the response timestamp
// that compliance is later judged against.
func (s *TicketService) AssignTicket(ctx context.Context, actorID, ticketID, assigneeID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status.IsTerminal() {
		return nil, apperrors.NewConflict("ticket is closed", nil)
	}

	now := time.Now()
	var oldAssignee any
	if ticket.AssigneeID != nil {
		oldAssignee = *ticket.AssigneeID
	}
	ticket.AssigneeID = &assigneeID
	if ticket.AssignedAt == nil {
		ticket.AssignedAt = &now
	}
	if ticket.Status == domain.TicketStatusOpen {
		ticket.Status = domain.TicketStatusInProgress
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	s.recordChange(ctx, &actorID, ticket.ID, domain.ChangeTypeAssignee,
		map[string]any{"assignee_id": oldAssignee},
		map[string]any{"assignee_id": assigneeID})
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		ActorID:  &actorID,
		Payload: events.TicketAssignedPayload{
			AssigneeID: assigneeID,
			AssignedAt: *ticket.AssignedAt,
		},
	})
	return ticket, nil
}

// UpdateStatus transitions a ticket through its lifecycle, maintaining the
// resolved/closed timestamps the SLA checks depend on.
func (s *TicketService) UpdateStatus(ctx context.Context, actorID, ticketID string, newStatus domain.TicketStatus, comment string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(ticket.Status, newStatus) {
		return nil, apperrors.NewConflict("invalid status transition", map[string]any{
			"from": ticket.Status,
			"to":   newStatus,
		})
	}

	now := time.Now()
	oldStatus := ticket.Status
	switch newStatus {
	case domain.TicketStatusResolved:
		ticket.ResolvedAt = &now
	case domain.TicketStatusClosed:
		ticket.ClosedAt = &now
	case domain.TicketStatusInProgress:
		// Reopened tickets shed their resolution timestamp.
		if oldStatus == domain.TicketStatusResolved {
			ticket.ResolvedAt = nil
		}
	}
	ticket.Status = newStatus
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	s.recordChange(ctx, &actorID, ticket.ID, domain.ChangeTypeStatus,
		map[string]any{"status": oldStatus},
		map[string]any{"status": newStatus, "comment": comment})
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		ActorID:  &actorID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
			Comment:   comment,
		},
	})
	return ticket, nil
}

// UpdatePriority changes a ticket's priority and replaces both SLA deadlines
// wholesale, recomputed from the original creation time.
func (s *TicketService) UpdatePriority(ctx context.Context, actorID, ticketID string, newPriority domain.TicketPriority) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	dueDates, err := s.engine.CalculateDueDates(newPriority, ticket.CreatedAt)
	if err != nil {
		return nil, err
	}

	oldPriority := ticket.Priority
	ticket.Priority = newPriority
	ticket.ResponseDueAt = &dueDates.ResponseDueAt
	ticket.DueAt = &dueDates.DueAt
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	s.recordChange(ctx, &actorID, ticket.ID, domain.ChangeTypePriority,
		map[string]any{"priority": oldPriority},
		map[string]any{"priority": newPriority})
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketPriorityChanged,
		TicketID: ticket.ID,
		ActorID:  &actorID,
		Payload: events.TicketPriorityChangedPayload{
			OldPriority:   oldPriority,
			NewPriority:   newPriority,
			ResponseDueAt: dueDates.ResponseDueAt,
			DueAt:         dueDates.DueAt,
		},
	})
	return ticket, nil
}

// ListHistory returns audited changes for a ticket.
func (s *TicketService) ListHistory(ctx context.Context, ticketID string, limit, offset int) ([]domain.TicketHistory, error) {
	if s.history == nil {
		return []domain.TicketHistory{}, nil
	}
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		return nil, err
	}
	return s.history.ListByTicket(ctx, ticketID, limit, offset)
}

var allowedTransitions = map[domain.TicketStatus][]domain.TicketStatus{
	domain.TicketStatusOpen:        {domain.TicketStatusInProgress, domain.TicketStatusCanceled},
	domain.TicketStatusInProgress:  {domain.TicketStatusPendingUser, domain.TicketStatusResolved, domain.TicketStatusCanceled},
	domain.TicketStatusPendingUser: {domain.TicketStatusInProgress, domain.TicketStatusResolved, domain.TicketStatusCanceled},
	domain.TicketStatusResolved:    {domain.TicketStatusClosed, domain.TicketStatusInProgress},
	domain.TicketStatusClosed:      {},
	domain.TicketStatusCanceled:    {},
}

func isValidTransition(current, next domain.TicketStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

func (s *TicketService) recordChange(ctx context.Context, actorID *string, ticketID string, changeType domain.HistoryChangeType, oldValue, newValue map[string]any) {
	if s.history == nil {
		return
	}
	entry := &domain.TicketHistory{
		TicketID:   ticketID,
		ActorID:    actorID,
		ChangeType: changeType,
		OldValue:   oldValue,
		NewValue:   newValue,
	}
	_ = s.history.Create(ctx, entry)
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func generateTicketKey() string {
	return "TCK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
