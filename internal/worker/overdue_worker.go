package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/sla-engine/internal/events"
	"github.com/spec-kit/sla-engine/internal/repository"
	"github.com/spec-kit/sla-engine/internal/sla"
)

const breachDedupPrefix = "sla:breached:"

// OverdueWorker periodically scans active tickets and publishes a breach
// event for each ticket that has gone overdue. Due dates are never
// recomputed here; the sweep only reads and notifies.
type OverdueWorker struct {
	tickets    repository.TicketRepository
	engine     *sla.Engine
	dispatcher events.Dispatcher
	dedup      *redis.Client
	interval   time.Duration
	logger     *zap.Logger
}

// NewOverdueWorker constructs the worker.
func NewOverdueWorker(tickets repository.TicketRepository, engine *sla.Engine, dispatcher events.Dispatcher, dedup *redis.Client, interval time.Duration, logger *zap.Logger) *OverdueWorker {
	return &OverdueWorker{
		tickets:    tickets,
		engine:     engine,
		dispatcher: dispatcher,
		dedup:      dedup,
		interval:   interval,
		logger:     logger,
	}
}

// Run blocks until ctx is canceled, sweeping at the configured interval.
func (w *OverdueWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *OverdueWorker) sweep(ctx context.Context) {
	tickets, err := w.tickets.ListWithFilter(ctx, repository.TicketFilter{ActiveOnly: true})
	if err != nil {
		w.logger.Error("overdue sweep failed", zap.Error(err))
		return
	}

	breached := 0
	for i := range tickets {
		ticket := &tickets[i]
		if !w.engine.IsOverdue(ticket) {
			continue
		}
		if !w.markBreached(ctx, ticket.ID) {
			continue
		}
		breached++
		actorID := "overdue-worker"
		_ = w.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSLABreached,
			TicketID:  ticket.ID,
			ActorID:   &actorID,
			Timestamp: time.Now(),
			Payload: events.SLABreachedPayload{
				Priority:      ticket.Priority,
				Status:        ticket.Status,
				ResponseDueAt: ticket.ResponseDueAt,
				DueAt:         ticket.DueAt,
			},
		})
	}
	w.logger.Debug("overdue sweep complete", zap.Int("scanned", len(tickets)), zap.Int("breached", breached))
}

// markBreached claims the notification slot for a ticket so each breach is
// announced once per retention window. Without redis every sweep notifies.
func (w *OverdueWorker) markBreached(ctx context.Context, ticketID string) bool {
	if w.dedup == nil {
		return true
	}
	ok, err := w.dedup.SetNX(ctx, breachDedupPrefix+ticketID, 1, 24*time.Hour).Result()
	if err != nil {
		w.logger.Debug("breach dedup unavailable", zap.Error(err))
		return true
	}
	return ok
}
