package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/sla-engine/internal/domain"
	"github.com/spec-kit/sla-engine/internal/events"
	"github.com/spec-kit/sla-engine/internal/repository"
	"github.com/spec-kit/sla-engine/internal/sla"
)

const metricsCachePrefix = "sla:metrics:"

// SLAService exposes the read/reporting surface of the engine: per-ticket
// status, policy lookups, fleet metrics and calendar administration.
type SLAService struct {
	tickets    repository.TicketRepository
	engine     *sla.Engine
	dispatcher events.Dispatcher
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// SLADependencies bundles collaborators for the SLA service.
type SLADependencies struct {
	TicketRepo repository.TicketRepository
	Engine     *sla.Engine
	Dispatcher events.Dispatcher
	Cache      *redis.Client
	CacheTTL   time.Duration
	Logger     *zap.Logger
}

// TicketSLA is the per-ticket SLA view returned to read handlers.
type TicketSLA struct {
	TicketID                  string                `json:"ticket_id"`
	Priority                  domain.TicketPriority `json:"priority"`
	Status                    domain.TicketStatus   `json:"status"`
	SLA                       sla.Status            `json:"sla"`
	ResponseDueAt             *time.Time            `json:"response_due_at,omitempty"`
	DueAt                     *time.Time            `json:"due_at,omitempty"`
	ResponseTimeRemainingMs   *int64                `json:"response_time_remaining_ms,omitempty"`
	ResolutionTimeRemainingMs *int64                `json:"resolution_time_remaining_ms,omitempty"`
	Policy                    sla.Policy            `json:"policy"`
}

// NewSLAService constructs the service.
func NewSLAService(deps SLADependencies) *SLAService {
	return &SLAService{
		tickets:    deps.TicketRepo,
		engine:     deps.Engine,
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		logger:     deps.Logger,
	}
}

// Engine exposes the underlying computation engine.
func (s *SLAService) Engine() *sla.Engine {
	return s.engine
}

// TicketSLA computes the SLA view for one ticket.
func (s *SLAService) TicketSLA(ctx context.Context, ticketID string) (*TicketSLA, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	policy, err := s.engine.Policies().Get(ticket.Priority)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	view := &TicketSLA{
		TicketID:      ticket.ID,
		Priority:      ticket.Priority,
		Status:        ticket.Status,
		SLA:           s.engine.Status(ticket),
		ResponseDueAt: ticket.ResponseDueAt,
		DueAt:         ticket.DueAt,
		Policy:        policy,
	}
	if ticket.ResponseDueAt != nil {
		view.ResponseTimeRemainingMs = remainingMs(now, *ticket.ResponseDueAt)
	}
	if ticket.DueAt != nil {
		view.ResolutionTimeRemainingMs = remainingMs(now, *ticket.DueAt)
	}
	return view, nil
}

// Metrics aggregates compliance over all non-canceled tickets created in the
// given range. Results are cached in redis under a short TTL; dashboards
// tolerate staleness up to that TTL.
func (s *SLAService) Metrics(ctx context.Context, from, to *time.Time) (*sla.Metrics, error) {
	cacheKey := metricsCacheKey(from, to)
	if cached := s.cachedMetrics(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	tickets, err := s.tickets.ListWithFilter(ctx, repository.TicketFilter{
		CreatedFrom:     from,
		CreatedTo:       to,
		ExcludeCanceled: true,
	})
	if err != nil {
		return nil, err
	}

	metrics := s.engine.Metrics(tickets)
	s.storeMetrics(ctx, cacheKey, &metrics)
	return &metrics, nil
}

// Holidays returns the sorted holiday snapshot.
func (s *SLAService) Holidays() []string {
	return s.engine.Calendar().Holidays()
}

// AddHoliday appends an exception date to the calendar. Existing due dates
// are not recomputed.
func (s *SLAService) AddHoliday(ctx context.Context, actorID string, date time.Time) {
	s.engine.Calendar().AddHoliday(date)
	if s.logger != nil {
		s.logger.Info("holiday added", zap.String("date", date.Format("2006-01-02")), zap.String("actor", actorID))
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventHolidayAdded,
			ActorID:   &actorID,
			Timestamp: time.Now(),
			Payload:   events.HolidayAddedPayload{Date: date.Format("2006-01-02")},
		})
	}
}

func (s *SLAService) cachedMetrics(ctx context.Context, key string) *sla.Metrics {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var metrics sla.Metrics
	if err := json.Unmarshal(raw, &metrics); err != nil {
		return nil
	}
	return &metrics
}

func (s *SLAService) storeMetrics(ctx context.Context, key string, metrics *sla.Metrics) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(metrics)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil && s.logger != nil {
		s.logger.Debug("metrics cache write failed", zap.Error(err))
	}
}

func metricsCacheKey(from, to *time.Time) string {
	key := metricsCachePrefix
	if from != nil {
		key += from.Format(time.RFC3339)
	}
	key += ":"
	if to != nil {
		key += to.Format(time.RFC3339)
	}
	return key
}

func remainingMs(now, due time.Time) *int64 {
	ms := due.Sub(now).Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return &ms
}
