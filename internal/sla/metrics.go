package sla

import (
	"math"

	"github.com/spec-kit/sla-engine/internal/domain"
)

// PriorityMetrics aggregates compliance for one priority bucket.
type PriorityMetrics struct {
	Total              int     `json:"total"`
	ResponseMetCount   int     `json:"response_met_count"`
	ResponseMetRate    float64 `json:"response_met_rate"`
	ResolutionMetCount int     `json:"resolution_met_count"`
	ResolutionMetRate  float64 `json:"resolution_met_rate"`
}

// Metrics aggregates compliance across a ticket population.
type Metrics struct {
	Total              int                                      `json:"total"`
	ResponseMetCount   int                                      `json:"response_met_count"`
	ResponseMetRate    float64                                  `json:"response_met_rate"`
	ResolutionMetCount int                                      `json:"resolution_met_count"`
	ResolutionMetRate  float64                                  `json:"resolution_met_rate"`
	OverdueCount       int                                      `json:"overdue_count"`
	OverdueRate        float64                                  `json:"overdue_rate"`
	ByPriority         map[domain.TicketPriority]PriorityMetrics `json:"by_priority"`
}

type bucket struct {
	total               int
	responseMet         int
	responseEvaluated   int
	resolutionMet       int
	resolutionEvaluated int
}

// Metrics computes fleet-wide and per-priority compliance rates in a single
// pass. Tickets whose compliance is still UNKNOWN are excluded from the
// corresponding rate denominator; rates are rounded to two decimals.
func (e *Engine) Metrics(tickets []domain.Ticket) Metrics {
	var fleet bucket
	var overdueCount int
	buckets := map[domain.TicketPriority]*bucket{}
	for _, priority := range domain.Priorities() {
		buckets[priority] = &bucket{}
	}

	for i := range tickets {
		ticket := &tickets[i]
		status := e.Status(ticket)

		perPriority, ok := buckets[ticket.Priority]
		if !ok {
			// Unknown bucket: count fleet-wide only.
			perPriority = &bucket{}
		}
		perPriority.total++

		if status.ResponseMet != ComplianceUnknown {
			fleet.responseEvaluated++
			perPriority.responseEvaluated++
			if status.ResponseMet == ComplianceMet {
				fleet.responseMet++
				perPriority.responseMet++
			}
		}
		if status.ResolutionMet != ComplianceUnknown {
			fleet.resolutionEvaluated++
			perPriority.resolutionEvaluated++
			if status.ResolutionMet == ComplianceMet {
				fleet.resolutionMet++
				perPriority.resolutionMet++
			}
		}
		if status.Overdue {
			overdueCount++
		}
	}

	total := len(tickets)
	metrics := Metrics{
		Total:              total,
		ResponseMetCount:   fleet.responseMet,
		ResponseMetRate:    rate(fleet.responseMet, fleet.responseEvaluated),
		ResolutionMetCount: fleet.resolutionMet,
		ResolutionMetRate:  rate(fleet.resolutionMet, fleet.resolutionEvaluated),
		OverdueCount:       overdueCount,
		OverdueRate:        rate(overdueCount, total),
		ByPriority:         make(map[domain.TicketPriority]PriorityMetrics, len(buckets)),
	}
	for _, priority := range domain.Priorities() {
		b := buckets[priority]
		metrics.ByPriority[priority] = PriorityMetrics{
			Total:              b.total,
			ResponseMetCount:   b.responseMet,
			ResponseMetRate:    rate(b.responseMet, b.responseEvaluated),
			ResolutionMetCount: b.resolutionMet,
			ResolutionMetRate:  rate(b.resolutionMet, b.resolutionEvaluated),
		}
	}
	return metrics
}

func rate(met, evaluated int) float64 {
	if evaluated == 0 {
		return 0
	}
	return math.Round(float64(met)/float64(evaluated)*100*100) / 100
}
