package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/sla-engine/internal/domain"
)

const ticketColumns = `id, external_key, requester_id, assignee_id, title, description,
               status, priority, created_at, updated_at, assigned_at, resolved_at,
               closed_at, response_due_at, due_at`

// TicketFilter captures reporting query parameters. Canceled tickets are
// excluded from metrics populations at the SQL level.
type TicketFilter struct {
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
	ExcludeCanceled bool
	ActiveOnly      bool
	Limit           int
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (external_key, requester_id, title, description, status, priority,
            created_at, response_due_at, due_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	createdAt := ticket.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return r.pool.QueryRow(ctx, query,
		ticket.ExternalKey,
		ticket.RequesterID,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		createdAt,
		ticket.ResponseDueAt,
		ticket.DueAt,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET assignee_id=$1, title=$2, description=$3, status=$4, priority=$5,
            assigned_at=$6, resolved_at=$7, closed_at=$8, response_due_at=$9, due_at=$10,
            updated_at=NOW()
        WHERE id=$11`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.AssigneeID,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.AssignedAt,
		ticket.ResolvedAt,
		ticket.ClosedAt,
		ticket.ResponseDueAt,
		ticket.DueAt,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1`
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(ticketFields(&ticket)...); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE 1=1`
	args := []any{}

	if filter.ExcludeCanceled {
		query += ` AND status <> 'CANCELED'`
	}
	if filter.ActiveOnly {
		query += ` AND status NOT IN ('CLOSED','CANCELED')`
	}
	if filter.CreatedFrom != nil {
		args = append(args, *filter.CreatedFrom)
		query += ` AND created_at >= $` + itoa(len(args))
	}
	if filter.CreatedTo != nil {
		args = append(args, *filter.CreatedTo)
		query += ` AND created_at <= $` + itoa(len(args))
	}
	query += ` ORDER BY created_at`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := []domain.Ticket{}
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(ticketFields(&ticket)...); err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	return tickets, rows.Err()
}

func ticketFields(t *domain.Ticket) []any {
	return []any{
		&t.ID,
		&t.ExternalKey,
		&t.RequesterID,
		&t.AssigneeID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.Priority,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.AssignedAt,
		&t.ResolvedAt,
		&t.ClosedAt,
		&t.ResponseDueAt,
		&t.DueAt,
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
