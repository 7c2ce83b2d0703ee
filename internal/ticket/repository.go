package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is pure data access over tickets and ticket types. A missing
// ticket is a nil result, never an error.
type Repository interface {
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*Ticket, error)
	GetTypeByID(ctx context.Context, typeID int64) (*TicketType, error)
	ListTypes(ctx context.Context) ([]*TicketType, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*Ticket, error) {
	const query = `
		SELECT id, enrollment_id, ticket_type_id, status, created_at, updated_at
		FROM public.tickets
		WHERE enrollment_id = $1
	`
	row := r.pool.QueryRow(ctx, query, enrollmentID)

	var t Ticket
	if err := row.Scan(
		&t.ID, &t.EnrollmentID, &t.TicketTypeID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket by enrollment failed: %w", err)
	}
	return &t, nil
}

func (r *pgxRepository) GetTypeByID(ctx context.Context, typeID int64) (*TicketType, error) {
	const query = `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM public.ticket_types
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, typeID)

	var tt TicketType
	if err := row.Scan(
		&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel,
		&tt.CreatedAt, &tt.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket type failed: %w", err)
	}
	return &tt, nil
}

func (r *pgxRepository) ListTypes(ctx context.Context) ([]*TicketType, error) {
	const query = `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM public.ticket_types
		ORDER BY price
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ticket types failed: %w", err)
	}
	defer rows.Close()

	var types []*TicketType
	for rows.Next() {
		var tt TicketType
		if err := rows.Scan(
			&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel,
			&tt.CreatedAt, &tt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket type failed: %w", err)
		}
		types = append(types, &tt)
	}

	return types, rows.Err()
}
