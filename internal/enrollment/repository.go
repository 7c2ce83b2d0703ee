package enrollment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is pure data access. Absence is reported as a nil result, not
// an error; callers decide what a missing enrollment means.
type Repository interface {
	GetByUserID(ctx context.Context, userID int64) (*Enrollment, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByUserID(ctx context.Context, userID int64) (*Enrollment, error) {
	const query = `
		SELECT id, user_id, name, cpf, birthday, phone, created_at, updated_at
		FROM public.enrollments
		WHERE user_id = $1
	`
	row := r.pool.QueryRow(ctx, query, userID)

	var e Enrollment
	if err := row.Scan(
		&e.ID, &e.UserID, &e.Name, &e.CPF, &e.Birthday, &e.Phone,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get enrollment by user failed: %w", err)
	}
	return &e, nil
}
