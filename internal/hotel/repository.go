package hotel

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is pure data access over hotels and rooms. Missing rows are
// nil results, never repository-level errors.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Hotel, int, error)
	GetByID(ctx context.Context, id int64) (*Hotel, error)

	// GetRoomByID returns the room together with its current active booking
	// count, or nil when the room does not exist.
	GetRoomByID(ctx context.Context, roomID int64) (*Room, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "image", "created_at", "updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.hotels").
		OrderBy("name")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list hotels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list hotels failed: %w", err)
	}
	defer rows.Close()

	var hotels []*Hotel
	var total int

	for rows.Next() {
		var h Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan hotel failed: %w", err)
		}
		hotels = append(hotels, &h)
	}

	return hotels, total, rows.Err()
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Hotel, error) {
	const hotelQuery = `
		SELECT id, name, image, created_at, updated_at
		FROM public.hotels
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, hotelQuery, id)

	var h Hotel
	if err := row.Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hotel failed: %w", err)
	}

	const roomsQuery = `
		SELECT r.id, r.name, r.capacity, r.hotel_id,
		       count(b.id) AS booked_count,
		       r.created_at, r.updated_at
		FROM public.rooms r
		LEFT JOIN public.bookings b ON b.room_id = r.id
		WHERE r.hotel_id = $1
		GROUP BY r.id
		ORDER BY r.name
	`
	rows, err := r.pool.Query(ctx, roomsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list hotel rooms failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rm Room
		if err := rows.Scan(
			&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.BookedCount,
			&rm.CreatedAt, &rm.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan room failed: %w", err)
		}
		h.Rooms = append(h.Rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &h, nil
}

func (r *pgxRepository) GetRoomByID(ctx context.Context, roomID int64) (*Room, error) {
	const query = `
		SELECT r.id, r.name, r.capacity, r.hotel_id,
		       count(b.id) AS booked_count,
		       r.created_at, r.updated_at
		FROM public.rooms r
		LEFT JOIN public.bookings b ON b.room_id = r.id
		WHERE r.id = $1
		GROUP BY r.id
	`
	row := r.pool.QueryRow(ctx, query, roomID)

	var rm Room
	if err := row.Scan(
		&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.BookedCount,
		&rm.CreatedAt, &rm.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return &rm, nil
}
