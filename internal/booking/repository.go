package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is pure data access over bookings. Reads report absence as a
// nil result. Writes are atomic: the capacity check and the insert or room
// reassignment happen in one transaction holding a row lock on the room, so
// two concurrent requests cannot both claim the last free slot.
type Repository interface {
	// GetByUserID returns the user's booking joined with its room, or nil
	// when the user has none.
	GetByUserID(ctx context.Context, userID int64) (*BookingWithRoom, error)

	// GetByUserAndID returns the booking matching both the user and the
	// booking id exactly, or nil.
	GetByUserAndID(ctx context.Context, userID, bookingID int64) (*Booking, error)

	// Create inserts a booking for (userID, roomID) after re-checking the
	// room's capacity under a row lock. Returns ErrRoomNotFound or
	// ErrRoomFull when the guarded check fails.
	Create(ctx context.Context, userID, roomID int64) (*Booking, error)

	// UpdateRoom reassigns the booking to roomID under the same capacity
	// guard. Returns ErrRoomNotFound, ErrRoomFull or ErrNotFound.
	UpdateRoom(ctx context.Context, bookingID, roomID int64) (*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByUserID(ctx context.Context, userID int64) (*BookingWithRoom, error) {
	const query = `
		SELECT b.id,
		       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM public.bookings b
		JOIN public.rooms r ON b.room_id = r.id
		WHERE b.user_id = $1
		ORDER BY b.id
		LIMIT 1
	`
	row := r.pool.QueryRow(ctx, query, userID)

	var b BookingWithRoom
	if err := row.Scan(
		&b.ID,
		&b.Room.ID, &b.Room.Name, &b.Room.Capacity, &b.Room.HotelID,
		&b.Room.CreatedAt, &b.Room.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by user failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) GetByUserAndID(ctx context.Context, userID, bookingID int64) (*Booking, error) {
	const query = `
		SELECT id, user_id, room_id, created_at, updated_at
		FROM public.bookings
		WHERE id = $1 AND user_id = $2
	`
	row := r.pool.QueryRow(ctx, query, bookingID, userID)

	var b Booking
	if err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by user and id failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, userID, roomID int64) (*Booking, error) {
	var b Booking
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := lockRoomWithCapacity(ctx, tx, roomID); err != nil {
			return err
		}

		const insert = `
			INSERT INTO public.bookings (user_id, room_id)
			VALUES ($1, $2)
			RETURNING id, user_id, room_id, created_at, updated_at
		`
		if err := tx.QueryRow(ctx, insert, userID, roomID).
			Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) UpdateRoom(ctx context.Context, bookingID, roomID int64) (*Booking, error) {
	var b Booking
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := lockRoomWithCapacity(ctx, tx, roomID); err != nil {
			return err
		}

		const update = `
			UPDATE public.bookings
			SET room_id = $2, updated_at = now()
			WHERE id = $1
			RETURNING id, user_id, room_id, created_at, updated_at
		`
		if err := tx.QueryRow(ctx, update, bookingID, roomID).
			Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("update booking room failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// lockRoomWithCapacity takes a row lock on the room and fails with
// ErrRoomFull when its active bookings already fill the capacity. The lock
// is held until the surrounding transaction commits, serializing competing
// writes for the same room.
func lockRoomWithCapacity(ctx context.Context, tx pgx.Tx, roomID int64) error {
	const lockQuery = `SELECT capacity FROM public.rooms WHERE id = $1 FOR UPDATE`

	var capacity int
	if err := tx.QueryRow(ctx, lockQuery, roomID).Scan(&capacity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("lock room failed: %w", err)
	}

	const countQuery = `SELECT count(*) FROM public.bookings WHERE room_id = $1`

	var booked int
	if err := tx.QueryRow(ctx, countQuery, roomID).Scan(&booked); err != nil {
		return fmt.Errorf("count room bookings failed: %w", err)
	}

	if booked >= capacity {
		return ErrRoomFull
	}
	return nil
}
