package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventpass/hotel-booking-backend/internal/enrollment"
	"github.com/eventpass/hotel-booking-backend/internal/hotel"
	"github.com/eventpass/hotel-booking-backend/internal/pkg/apperror"
	"github.com/eventpass/hotel-booking-backend/internal/ticket"
)

// Service implements the booking business rules. The order of the checks is
// part of the observable contract: each chain short-circuits at the first
// failing condition, so a user with no enrollment always sees NotFound
// before any ticket or room check runs.
type Service interface {
	Get(ctx context.Context, userID int64) (*BookingWithRoom, error)
	Create(ctx context.Context, userID, roomID int64) (*Booking, error)
	Update(ctx context.Context, userID, roomID, bookingID int64) (*Booking, error)
}

type service struct {
	repo           Repository
	enrollmentRepo enrollment.Repository
	ticketRepo     ticket.Repository
	hotelRepo      hotel.Repository
}

func NewService(
	repo Repository,
	enrollmentRepo enrollment.Repository,
	ticketRepo ticket.Repository,
	hotelRepo hotel.Repository,
) Service {
	return &service{
		repo:           repo,
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		hotelRepo:      hotelRepo,
	}
}

// Get returns the user's booking with the room projection.
// Chain: enrollment absent -> NotFound; ticket absent -> Forbidden;
// booking absent -> NotFound.
func (s *service) Get(ctx context.Context, userID int64) (*BookingWithRoom, error) {
	enr, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if enr == nil {
		return nil, apperror.NotFound("enrollment", 0)
	}

	t, err := s.ticketRepo.GetByEnrollmentID(ctx, enr.ID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.Forbidden("ticket", 0)
	}

	b, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperror.NotFound("booking", 0)
	}

	return b, nil
}

// Create reserves a room for the user.
// Chain: enrollment absent -> NotFound; ticket absent or unpaid -> Forbidden;
// ticket type remote or without hotel -> Forbidden; room absent -> NotFound;
// room full -> Forbidden. The capacity check is re-run atomically by the
// repository; losing that race is also Forbidden.
func (s *service) Create(ctx context.Context, userID, roomID int64) (*Booking, error) {
	if err := s.checkEligibility(ctx, userID, roomID); err != nil {
		return nil, err
	}

	b, err := s.repo.Create(ctx, userID, roomID)
	if err != nil {
		return nil, mapRoomGuardError(err, roomID)
	}
	return b, nil
}

// Update moves the user's existing booking to another room. It runs the same
// eligibility chain as Create, then additionally requires that the user has
// a booking and that bookingID belongs to them; both failures are Forbidden,
// since the booking id arrives from an authenticated context.
func (s *service) Update(ctx context.Context, userID, roomID, bookingID int64) (*Booking, error) {
	if err := s.checkEligibility(ctx, userID, roomID); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperror.Forbidden("booking", 0)
	}

	owned, err := s.repo.GetByUserAndID(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if owned == nil {
		return nil, apperror.Forbidden("booking", bookingID)
	}

	b, err := s.repo.UpdateRoom(ctx, bookingID, roomID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperror.Forbidden("booking", bookingID)
		}
		return nil, mapRoomGuardError(err, roomID)
	}
	return b, nil
}

// checkEligibility is the shared precondition chain for writes, in the
// contract order: enrollment, ticket, payment, ticket type, room existence,
// room capacity.
func (s *service) checkEligibility(ctx context.Context, userID, roomID int64) error {
	enr, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if enr == nil {
		return apperror.NotFound("enrollment", 0)
	}

	t, err := s.ticketRepo.GetByEnrollmentID(ctx, enr.ID)
	if err != nil {
		return err
	}
	if t == nil {
		return apperror.Forbidden("ticket", 0)
	}
	if t.Status != ticket.StatusPaid {
		return apperror.Forbidden("ticket", t.ID)
	}

	tt, err := s.ticketRepo.GetTypeByID(ctx, t.TicketTypeID)
	if err != nil {
		return err
	}
	if tt == nil {
		// Every ticket references a type; a missing row is data corruption.
		return fmt.Errorf("ticket %d references missing ticket type %d", t.ID, t.TicketTypeID)
	}

	room, err := s.hotelRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		return err
	}
	if tt.IsRemote || !tt.IncludesHotel {
		return apperror.Forbidden("ticket type", tt.ID)
	}
	if room == nil {
		return apperror.NotFound("room", roomID)
	}
	if room.BookedCount >= room.Capacity {
		return apperror.Forbidden("room", roomID)
	}

	return nil
}

func mapRoomGuardError(err error, roomID int64) error {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return apperror.NotFound("room", roomID)
	case errors.Is(err, ErrRoomFull):
		return apperror.Forbidden("room", roomID)
	default:
		return err
	}
}
