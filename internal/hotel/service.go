package hotel

import (
	"context"

	"github.com/eventpass/hotel-booking-backend/internal/pkg/apperror"
	"github.com/eventpass/hotel-booking-backend/internal/ticket"
)

// Service gates hotel browsing behind ticket eligibility: only users with a
// paid, non-remote, hotel-inclusive ticket may see hotels.
type Service interface {
	List(ctx context.Context, userID int64, filter Filter) ([]*Hotel, int, error)
	GetWithRooms(ctx context.Context, userID, hotelID int64) (*Hotel, error)
}

type service struct {
	repo          Repository
	ticketService ticket.Service
}

func NewService(repo Repository, ticketService ticket.Service) Service {
	return &service{
		repo:          repo,
		ticketService: ticketService,
	}
}

// checkEligibility resolves the user's ticket and rejects users whose ticket
// does not grant hotel access. Enrollment or ticket absence surfaces as the
// NotFound the ticket service raises.
func (s *service) checkEligibility(ctx context.Context, userID int64) error {
	t, tt, err := s.ticketService.TicketForUser(ctx, userID)
	if err != nil {
		return err
	}
	if t.Status != ticket.StatusPaid {
		return apperror.Forbidden("ticket", t.ID)
	}
	if tt.IsRemote || !tt.IncludesHotel {
		return apperror.Forbidden("ticket type", tt.ID)
	}
	return nil
}

func (s *service) List(ctx context.Context, userID int64, filter Filter) ([]*Hotel, int, error) {
	if err := s.checkEligibility(ctx, userID); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, filter)
}

func (s *service) GetWithRooms(ctx context.Context, userID, hotelID int64) (*Hotel, error) {
	if err := s.checkEligibility(ctx, userID); err != nil {
		return nil, err
	}

	h, err := s.repo.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, apperror.NotFound("hotel", hotelID)
	}
	return h, nil
}
