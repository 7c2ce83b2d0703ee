package ticket

import (
	"context"

	"github.com/eventpass/hotel-booking-backend/internal/enrollment"
	"github.com/eventpass/hotel-booking-backend/internal/pkg/apperror"
)

// Service exposes ticket lookups used by the HTTP layer and by other
// services that need a user's ticket.
type Service interface {
	TypesForSale(ctx context.Context) ([]*TicketType, error)
	TicketForUser(ctx context.Context, userID int64) (*Ticket, *TicketType, error)
}

type service struct {
	repo           Repository
	enrollmentRepo enrollment.Repository
}

func NewService(repo Repository, enrollmentRepo enrollment.Repository) Service {
	return &service{
		repo:           repo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *service) TypesForSale(ctx context.Context) ([]*TicketType, error) {
	return s.repo.ListTypes(ctx)
}

// TicketForUser resolves the user's ticket through their enrollment.
// A missing enrollment or ticket is NotFound.
func (s *service) TicketForUser(ctx context.Context, userID int64) (*Ticket, *TicketType, error) {
	enr, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if enr == nil {
		return nil, nil, apperror.NotFound("enrollment", 0)
	}

	t, err := s.repo.GetByEnrollmentID(ctx, enr.ID)
	if err != nil {
		return nil, nil, err
	}
	if t == nil {
		return nil, nil, apperror.NotFound("ticket", 0)
	}

	tt, err := s.repo.GetTypeByID(ctx, t.TicketTypeID)
	if err != nil {
		return nil, nil, err
	}
	if tt == nil {
		return nil, nil, apperror.NotFound("ticket type", t.TicketTypeID)
	}

	return t, tt, nil
}
