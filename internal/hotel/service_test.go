package hotel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpass/hotel-booking-backend/internal/pkg/apperror"
	"github.com/eventpass/hotel-booking-backend/internal/ticket"
)

type fakeTicketService struct {
	ticket     *ticket.Ticket
	ticketType *ticket.TicketType
	err        error
}

func (f *fakeTicketService) TypesForSale(_ context.Context) ([]*ticket.TicketType, error) {
	return nil, nil
}

func (f *fakeTicketService) TicketForUser(_ context.Context, _ int64) (*ticket.Ticket, *ticket.TicketType, error) {
	return f.ticket, f.ticketType, f.err
}

type fakeRepo struct {
	hotels map[int64]*Hotel
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*Hotel, int, error) {
	out := make([]*Hotel, 0, len(f.hotels))
	for _, h := range f.hotels {
		out = append(out, h)
	}
	return out, len(out), nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*Hotel, error) {
	return f.hotels[id], nil
}

func (f *fakeRepo) GetRoomByID(_ context.Context, _ int64) (*Room, error) {
	return nil, nil
}

func eligibleTicket() *fakeTicketService {
	return &fakeTicketService{
		ticket:     &ticket.Ticket{ID: 20, Status: ticket.StatusPaid},
		ticketType: &ticket.TicketType{ID: 100, IncludesHotel: true},
	}
}

func TestListRequiresEligibleTicket(t *testing.T) {
	repo := &fakeRepo{hotels: map[int64]*Hotel{7: {ID: 7, Name: "Driven Resort"}}}

	cases := []struct {
		name      string
		tickets   *fakeTicketService
		forbidden bool
	}{
		{
			name:      "unpaid",
			tickets:   &fakeTicketService{ticket: &ticket.Ticket{ID: 20, Status: ticket.StatusReserved}, ticketType: &ticket.TicketType{ID: 100, IncludesHotel: true}},
			forbidden: true,
		},
		{
			name:      "remote",
			tickets:   &fakeTicketService{ticket: &ticket.Ticket{ID: 20, Status: ticket.StatusPaid}, ticketType: &ticket.TicketType{ID: 100, IsRemote: true, IncludesHotel: true}},
			forbidden: true,
		},
		{
			name:      "no hotel",
			tickets:   &fakeTicketService{ticket: &ticket.Ticket{ID: 20, Status: ticket.StatusPaid}, ticketType: &ticket.TicketType{ID: 100}},
			forbidden: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(repo, tc.tickets)

			_, _, err := svc.List(context.Background(), 1, Filter{Page: 1, PageSize: 10})
			assert.True(t, apperror.IsForbidden(err))
		})
	}
}

func TestListPropagatesTicketLookupError(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeTicketService{err: apperror.NotFound("enrollment", 0)})

	_, _, err := svc.List(context.Background(), 1, Filter{Page: 1, PageSize: 10})
	assert.True(t, apperror.IsNotFound(err))
}

func TestListOK(t *testing.T) {
	repo := &fakeRepo{hotels: map[int64]*Hotel{7: {ID: 7, Name: "Driven Resort"}}}
	svc := NewService(repo, eligibleTicket())

	hotels, total, err := svc.List(context.Background(), 1, Filter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, hotels, 1)
	assert.Equal(t, 1, total)
}

func TestGetWithRooms(t *testing.T) {
	repo := &fakeRepo{hotels: map[int64]*Hotel{
		7: {ID: 7, Name: "Driven Resort", Rooms: []Room{{ID: 5, Name: "101", Capacity: 2, HotelID: 7, BookedCount: 1}}},
	}}
	svc := NewService(repo, eligibleTicket())

	h, err := svc.GetWithRooms(context.Background(), 1, 7)
	require.NoError(t, err)
	require.Len(t, h.Rooms, 1)
	assert.Equal(t, 1, h.Rooms[0].BookedCount)
}

func TestGetWithRoomsUnknownHotel(t *testing.T) {
	svc := NewService(&fakeRepo{hotels: map[int64]*Hotel{}}, eligibleTicket())

	_, err := svc.GetWithRooms(context.Background(), 1, 99)
	assert.True(t, apperror.IsNotFound(err))
}
