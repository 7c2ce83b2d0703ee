package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpass/hotel-booking-backend/internal/enrollment"
	"github.com/eventpass/hotel-booking-backend/internal/hotel"
	"github.com/eventpass/hotel-booking-backend/internal/pkg/apperror"
	"github.com/eventpass/hotel-booking-backend/internal/ticket"
)

type fakeEnrollmentRepo struct {
	byUser map[int64]*enrollment.Enrollment
}

func (f *fakeEnrollmentRepo) GetByUserID(_ context.Context, userID int64) (*enrollment.Enrollment, error) {
	return f.byUser[userID], nil
}

type fakeTicketRepo struct {
	byEnrollment map[int64]*ticket.Ticket
	types        map[int64]*ticket.TicketType
}

func (f *fakeTicketRepo) GetByEnrollmentID(_ context.Context, enrollmentID int64) (*ticket.Ticket, error) {
	return f.byEnrollment[enrollmentID], nil
}

func (f *fakeTicketRepo) GetTypeByID(_ context.Context, typeID int64) (*ticket.TicketType, error) {
	return f.types[typeID], nil
}

func (f *fakeTicketRepo) ListTypes(_ context.Context) ([]*ticket.TicketType, error) {
	return nil, nil
}

type fakeHotelRepo struct {
	rooms map[int64]*hotel.Room
}

func (f *fakeHotelRepo) List(_ context.Context, _ hotel.Filter) ([]*hotel.Hotel, int, error) {
	return nil, 0, nil
}

func (f *fakeHotelRepo) GetByID(_ context.Context, _ int64) (*hotel.Hotel, error) {
	return nil, nil
}

func (f *fakeHotelRepo) GetRoomByID(_ context.Context, roomID int64) (*hotel.Room, error) {
	return f.rooms[roomID], nil
}

// fakeBookingRepo mimics the atomic guard of the real repository: writes
// re-check the room and fail with the storage sentinels when the room is
// missing or full.
type fakeBookingRepo struct {
	rooms  *fakeHotelRepo
	byUser map[int64]*BookingWithRoom
	byID   map[int64]*Booking
	nextID int64
	writes int
}

func newFakeBookingRepo(rooms *fakeHotelRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		rooms:  rooms,
		byUser: make(map[int64]*BookingWithRoom),
		byID:   make(map[int64]*Booking),
		nextID: 1,
	}
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64) (*BookingWithRoom, error) {
	return f.byUser[userID], nil
}

func (f *fakeBookingRepo) GetByUserAndID(_ context.Context, userID, bookingID int64) (*Booking, error) {
	b := f.byID[bookingID]
	if b == nil || b.UserID != userID {
		return nil, nil
	}
	return b, nil
}

func (f *fakeBookingRepo) guardRoom(roomID int64) error {
	room := f.rooms.rooms[roomID]
	if room == nil {
		return ErrRoomNotFound
	}
	if room.BookedCount >= room.Capacity {
		return ErrRoomFull
	}
	return nil
}

func (f *fakeBookingRepo) Create(_ context.Context, userID, roomID int64) (*Booking, error) {
	if err := f.guardRoom(roomID); err != nil {
		return nil, err
	}

	b := &Booking{ID: f.nextID, UserID: userID, RoomID: roomID}
	f.nextID++
	f.byID[b.ID] = b
	room := f.rooms.rooms[roomID]
	room.BookedCount++
	f.byUser[userID] = &BookingWithRoom{ID: b.ID, Room: roomSummary(room)}
	f.writes++
	return b, nil
}

func (f *fakeBookingRepo) UpdateRoom(_ context.Context, bookingID, roomID int64) (*Booking, error) {
	if err := f.guardRoom(roomID); err != nil {
		return nil, err
	}

	b := f.byID[bookingID]
	if b == nil {
		return nil, ErrNotFound
	}
	f.rooms.rooms[b.RoomID].BookedCount--
	b.RoomID = roomID
	room := f.rooms.rooms[roomID]
	room.BookedCount++
	f.byUser[b.UserID] = &BookingWithRoom{ID: b.ID, Room: roomSummary(room)}
	f.writes++
	return b, nil
}

func roomSummary(r *hotel.Room) RoomSummary {
	return RoomSummary{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		HotelID:   r.HotelID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// fixture assembles a service around fakes. The default world has user 1
// enrolled (enrollment 10) with a paid, hotel-inclusive ticket (type 100)
// and room 5 (hotel 7, capacity 2, empty).
type fixture struct {
	enrollments *fakeEnrollmentRepo
	tickets     *fakeTicketRepo
	hotels      *fakeHotelRepo
	bookings    *fakeBookingRepo
	service     Service
}

func newFixture() *fixture {
	enrollments := &fakeEnrollmentRepo{byUser: map[int64]*enrollment.Enrollment{
		1: {ID: 10, UserID: 1},
	}}
	tickets := &fakeTicketRepo{
		byEnrollment: map[int64]*ticket.Ticket{
			10: {ID: 20, EnrollmentID: 10, TicketTypeID: 100, Status: ticket.StatusPaid},
		},
		types: map[int64]*ticket.TicketType{
			100: {ID: 100, Name: "Presential + Hotel", IsRemote: false, IncludesHotel: true},
		},
	}
	hotels := &fakeHotelRepo{rooms: map[int64]*hotel.Room{
		5: {
			ID: 5, Name: "101", Capacity: 2, HotelID: 7,
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}}
	bookings := newFakeBookingRepo(hotels)

	return &fixture{
		enrollments: enrollments,
		tickets:     tickets,
		hotels:      hotels,
		bookings:    bookings,
		service:     NewService(bookings, enrollments, tickets, hotels),
	}
}

func TestGetWithoutEnrollment(t *testing.T) {
	f := newFixture()

	_, err := f.service.Get(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetWithoutTicket(t *testing.T) {
	f := newFixture()
	delete(f.tickets.byEnrollment, 10)

	_, err := f.service.Get(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

func TestGetWithoutBooking(t *testing.T) {
	f := newFixture()

	_, err := f.service.Get(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetReturnsBookedRoomProjection(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.service.Create(ctx, 1, 5)
	require.NoError(t, err)

	got, err := f.service.Get(ctx, 1)
	require.NoError(t, err)

	room := f.hotels.rooms[5]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, RoomSummary{
		ID:        room.ID,
		Name:      room.Name,
		Capacity:  room.Capacity,
		HotelID:   room.HotelID,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}, got.Room)
}

func TestCreateWithoutEnrollment(t *testing.T) {
	f := newFixture()

	_, err := f.service.Create(context.Background(), 99, 5)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, f.bookings.writes)
}

func TestCreateWithoutTicket(t *testing.T) {
	f := newFixture()
	delete(f.tickets.byEnrollment, 10)

	_, err := f.service.Create(context.Background(), 1, 5)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	assert.Zero(t, f.bookings.writes)
}

func TestCreateWithUnpaidTicket(t *testing.T) {
	f := newFixture()
	f.tickets.byEnrollment[10].Status = ticket.StatusReserved

	_, err := f.service.Create(context.Background(), 1, 5)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	assert.Zero(t, f.bookings.writes)
}

func TestCreateWithRemoteTicketType(t *testing.T) {
	f := newFixture()
	f.tickets.types[100].IsRemote = true

	_, err := f.service.Create(context.Background(), 1, 5)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

func TestCreateWithoutHotelInclusion(t *testing.T) {
	f := newFixture()
	f.tickets.types[100].IncludesHotel = false

	_, err := f.service.Create(context.Background(), 1, 5)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

// The ticket type check runs before the room existence check, so an
// ineligible ticket pointed at a missing room is still Forbidden.
func TestCreateIneligibleTicketBeatsMissingRoom(t *testing.T) {
	f := newFixture()
	f.tickets.types[100].IsRemote = true

	_, err := f.service.Create(context.Background(), 1, 404)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

func TestCreateWithMissingRoom(t *testing.T) {
	f := newFixture()

	_, err := f.service.Create(context.Background(), 1, 404)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateWithFullRoom(t *testing.T) {
	f := newFixture()
	f.hotels.rooms[5].Capacity = 1
	f.hotels.rooms[5].BookedCount = 1

	_, err := f.service.Create(context.Background(), 1, 5)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	assert.Zero(t, f.bookings.writes)
}

func TestCreateSucceeds(t *testing.T) {
	f := newFixture()

	b, err := f.service.Create(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.Equal(t, int64(1), b.UserID)
	assert.Equal(t, int64(5), b.RoomID)
	assert.Equal(t, 1, f.bookings.writes)
}

// Losing the last free slot between the service's read and the repository's
// guarded insert surfaces as Forbidden, same as an up-front full room.
func TestCreateLosesCapacityRace(t *testing.T) {
	f := newFixture()
	f.hotels.rooms[5].Capacity = 1

	// First user takes the slot.
	_, err := f.service.Create(context.Background(), 1, 5)
	require.NoError(t, err)

	// Second eligible user targets the same room.
	f.enrollments.byUser[2] = &enrollment.Enrollment{ID: 11, UserID: 2}
	f.tickets.byEnrollment[11] = &ticket.Ticket{ID: 21, EnrollmentID: 11, TicketTypeID: 100, Status: ticket.StatusPaid}

	_, err = f.service.Create(context.Background(), 2, 5)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	assert.Equal(t, 1, f.bookings.writes)
}

func TestUpdateWithoutEnrollment(t *testing.T) {
	f := newFixture()

	_, err := f.service.Update(context.Background(), 99, 5, 1)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateWithoutExistingBooking(t *testing.T) {
	f := newFixture()

	_, err := f.service.Update(context.Background(), 1, 5, 1)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	assert.Zero(t, f.bookings.writes)
}

func TestUpdateWithForeignBookingID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// User 2 owns a booking in another room.
	f.enrollments.byUser[2] = &enrollment.Enrollment{ID: 11, UserID: 2}
	f.tickets.byEnrollment[11] = &ticket.Ticket{ID: 21, EnrollmentID: 11, TicketTypeID: 100, Status: ticket.StatusPaid}
	f.hotels.rooms[6] = &hotel.Room{ID: 6, Name: "102", Capacity: 1, HotelID: 7}
	theirs, err := f.service.Create(ctx, 2, 6)
	require.NoError(t, err)

	// User 1 has a booking too, but tries to move user 2's.
	_, err = f.service.Create(ctx, 1, 5)
	require.NoError(t, err)
	writes := f.bookings.writes

	_, err = f.service.Update(ctx, 1, 5, theirs.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	assert.Equal(t, writes, f.bookings.writes)
	assert.Equal(t, int64(6), f.bookings.byID[theirs.ID].RoomID)
}

func TestUpdateToFullRoom(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	mine, err := f.service.Create(ctx, 1, 5)
	require.NoError(t, err)

	f.hotels.rooms[6] = &hotel.Room{ID: 6, Name: "102", Capacity: 1, HotelID: 7, BookedCount: 1}

	_, err = f.service.Update(ctx, 1, 6, mine.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	assert.Equal(t, int64(5), f.bookings.byID[mine.ID].RoomID)
}

func TestUpdateSucceeds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	mine, err := f.service.Create(ctx, 1, 5)
	require.NoError(t, err)

	f.hotels.rooms[6] = &hotel.Room{ID: 6, Name: "102", Capacity: 1, HotelID: 7}

	updated, err := f.service.Update(ctx, 1, 6, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, mine.ID, updated.ID)
	assert.Equal(t, int64(6), updated.RoomID)
}
