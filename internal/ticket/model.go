package ticket

import "time"

// Status is the payment status of a ticket.
type Status string

const (
	StatusReserved Status = "RESERVED"
	StatusPaid     Status = "PAID"
)

// TicketType is a catalog entry defining whether attendance is remote and
// whether hotel accommodation is included.
type TicketType struct {
	ID            int64
	Name          string
	Price         int64 // cents
	IsRemote      bool
	IncludesHotel bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Ticket is a purchase record tied to an enrollment and a ticket type.
type Ticket struct {
	ID           int64
	EnrollmentID int64
	TicketTypeID int64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
