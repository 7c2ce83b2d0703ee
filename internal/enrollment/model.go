package enrollment

import "time"

// Enrollment is a user's registration record for the event. Owning one is
// the prerequisite for holding a ticket.
type Enrollment struct {
	ID        int64
	UserID    int64
	Name      string
	CPF       string
	Birthday  time.Time
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
