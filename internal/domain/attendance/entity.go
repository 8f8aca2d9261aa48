package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusAbsent  Status = "ABSENT"
	StatusLeave   Status = "LEAVE"
	StatusSick    Status = "SICK"
)

// Attendance is the single record of a user for one civil day.
// Date, CheckIn, CheckOut, CreatedAt and UpdatedAt hold civil wall-clock
// values (see package civiltime).
type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	CheckIn   *time.Time
	CheckOut  *time.Time
	Location  *string
	Latitude  *float64
	Longitude *float64
	Distance  *int
	Duration  *int
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCheckedIn reports whether the check-in half of the record is set.
func (a *Attendance) HasCheckedIn() bool {
	return a.CheckIn != nil
}

// IsOpen reports whether the record is checked in but not yet checked out.
func (a *Attendance) IsOpen() bool {
	return a.CheckIn != nil && a.CheckOut == nil
}
