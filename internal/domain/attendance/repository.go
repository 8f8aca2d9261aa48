package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// (user_id, date) is unique at the store level; writes that would break it
// return ErrRecordConflict.
type AttendanceRepository interface {
	// GetByUserAndDate returns the record for a civil day, or nil when none exists
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// GetOpenByUserAndDate returns the record with check-in set and check-out unset, or nil
	GetOpenByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// Create inserts a new record; ErrRecordConflict when the day already has one
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// RecordCheckIn fills the check-in fields of an existing record that has none yet
	RecordCheckIn(ctx context.Context, attendance Attendance) (Attendance, error)

	// RecordCheckOut closes an open record; ErrRecordConflict when it is no longer open
	RecordCheckOut(ctx context.Context, id string, checkOut time.Time, durationMinutes int) (Attendance, error)

	// ListByUser returns the most recent records first
	ListByUser(ctx context.Context, userID string, limit int) ([]Attendance, error)

	// CountByUser counts records in the given statuses, optionally from a civil day onwards
	CountByUser(ctx context.Context, userID string, statuses []Status, since *time.Time) (int64, error)

	// ProvisionDay inserts a placeholder record for every active intern without one
	ProvisionDay(ctx context.Context, date time.Time, status Status, now time.Time) (int64, error)
}
