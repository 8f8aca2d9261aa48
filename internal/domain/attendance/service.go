package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn validates time window, duplicate and geofence, then records arrival
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's open record and computes the duration
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetToday returns the user's record for the current civil day, or nil
	GetToday(ctx context.Context, userID string) (*AttendanceResponse, error)

	// GetHistory returns the user's latest records
	GetHistory(ctx context.Context, userID string, filter HistoryFilter) ([]AttendanceResponse, error)

	// GetStats returns presence and leave counters for the user
	GetStats(ctx context.Context, userID string) (StatsResponse, error)

	// GetOfficeLocation returns the configured geofence
	GetOfficeLocation(ctx context.Context) OfficeLocationResponse
}
