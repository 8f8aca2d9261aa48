package activitylog

import "context"

// Recorder is the write side used by other services. Record never fails the
// caller: persistence happens asynchronously and errors are only logged.
type Recorder interface {
	Record(ctx context.Context, userID string, action Action, description string)
}

type Service interface {
	Recorder

	// List retrieves entries for the activity page (admin/supervisor)
	List(ctx context.Context, filter ListFilter) ([]ActivityLogResponse, error)

	// Stats returns the counters shown on the activity page
	Stats(ctx context.Context) (StatsResponse, error)
}
