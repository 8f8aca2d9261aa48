package activitylog

import "context"

type Repository interface {
	// Create appends an entry
	Create(ctx context.Context, log ActivityLog) error

	// List returns entries newest first, joined with the actor's name and role
	List(ctx context.Context, filter ListFilter) ([]ActivityLog, error)

	// Count counts entries matching the filter
	Count(ctx context.Context, filter CountFilter) (int64, error)
}
