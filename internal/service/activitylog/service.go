package activitylog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pim-intern/attendance-backend/internal/domain/activitylog"
	"github.com/pim-intern/attendance-backend/internal/pkg/civiltime"
	"golang.org/x/sync/errgroup"
)

// recordTimeout bounds a single background write.
const recordTimeout = 5 * time.Second

type ActivityLogServiceImpl struct {
	activitylog.Repository
	clock *civiltime.Resolver
	wg    sync.WaitGroup
}

func NewActivityLogService(repo activitylog.Repository, clock *civiltime.Resolver) *ActivityLogServiceImpl {
	return &ActivityLogServiceImpl{
		Repository: repo,
		clock:      clock,
	}
}

// Record implements activitylog.Recorder. The entry is written in the
// background and detached from ctx cancellation; failures are logged only.
func (s *ActivityLogServiceImpl) Record(ctx context.Context, userID string, action activitylog.Action, description string) {
	entry := activitylog.ActivityLog{
		UserID:      userID,
		Action:      action,
		Description: description,
		CreatedAt:   s.clock.Now().Truncate(time.Second),
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
		defer cancel()

		if err := s.Repository.Create(writeCtx, entry); err != nil {
			slog.Warn("failed to record activity",
				"user_id", userID,
				"action", string(action),
				"error", err,
			)
		}
	}()
}

// Wait blocks until all background writes have finished.
func (s *ActivityLogServiceImpl) Wait() {
	s.wg.Wait()
}

// List implements activitylog.Service.
func (s *ActivityLogServiceImpl) List(ctx context.Context, filter activitylog.ListFilter) ([]activitylog.ActivityLogResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	logs, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}

	responses := make([]activitylog.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, activitylog.ActivityLogResponse{
			ID:          l.ID,
			UserID:      l.UserID,
			UserName:    l.UserName,
			UserRole:    l.UserRole,
			Action:      string(l.Action),
			Description: l.Description,
			CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return responses, nil
}

// Stats implements activitylog.Service.
func (s *ActivityLogServiceImpl) Stats(ctx context.Context) (activitylog.StatsResponse, error) {
	var stats activitylog.StatsResponse

	today := s.clock.Today()
	tomorrow := today.AddDate(0, 0, 1)

	counts := []struct {
		filter activitylog.CountFilter
		dst    *int64
	}{
		{activitylog.CountFilter{}, &stats.Total},
		{activitylog.CountFilter{From: &today, Until: &tomorrow}, &stats.TodayCount},
		{activitylog.CountFilter{Actions: activitylog.SuccessActions}, &stats.SuccessCount},
		{activitylog.CountFilter{Actions: activitylog.PendingActions}, &stats.PendingCount},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range counts {
		g.Go(func() error {
			n, err := s.Repository.Count(gctx, c.filter)
			if err != nil {
				return fmt.Errorf("failed to count activity logs: %w", err)
			}
			*c.dst = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return activitylog.StatsResponse{}, err
	}
	return stats, nil
}

var _ activitylog.Service = (*ActivityLogServiceImpl)(nil)
