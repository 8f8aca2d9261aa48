package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pim-intern/attendance-backend/internal/domain/attendance"
	"github.com/pim-intern/attendance-backend/internal/pkg/civiltime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// provisionRecorder only implements ProvisionDay; other methods are unused by the job.
type provisionRecorder struct {
	attendance.AttendanceRepository

	date   time.Time
	status attendance.Status
	now    time.Time
	err    error
}

func (p *provisionRecorder) ProvisionDay(ctx context.Context, date time.Time, status attendance.Status, now time.Time) (int64, error) {
	p.date, p.status, p.now = date, status, now
	return 3, p.err
}

func TestProvisionDailyAttendance(t *testing.T) {
	// 18:30 UTC on Aug 4 is 01:30 WIB on Aug 5
	instant := time.Date(2025, time.August, 4, 18, 30, 0, 0, time.UTC)
	clock := civiltime.NewResolver(7, func() time.Time { return instant })
	repo := &provisionRecorder{}

	jobs := NewAttendanceJobs(repo, clock, time.Hour)
	require.NoError(t, jobs.ProvisionDailyAttendance(context.Background()))

	assert.Equal(t, time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC), repo.date)
	assert.Equal(t, attendance.StatusAbsent, repo.status)
	assert.Equal(t, time.Date(2025, time.August, 5, 1, 30, 0, 0, time.UTC), repo.now)
}

func TestProvisionDailyAttendance_Error(t *testing.T) {
	clock := civiltime.NewResolver(7, nil)
	repo := &provisionRecorder{err: errors.New("db down")}

	err := NewAttendanceJobs(repo, clock, time.Hour).ProvisionDailyAttendance(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestAttendanceJobs_Register(t *testing.T) {
	s := NewScheduler()
	NewAttendanceJobs(&provisionRecorder{}, civiltime.NewResolver(7, nil), 30*time.Minute).RegisterJobs(s)

	require.Len(t, s.jobs, 1)
	assert.Equal(t, "provision_daily_attendance", s.jobs[0].Name)
	assert.Equal(t, 30*time.Minute, s.jobs[0].Interval)
}
