package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pim-intern/attendance-backend/internal/domain/attendance"
	"github.com/pim-intern/attendance-backend/internal/pkg/civiltime"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	clock          *civiltime.Resolver
	interval       time.Duration
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, clock *civiltime.Resolver, interval time.Duration) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		clock:          clock,
		interval:       interval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("provision_daily_attendance", j.interval, j.ProvisionDailyAttendance)
}

// ProvisionDailyAttendance creates an ABSENT placeholder for each active
// intern without a record for the current civil day. Check-in later fills it.
func (j *AttendanceJobs) ProvisionDailyAttendance(ctx context.Context) error {
	now := j.clock.Now().Truncate(time.Second)
	today := civiltime.StartOfDay(now)

	created, err := j.attendanceRepo.ProvisionDay(ctx, today, attendance.StatusAbsent, now)
	if err != nil {
		return fmt.Errorf("failed to provision attendance for %s: %w", today.Format(attendance.DateLayout), err)
	}

	if created > 0 {
		slog.Info("cron: provisioned daily attendance",
			"date", today.Format(attendance.DateLayout),
			"count", created,
		)
	}
	return nil
}
