package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/pim-intern/attendance-backend/internal/domain/activitylog"
	"github.com/pim-intern/attendance-backend/internal/domain/attendance"
	"github.com/pim-intern/attendance-backend/internal/pkg/civiltime"
	"github.com/pim-intern/attendance-backend/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// distanceTolerance absorbs floating point noise so a position exactly on the
// geofence boundary is accepted.
const distanceTolerance = 1e-6

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	policy   attendance.Policy
	clock    *civiltime.Resolver
	recorder activitylog.Recorder
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	policy attendance.Policy,
	clock *civiltime.Resolver,
	recorder activitylog.Recorder,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		policy:               policy,
		clock:                clock,
		recorder:             recorder,
	}
}

// now returns civil time at second precision, the resolution rows are kept at.
func (a *AttendanceServiceImpl) now() time.Time {
	return a.clock.Now().Truncate(time.Second)
}

// distanceTo measures the submitted position against the office.
func (a *AttendanceServiceImpl) distanceTo(lat, lon float64) (float64, error) {
	return utils.CalculateHaversineDistance(lat, lon, a.policy.Office.Latitude, a.policy.Office.Longitude)
}

func (a *AttendanceServiceImpl) withinRadius(distance float64) bool {
	return distance <= float64(a.policy.MaxDistanceMeters)+distanceTolerance
}

func (a *AttendanceServiceImpl) outOfRange(distance, lat, lon float64) *attendance.OutOfRangeError {
	return &attendance.OutOfRangeError{
		Distance:       int(math.Round(distance)),
		MaxDistance:    a.policy.MaxDistanceMeters,
		UserLocation:   attendance.Coordinate{Latitude: lat, Longitude: lon},
		OfficeLocation: a.policy.Office,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	lat, lon := *req.Latitude, *req.Longitude

	now := a.now()
	today := civiltime.StartOfDay(now)

	if !a.policy.CheckInOpen(now) {
		return attendance.AttendanceResponse{}, attendance.NewCheckInWindowError(now, a.policy.CheckInOpenHour, a.clock.Label())
	}

	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing != nil && existing.HasCheckedIn() {
		return attendance.AttendanceResponse{}, &attendance.DuplicateError{ExistingCheckIn: existing.CheckIn}
	}

	distance, err := a.distanceTo(lat, lon)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to calculate distance: %w", err)
	}
	if !a.withinRadius(distance) {
		return attendance.AttendanceResponse{}, a.outOfRange(distance, lat, lon)
	}

	status := a.policy.StatusAt(now)
	rounded := int(math.Round(distance))
	location := fmt.Sprintf("%s (%.6f, %.6f)", a.policy.Office.Name, lat, lon)

	data := attendance.Attendance{
		UserID:    req.UserID,
		Date:      today,
		CheckIn:   &now,
		Location:  &location,
		Latitude:  &lat,
		Longitude: &lon,
		Distance:  &rounded,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var saved attendance.Attendance
	if existing != nil {
		// Placeholder row for the day (e.g. provisioned), fill in the check-in
		data.ID = existing.ID
		saved, err = a.AttendanceRepository.RecordCheckIn(ctx, data)
	} else {
		saved, err = a.AttendanceRepository.Create(ctx, data)
	}
	if err != nil {
		if errors.Is(err, attendance.ErrRecordConflict) {
			// A concurrent request won the race for this day
			return attendance.AttendanceResponse{}, &attendance.DuplicateError{}
		}
		slog.Error("check-in persistence failed", "user_id", req.UserID, "error", err)
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to save check-in: %w", err)
	}

	clock := civiltime.Clock(now)
	zone := a.clock.Label()

	statusText := "ON TIME"
	if status == attendance.StatusLate {
		statusText = "LATE"
	}
	a.recorder.Record(ctx, req.UserID, activitylog.ActionCheckIn,
		fmt.Sprintf("Checked in at %s %s - %s - Distance: %dm", clock, zone, statusText, rounded))

	resp := attendance.NewAttendanceResponse(saved)
	if status == attendance.StatusLate {
		resp.Message = fmt.Sprintf("Check-in successful (LATE)! Time: %s %s. Distance: %d meters", clock, zone, rounded)
	} else {
		resp.Message = fmt.Sprintf("Check-in successful! Time: %s %s. Distance: %d meters", clock, zone, rounded)
	}
	return resp, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	lat, lon := *req.Latitude, *req.Longitude

	now := a.now()
	today := civiltime.StartOfDay(now)

	if !a.policy.CheckOutOpen(now) {
		return attendance.AttendanceResponse{}, attendance.NewCheckOutWindowError(now, a.policy.CheckOutOpenHour, a.clock.Label())
	}

	open, err := a.AttendanceRepository.GetOpenByUserAndDate(ctx, req.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get open attendance: %w", err)
	}
	if open == nil {
		return attendance.AttendanceResponse{}, &attendance.StateError{}
	}

	distance, err := a.distanceTo(lat, lon)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to calculate distance: %w", err)
	}
	if !a.withinRadius(distance) {
		return attendance.AttendanceResponse{}, a.outOfRange(distance, lat, lon)
	}

	duration := int(now.Sub(*open.CheckIn) / time.Minute)
	if duration < 0 {
		duration = 0
	}

	saved, err := a.AttendanceRepository.RecordCheckOut(ctx, open.ID, now, duration)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordConflict) {
			return attendance.AttendanceResponse{}, &attendance.StateError{Reason: "already checked out"}
		}
		slog.Error("check-out persistence failed", "user_id", req.UserID, "attendance_id", open.ID, "error", err)
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to save check-out: %w", err)
	}

	hours, minutes := duration/60, duration%60
	a.recorder.Record(ctx, req.UserID, activitylog.ActionCheckOut,
		fmt.Sprintf("Checked out at %s %s - Duration: %dh %dm", civiltime.Clock(now), a.clock.Label(), hours, minutes))

	resp := attendance.NewAttendanceResponse(saved)
	resp.Message = fmt.Sprintf("Check-out successful! Work duration: %d hours %d minutes", hours, minutes)
	return resp, nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, userID string) (*attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, a.clock.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	resp := attendance.NewAttendanceResponse(*record)
	return &resp, nil
}

// GetHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetHistory(ctx context.Context, userID string, filter attendance.HistoryFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.ListByUser(ctx, userID, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.NewAttendanceResponse(r))
	}
	return responses, nil
}

var (
	presentStatuses = []attendance.Status{attendance.StatusPresent, attendance.StatusLate}
	leaveStatuses   = []attendance.Status{attendance.StatusLeave, attendance.StatusSick}
)

// GetStats implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetStats(ctx context.Context, userID string) (attendance.StatsResponse, error) {
	var stats attendance.StatsResponse
	monthStart := civiltime.StartOfMonth(a.clock.Now())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := a.AttendanceRepository.CountByUser(gctx, userID, presentStatuses, nil)
		if err != nil {
			return fmt.Errorf("failed to count present days: %w", err)
		}
		stats.TotalPresent = n
		return nil
	})
	g.Go(func() error {
		n, err := a.AttendanceRepository.CountByUser(gctx, userID, leaveStatuses, nil)
		if err != nil {
			return fmt.Errorf("failed to count leave days: %w", err)
		}
		stats.TotalLeave = n
		return nil
	})
	g.Go(func() error {
		n, err := a.AttendanceRepository.CountByUser(gctx, userID, presentStatuses, &monthStart)
		if err != nil {
			return fmt.Errorf("failed to count monthly present days: %w", err)
		}
		stats.MonthlyPresent = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return attendance.StatsResponse{}, err
	}
	return stats, nil
}

// GetOfficeLocation implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetOfficeLocation(ctx context.Context) attendance.OfficeLocationResponse {
	return attendance.OfficeLocationResponse{
		Latitude:    a.policy.Office.Latitude,
		Longitude:   a.policy.Office.Longitude,
		Name:        a.policy.Office.Name,
		MaxDistance: a.policy.MaxDistanceMeters,
	}
}
