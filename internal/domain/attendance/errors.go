package attendance

import (
	"errors"
	"fmt"
	"time"
)

// Attendance domain errors
var (
	// Check-in errors
	ErrCheckInNotOpen   = errors.New("check-in is not open yet")
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")

	// Check-out errors
	ErrCheckOutNotOpen = errors.New("check-out is not open yet")
	ErrNotCheckedIn    = errors.New("not checked in or already checked out today")

	// Shared
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed radius")

	// Store errors
	ErrRecordConflict     = errors.New("attendance record conflict")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// TimeWindowError rejects an action attempted before its window opens.
type TimeWindowError struct {
	Action      string
	CurrentTime string
	MinTime     string
	Zone        string
	sentinel    error
}

func NewCheckInWindowError(now time.Time, openHour int, zone string) *TimeWindowError {
	return &TimeWindowError{
		Action:      "check-in",
		CurrentTime: now.Format("15:04"),
		MinTime:     fmt.Sprintf("%d:00", openHour),
		Zone:        zone,
		sentinel:    ErrCheckInNotOpen,
	}
}

func NewCheckOutWindowError(now time.Time, openHour int, zone string) *TimeWindowError {
	return &TimeWindowError{
		Action:      "check-out",
		CurrentTime: now.Format("15:04"),
		MinTime:     fmt.Sprintf("%d:00", openHour),
		Zone:        zone,
		sentinel:    ErrCheckOutNotOpen,
	}
}

func (e *TimeWindowError) Error() string {
	return fmt.Sprintf("%s opens at %s %s, current time is %s %s", e.Action, e.MinTime, e.Zone, e.CurrentTime, e.Zone)
}

func (e *TimeWindowError) Unwrap() error { return e.sentinel }

func (e *TimeWindowError) Details() map[string]interface{} {
	return map[string]interface{}{
		"current_time": e.CurrentTime,
		"min_time":     e.MinTime,
		"zone":         e.Zone,
	}
}

// DuplicateError rejects a second check-in on the same civil day.
type DuplicateError struct {
	ExistingCheckIn *time.Time
}

func (e *DuplicateError) Error() string { return ErrAlreadyCheckedIn.Error() }

func (e *DuplicateError) Unwrap() error { return ErrAlreadyCheckedIn }

func (e *DuplicateError) Details() map[string]interface{} {
	if e.ExistingCheckIn == nil {
		return nil
	}
	return map[string]interface{}{
		"existing_check_in": e.ExistingCheckIn.Format(DateTimeLayout),
	}
}

// OutOfRangeError rejects a position outside the geofence.
type OutOfRangeError struct {
	Distance       int
	MaxDistance    int
	UserLocation   Coordinate
	OfficeLocation OfficeLocation
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("location too far from office: %d meters, maximum %d meters", e.Distance, e.MaxDistance)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutsideAllowedRadius }

func (e *OutOfRangeError) Details() map[string]interface{} {
	return map[string]interface{}{
		"distance":        e.Distance,
		"max_distance":    e.MaxDistance,
		"user_location":   e.UserLocation,
		"office_location": e.OfficeLocation,
	}
}

// StateError rejects a check-out without an open record for the day.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string {
	if e.Reason != "" {
		return ErrNotCheckedIn.Error() + ": " + e.Reason
	}
	return ErrNotCheckedIn.Error()
}

func (e *StateError) Unwrap() error { return ErrNotCheckedIn }
