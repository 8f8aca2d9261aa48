package attendance

import (
	"time"

	"github.com/pim-intern/attendance-backend/internal/pkg/validator"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	UserID    string   `json:"user_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *CheckInRequest) Validate() error {
	return validateLocationRequest(r.UserID, r.Latitude, r.Longitude)
}

type CheckOutRequest struct {
	UserID    string   `json:"user_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *CheckOutRequest) Validate() error {
	return validateLocationRequest(r.UserID, r.Latitude, r.Longitude)
}

func validateLocationRequest(userID string, lat, lon *float64) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(userID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if lat == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude is required",
		})
	} else if !validator.IsValidLatitude(*lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be a number between -90 and 90",
		})
	}

	if lon == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude is required",
		})
	} else if !validator.IsValidLongitude(*lon) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be a number between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	Date      string   `json:"date"`
	CheckIn   *string  `json:"check_in,omitempty"`
	CheckOut  *string  `json:"check_out,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Distance  *int     `json:"distance,omitempty"`
	Duration  *int     `json:"duration,omitempty"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`

	// Confirmation text for check-in/check-out
	Message string `json:"-"`
}

// NewAttendanceResponse maps an entity to its response form.
func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Date:      a.Date.Format(DateLayout),
		CheckIn:   formatTimePtr(a.CheckIn),
		CheckOut:  formatTimePtr(a.CheckOut),
		Location:  a.Location,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		Distance:  a.Distance,
		Duration:  a.Duration,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.Format(DateTimeLayout),
		UpdatedAt: a.UpdatedAt.Format(DateTimeLayout),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateTimeLayout)
	return &s
}

type HistoryFilter struct {
	Limit int `json:"limit"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 10 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatsResponse struct {
	TotalPresent   int64 `json:"total_present"`
	TotalLeave     int64 `json:"total_leave"`
	MonthlyPresent int64 `json:"monthly_present"`
}

type OfficeLocationResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Name        string  `json:"name"`
	MaxDistance int     `json:"max_distance"`
}
