package activitylog

import (
	"strings"
	"time"

	"github.com/pim-intern/attendance-backend/internal/pkg/validator"
)

// ListFilter mirrors the query parameters of the activity log page.
type ListFilter struct {
	Search      *string `json:"search,omitempty"`
	Role        *string `json:"role,omitempty"`
	ActionGroup *string `json:"action,omitempty"`
	Limit       int     `json:"limit"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 100
	}
	if f.Limit > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 500",
		})
	}

	if f.Role != nil && strings.EqualFold(*f.Role, "all") {
		f.Role = nil
	}
	if f.Role != nil {
		upper := strings.ToUpper(*f.Role)
		f.Role = &upper
	}

	if f.ActionGroup != nil && strings.EqualFold(*f.ActionGroup, "all") {
		f.ActionGroup = nil
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Actions resolves the action group of the filter. Unknown groups yield nil,
// which applies no action filter.
func (f *ListFilter) Actions() []Action {
	if f.ActionGroup == nil {
		return nil
	}
	return ActionGroups[strings.ToLower(*f.ActionGroup)]
}

// CountFilter narrows Count; zero values mean no restriction.
type CountFilter struct {
	Actions []Action
	From    *time.Time
	Until   *time.Time
}

type ActivityLogResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	UserName    *string `json:"user_name,omitempty"`
	UserRole    *string `json:"user_role,omitempty"`
	Action      string  `json:"action"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

type StatsResponse struct {
	Total        int64 `json:"total"`
	TodayCount   int64 `json:"today_count"`
	SuccessCount int64 `json:"success_count"`
	PendingCount int64 `json:"pending_count"`
}
