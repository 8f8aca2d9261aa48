package activitylog

import "time"

type Action string

const (
	ActionLogin           Action = "LOGIN"
	ActionCheckIn         Action = "CHECK_IN"
	ActionCheckOut        Action = "CHECK_OUT"
	ActionLeaveRequest    Action = "LEAVE_REQUEST"
	ActionReportSubmitted Action = "REPORT_SUBMITTED"
	ActionReportReviewed  Action = "REPORT_REVIEWED"
	ActionReportApproved  Action = "REPORT_APPROVED"
	ActionReportRevision  Action = "REPORT_REVISION"
	ActionUserCreated     Action = "USER_CREATED"
	ActionUserUpdated     Action = "USER_UPDATED"
	ActionPasswordChanged Action = "PASSWORD_CHANGED"
)

// ActionGroups maps the filter names used by the activity page to actions.
var ActionGroups = map[string][]Action{
	"absen":   {ActionCheckIn, ActionCheckOut},
	"izin":    {ActionLeaveRequest},
	"laporan": {ActionReportSubmitted, ActionReportReviewed, ActionReportApproved, ActionReportRevision},
	"login":   {ActionLogin},
	"user":    {ActionUserCreated, ActionUserUpdated, ActionPasswordChanged},
}

// SuccessActions are counted as completed activities in the statistics.
var SuccessActions = []Action{
	ActionCheckIn,
	ActionCheckOut,
	ActionLogin,
	ActionUserCreated,
	ActionReportSubmitted,
	ActionReportApproved,
	ActionPasswordChanged,
}

// PendingActions are counted as activities still awaiting follow-up.
var PendingActions = []Action{
	ActionLeaveRequest,
	ActionReportReviewed,
	ActionReportRevision,
}

// ActivityLog is an append-only audit entry. CreatedAt is civil time.
type ActivityLog struct {
	ID          string
	UserID      string
	Action      Action
	Description string
	CreatedAt   time.Time

	// Join
	UserName *string
	UserRole *string
}
