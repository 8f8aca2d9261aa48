package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pim-intern/attendance-backend/internal/domain/attendance"
	"github.com/pim-intern/attendance-backend/internal/domain/auth"
	"github.com/pim-intern/attendance-backend/internal/domain/user"
	"github.com/pim-intern/attendance-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decoded struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func handle(t *testing.T, err error) (int, decoded) {
	t.Helper()
	rec := httptest.NewRecorder()
	HandleError(rec, err)

	var body decoded
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHandleError_Validation(t *testing.T) {
	status, body := handle(t, validator.ValidationErrors{{Field: "latitude", Message: "latitude is required"}})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "latitude is required", body.Error.Details["latitude"])
}

func TestHandleError_AttendanceRejections(t *testing.T) {
	now := time.Date(2025, time.August, 4, 7, 30, 0, 0, time.UTC)
	checkIn := time.Date(2025, time.August, 4, 8, 5, 0, 0, time.UTC)

	cases := []struct {
		name    string
		err     error
		code    string
		details []string
	}{
		{"time window", attendance.NewCheckInWindowError(now, 8, "WIB"), "TIME_WINDOW", []string{"current_time", "min_time"}},
		{"duplicate", &attendance.DuplicateError{ExistingCheckIn: &checkIn}, "DUPLICATE", []string{"existing_check_in"}},
		{"out of range", &attendance.OutOfRangeError{Distance: 120, MaxDistance: 50}, "OUT_OF_RANGE", []string{"distance", "max_distance", "user_location", "office_location"}},
		{"state", &attendance.StateError{}, "INVALID_STATE", nil},
		{"wrapped duplicate", fmt.Errorf("check-in: %w", &attendance.DuplicateError{}), "DUPLICATE", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := handle(t, tc.err)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tc.code, body.Error.Code)
			for _, key := range tc.details {
				assert.Contains(t, body.Error.Details, key)
			}
		})
	}
}

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrAccountInactive, http.StatusForbidden},
		{user.ErrActingForOtherUser, http.StatusForbidden},
		{fmt.Errorf("create: %w", user.ErrUserNotFound), http.StatusNotFound},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		status, _ := handle(t, tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
	}
}

func TestHandleError_InternalHidesCause(t *testing.T) {
	_, body := handle(t, errors.New("pq: password authentication failed"))

	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "password")
}
