package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pim-intern/attendance-backend/internal/domain/attendance"
	"github.com/pim-intern/attendance-backend/internal/domain/auth"
	"github.com/pim-intern/attendance-backend/internal/domain/user"
	"github.com/pim-intern/attendance-backend/internal/handler/http/middleware"
	"github.com/pim-intern/attendance-backend/internal/handler/http/response"
	"github.com/pim-intern/attendance-backend/internal/pkg/validator"
)

type AttendanceHandler interface {
	OfficeLocation(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// actingUser resolves the user a write is recorded for. An empty id means
// the caller; acting for someone else needs PermissionAttendanceManage.
func actingUser(r *http.Request, requested string) (string, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return "", auth.ErrInvalidToken
	}
	if requested == "" || requested == claims.UserID {
		return claims.UserID, nil
	}
	if !user.HasPermission(claims.Role, user.PermissionAttendanceManage) {
		return "", user.ErrActingForOtherUser
	}
	return requested, nil
}

// viewedUser checks that the caller may read the records of userID.
func viewedUser(r *http.Request) (string, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return "", auth.ErrInvalidToken
	}
	userID := chi.URLParam(r, "userID")
	if userID == "" || userID == claims.UserID {
		return claims.UserID, nil
	}
	if !user.HasPermission(claims.Role, user.PermissionAttendanceViewAll) {
		return "", user.ErrInsufficientPermissions
	}
	return userID, nil
}

// OfficeLocation implements AttendanceHandler.
func (h *attendanceHandlerImpl) OfficeLocation(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.attendanceService.GetOfficeLocation(r.Context()))
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, err := actingUser(r, req.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.UserID = userID

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, err := actingUser(r, req.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.UserID = userID

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	userID, err := viewedUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetToday(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// nil data means no record yet for today
	response.Success(w, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	userID, err := viewedUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var filter attendance.HistoryFilter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			response.HandleError(w, validator.ValidationErrors{{Field: "limit", Message: "limit must be a number"}})
			return
		}
		filter.Limit = limit
	}

	result, err := h.attendanceService.GetHistory(r.Context(), userID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{Limit: filter.Limit, TotalItems: int64(len(result))})
}

// Stats implements AttendanceHandler.
func (h *attendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	userID, err := viewedUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetStats(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
