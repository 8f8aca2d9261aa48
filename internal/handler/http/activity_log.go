package http

import (
	"net/http"
	"strconv"

	"github.com/pim-intern/attendance-backend/internal/domain/activitylog"
	"github.com/pim-intern/attendance-backend/internal/handler/http/response"
	"github.com/pim-intern/attendance-backend/internal/pkg/validator"
)

type ActivityLogHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type activityLogHandlerImpl struct {
	activityLogService activitylog.Service
}

func NewActivityLogHandler(activityLogService activitylog.Service) ActivityLogHandler {
	return &activityLogHandlerImpl{
		activityLogService: activityLogService,
	}
}

func optionalQuery(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

// List implements ActivityLogHandler.
func (h *activityLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := activitylog.ListFilter{
		Search:      optionalQuery(r, "search"),
		Role:        optionalQuery(r, "role"),
		ActionGroup: optionalQuery(r, "action"),
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			response.HandleError(w, validator.ValidationErrors{{Field: "limit", Message: "limit must be a number"}})
			return
		}
		filter.Limit = limit
	}

	result, err := h.activityLogService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: int64(len(result))})
}

// Stats implements ActivityLogHandler.
func (h *activityLogHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.activityLogService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
