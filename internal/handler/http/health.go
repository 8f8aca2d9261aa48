package http

import (
	"context"
	"net/http"
	"time"

	"github.com/pim-intern/attendance-backend/internal/handler/http/response"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	version string
}

func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			response.InternalServerError(w, "Database unavailable")
			return
		}
	}

	response.SuccessWithMessage(w, "API Server is running", map[string]string{
		"status":  "OK",
		"version": h.version,
	})
}
