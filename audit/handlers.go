package audit

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shipekarrohit/backend-project/auth"
)

// Lister is the read surface the handlers depend on; LogService implements
// it and tests stub it.
type Lister interface {
	List(ctx context.Context, page, limit int) ([]Entry, Pagination, error)
}

// Handlers serves the log listing endpoint.
type Handlers struct {
	service Lister
}

// NewHandlers creates new log Handlers.
func NewHandlers(service Lister) *Handlers {
	return &Handlers{service: service}
}

// HandleListLogs godoc
// @Summary List audit logs
// @Description Returns a page of audit log entries, newest first. Teacher role required.
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} auth.Envelope "Logs fetched"
// @Failure 401 {object} auth.Envelope "Missing or invalid token"
// @Failure 403 {object} auth.Envelope "Insufficient permissions"
// @Failure 500 {object} auth.Envelope "Internal Server Error"
// @Router /api/logs [get]
func (h *Handlers) HandleListLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 1)
		limit := queryInt(r, "limit", 50)

		entries, pagination, err := h.service.List(r.Context(), page, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusOK, "", map[string]any{
			"logs":       entries,
			"pagination": pagination,
		})
	}
}

// queryInt parses a positive integer query parameter, falling back to the
// default on absence or garbage.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
