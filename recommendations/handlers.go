package recommendations

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shipekarrohit/backend-project/apperror"
	"github.com/shipekarrohit/backend-project/auth"
	"github.com/shipekarrohit/backend-project/courses"
)

// Recommender is the surface the handler depends on; Service implements it.
type Recommender interface {
	ForUser(ctx context.Context, userID int64) ([]courses.Course, error)
}

// Handlers serves the recommendation endpoint.
type Handlers struct {
	service Recommender
}

// NewHandlers creates new recommendation Handlers.
func NewHandlers(service Recommender) *Handlers {
	return &Handlers{service: service}
}

// HandleGetRecommendations godoc
// @Summary Get course recommendations for a user
// @Description Returns up to five courses not created by the given user.
// @Tags Recommendations
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} auth.Envelope "Recommendations fetched"
// @Failure 401 {object} auth.Envelope "Missing or invalid token"
// @Failure 404 {object} auth.Envelope "User not found"
// @Failure 500 {object} auth.Envelope "Internal Server Error"
// @Router /api/recommendations/{userId} [get]
func (h *Handlers) HandleGetRecommendations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "userId")
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid user id", nil))
			return
		}

		recommended, err := h.service.ForUser(r.Context(), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusOK, "Recommendations fetched successfully.", map[string]any{
			"userId":             userID,
			"recommendedCourses": recommended,
			"count":              len(recommended),
		})
	}
}
