package courses

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/shipekarrohit/backend-project/apperror"
	"github.com/shipekarrohit/backend-project/auth"
)

// Service is the business-logic surface the handlers depend on.
// CourseService is the production implementation; tests provide stubs.
type Service interface {
	Create(ctx context.Context, userID int64, req CreateCourseRequest) (*Course, error)
	List(ctx context.Context) ([]Course, error)
	Get(ctx context.Context, id int64) (*Course, error)
	Update(ctx context.Context, id, userID int64, req UpdateCourseRequest) (*Course, error)
	Delete(ctx context.Context, id, userID int64) error
}

// Handlers wraps the course Service with HTTP endpoints.
type Handlers struct {
	service  Service
	audit    auth.ActionRecorder
	validate *validator.Validate
}

// NewHandlers creates new course Handlers.
func NewHandlers(service Service, audit auth.ActionRecorder) *Handlers {
	return &Handlers{
		service:  service,
		audit:    audit,
		validate: validator.New(),
	}
}

// courseID parses the {id} route parameter.
func courseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewBadRequestError("invalid course id", nil)
	}
	return id, nil
}

// HandleCreate godoc
// @Summary Create a course
// @Description Creates a course owned by the authenticated teacher.
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseBody body courses.CreateCourseRequest true "Course details"
// @Success 201 {object} auth.Envelope "Course created"
// @Failure 400 {object} auth.Envelope "Invalid input"
// @Failure 401 {object} auth.Envelope "Missing or invalid token"
// @Failure 403 {object} auth.Envelope "Insufficient permissions"
// @Failure 500 {object} auth.Envelope "Internal Server Error"
// @Router /api/courses [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Authentication required.", nil))
			return
		}

		var req CreateCourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			auth.WriteValidationFailure(w, err)
			return
		}

		course, err := h.service.Create(r.Context(), principal.ID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		h.audit.Record(&principal.ID, "course_created", "success")

		auth.WriteSuccess(w, http.StatusCreated, "Course created successfully.", map[string]any{"course": course})
	}
}

// HandleList godoc
// @Summary List courses
// @Description Returns all courses with their creators, newest first. Public.
// @Tags Courses
// @Produce json
// @Success 200 {object} auth.Envelope "Courses fetched"
// @Failure 500 {object} auth.Envelope "Internal Server Error"
// @Router /api/courses [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusOK, "", map[string]any{
			"count":   len(list),
			"courses": list,
		})
	}
}

// HandleGet godoc
// @Summary Get a course
// @Description Returns a single course by id. Public.
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} auth.Envelope "Course fetched"
// @Failure 404 {object} auth.Envelope "Course not found"
// @Failure 500 {object} auth.Envelope "Internal Server Error"
// @Router /api/courses/{id} [get]
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := courseID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		course, err := h.service.Get(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusOK, "", map[string]any{"course": course})
	}
}

// HandleUpdate godoc
// @Summary Update a course
// @Description Applies a partial update. Only the course's creator may update it.
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param courseBody body courses.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} auth.Envelope "Course updated"
// @Failure 400 {object} auth.Envelope "Invalid input"
// @Failure 401 {object} auth.Envelope "Missing or invalid token"
// @Failure 403 {object} auth.Envelope "Not the course owner"
// @Failure 404 {object} auth.Envelope "Course not found"
// @Failure 500 {object} auth.Envelope "Internal Server Error"
// @Router /api/courses/{id} [put]
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Authentication required.", nil))
			return
		}

		id, err := courseID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req UpdateCourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			auth.WriteValidationFailure(w, err)
			return
		}

		course, err := h.service.Update(r.Context(), id, principal.ID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		h.audit.Record(&principal.ID, "course_updated", "success")

		auth.WriteSuccess(w, http.StatusOK, "Course updated successfully.", map[string]any{"course": course})
	}
}

// HandleDelete godoc
// @Summary Delete a course
// @Description Deletes a course. Only the course's creator may delete it.
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} auth.Envelope "Course deleted"
// @Failure 401 {object} auth.Envelope "Missing or invalid token"
// @Failure 403 {object} auth.Envelope "Not the course owner"
// @Failure 404 {object} auth.Envelope "Course not found"
// @Failure 500 {object} auth.Envelope "Internal Server Error"
// @Router /api/courses/{id} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Authentication required.", nil))
			return
		}

		id, err := courseID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if err := h.service.Delete(r.Context(), id, principal.ID); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		h.audit.Record(&principal.ID, "course_deleted", "success")

		auth.WriteSuccess(w, http.StatusOK, "Course deleted successfully.", nil)
	}
}
