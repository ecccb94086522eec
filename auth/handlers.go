// HTTP handlers for the auth endpoints. Thin request/response translators:
// decode, validate, delegate to the service, map the outcome into the
// envelope, and record an audit entry once the primary outcome is known.
package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/shipekarrohit/backend-project/apperror"
)

// Service is the business-logic surface the handlers depend on. AuthService
// is the production implementation; tests provide stubs.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, error)
	GetProfile(ctx context.Context, userID int64) (*User, error)
}

// ActionRecorder is the audit sink the handlers notify on successful
// mutations. Recording is best-effort; the implementation must never surface
// a failure back into the request path.
type ActionRecorder interface {
	Record(userID *int64, action, result string)
}

// Handlers wraps the auth Service with HTTP endpoints.
type Handlers struct {
	service  Service
	audit    ActionRecorder
	validate *validator.Validate
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service Service, audit ActionRecorder) *Handlers {
	return &Handlers{
		service:  service,
		audit:    audit,
		validate: validator.New(),
	}
}

// HandleRegister godoc
// @Summary Register a new user
// @Description Creates a user account and returns the user together with a signed bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.Envelope "User registered successfully"
// @Failure 400 {object} auth.Envelope "Invalid input or email already in use"
// @Failure 500 {object} auth.Envelope "Internal Server Error"
// @Router /api/auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			WriteValidationFailure(w, err)
			return
		}

		user, token, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		// Audit only after the primary action has succeeded.
		h.audit.Record(&user.ID, "user_registered", "success")

		WriteSuccess(w, http.StatusCreated, "User registered successfully.", AuthData{User: user, Token: token})
	}
}

// HandleLogin godoc
// @Summary Log in
// @Description Verifies credentials and returns the user together with a signed bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.Envelope "Login successful"
// @Failure 400 {object} auth.Envelope "Invalid input"
// @Failure 401 {object} auth.Envelope "Invalid email or password"
// @Failure 500 {object} auth.Envelope "Internal Server Error"
// @Router /api/auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			WriteValidationFailure(w, err)
			return
		}

		user, token, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		h.audit.Record(&user.ID, "user_login", "success")

		WriteSuccess(w, http.StatusOK, "Login successful.", AuthData{User: user, Token: token})
	}
}

// HandleGetProfile godoc
// @Summary Get the caller's profile
// @Description Returns the authenticated user's own record.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Envelope "Profile fetched"
// @Failure 401 {object} auth.Envelope "Missing or invalid token"
// @Failure 500 {object} auth.Envelope "Internal Server Error"
// @Router /api/auth/profile [get]
func (h *Handlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok {
			WriteError(w, r, apperror.NewAuthError("Authentication required.", nil))
			return
		}

		user, err := h.service.GetProfile(r.Context(), principal.ID)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteSuccess(w, http.StatusOK, "", map[string]any{"user": user})
	}
}
