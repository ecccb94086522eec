// Shared response envelope writers. Every endpoint answers with the same
// JSON shape: {success, message?, data?, error?, errors?}. The writers live
// in this package because auth is imported by every other feature package
// anyway for middleware and context access.
package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/shipekarrohit/backend-project/apperror"
)

// Envelope is the uniform response body.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single failed validation constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// WriteJSON serializes v to the response writer with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			http.Error(w, `{"success":false,"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteSuccess writes a success envelope. Message and data may be empty.
func WriteSuccess(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

// WriteError translates any error into the envelope using the apperror
// taxonomy. Errors that are not AppErrors become opaque 500s. Underlying
// causes of server-side failures are logged, never serialized.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", appErr.Error(),
		)
	}

	WriteJSON(w, status, Envelope{Success: false, Message: appErr.Message, Error: appErr.Message})
}

// WriteValidationFailure writes the errors array produced by the declarative
// validation step upstream of each handler.
func WriteValidationFailure(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		WriteJSON(w, http.StatusBadRequest, Envelope{Success: false, Error: err.Error()})
		return
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: "failed on " + fe.Tag()})
	}
	WriteJSON(w, http.StatusBadRequest, Envelope{Success: false, Errors: fields})
}
