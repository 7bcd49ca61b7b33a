package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/joinboard/joinboard-api/internal/api/shared"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/service/auth"
	"github.com/joinboard/joinboard-api/internal/service/session"
	"github.com/joinboard/joinboard-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based
// on the error type, so handlers never leak internal error text through
// status decisions.
func MapErrorToStatusCode(err error) int {
	switch {
	// Token errors: missing, malformed, expired, wrong type, revoked.
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrRevokedToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Credential failures surface as a plain request error, matching the
	// registration/login validation responses.
	case errors.Is(err, session.ErrInvalidCredentials),
		errors.Is(err, session.ErrNotGuestAccount):
		return http.StatusBadRequest

	// Duplicate registration data is a validation failure, not a conflict.
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrUsernameExists):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// given error. Internal detail stays in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"
	case errors.Is(err, auth.ErrMissingToken):
		return "Authentication token is missing"
	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrRevokedToken):
		return "Invalid refresh token"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	case errors.Is(err, session.ErrInvalidCredentials):
		return "Invalid login credentials"
	case errors.Is(err, session.ErrNotGuestAccount):
		return "Account is not a guest account"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"
	case errors.Is(err, store.ErrSubtaskNotFound):
		return "Subtask not found"
	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"
	case errors.Is(err, store.ErrPrioNotFound):
		return "Prio not found"
	case errors.Is(err, store.ErrProfileNotFound):
		return "Profile not found"
	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"
	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidEmail):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return "Invalid " + validationErr.Field
		}
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err to a status code and sanitized message and
// writes the error response. defaultMsg overrides the derived message
// when non-empty and the error is an internal one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if defaultMsg != "" && status == http.StatusInternalServerError {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// ValidationErrorResponse is the body of a 400 produced by request
// validation, carrying per-field messages.
type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
}

// RespondWithValidationError writes a 400 with field-level messages
// extracted from a validator.ValidationErrors value. Other error types
// fall back to a single generic message.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, err error) {
	resp := ValidationErrorResponse{
		Error:   "Validation error",
		TraceID: shared.GetTraceID(r.Context()),
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		resp.Fields = make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			resp.Fields[fe.Field()] = validationTagMessage(fe.Tag())
		}
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		resp.Fields = map[string]string{validationErr.Field: validationErr.Message}
	}

	shared.RespondWithJSON(w, r, http.StatusBadRequest, resp)
}

// validationTagMessage maps validator tags to user-facing messages.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Too short"
	case "max":
		return "Too long"
	case "eqfield":
		return "Fields do not match"
	case "oneof":
		return "Invalid value"
	default:
		return "Validation failed"
	}
}
