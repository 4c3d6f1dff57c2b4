package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned to callers. The UI layer routes each code to a
// different user-facing message, so they must stay distinguishable.
const (
	CodeUnregistered      = "UNREGISTERED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotOwner          = "NOT_OWNER"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeAlreadyRegistered = "ALREADY_REGISTERED"
	CodeInternal          = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// Unregistered marks a call whose identity credential resolves to no account.
// Distinct from Forbidden: the caller should be sent to registration, not
// told off.
func Unregistered(err error) *AppError {
	return &AppError{
		Code:    CodeUnregistered,
		Message: "No account registered for this identity",
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

// NotOwner marks an ownership failure: the role was sufficient but the
// resource belongs to someone else.
func NotOwner(resource string) *AppError {
	return &AppError{
		Code:    CodeNotOwner,
		Message: fmt.Sprintf("You do not own this %s", resource),
		Status:  http.StatusForbidden,
		Err:     nil,
	}
}

func InvalidTransition(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidTransition,
		Message: message,
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

func AlreadyRegistered(message string) *AppError {
	return &AppError{
		Code:    CodeAlreadyRegistered,
		Message: message,
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
