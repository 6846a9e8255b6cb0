package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeInternal   ErrorType = "INTERNAL_ERROR"
)

// APIError is the JSON body of every failed request.
type APIError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	status  int
	cause   error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error { return e.cause }

// Status maps the error type to an HTTP status code.
func (e *APIError) Status() int {
	if e.status != 0 {
		return e.status
	}
	switch e.Type {
	case ErrorTypeValidation:
		return fiber.StatusBadRequest
	case ErrorTypeNotFound:
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

func NewNotFound(message string, cause error) *APIError {
	return &APIError{Type: ErrorTypeNotFound, Message: message, cause: cause}
}

// NewInternal hides err from the client; it stays reachable through Unwrap for logging.
func NewInternal(err error) *APIError {
	return &APIError{Type: ErrorTypeInternal, Message: "Something went wrong. Please try again.", cause: err}
}

// From converts any handler error into an APIError. Fiber errors keep
// their status code; everything else becomes an internal error.
func From(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch {
		case fe.Code == fiber.StatusNotFound:
			return NewNotFound("Not found", err)
		case fe.Code >= 400 && fe.Code < 500:
			return &APIError{Type: ErrorTypeValidation, Message: fe.Message, status: fe.Code, cause: err}
		}
		internal := NewInternal(err)
		internal.status = fe.Code
		return internal
	}
	return NewInternal(err)
}
