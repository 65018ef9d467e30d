package errors

import (
	"errors"
	"net/http"
)

// Error types for domain errors
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InsufficientDataError signals that the recommendation model cannot be
// trained from the available interactions. Callers fall back to the
// default ranking instead of failing the request.
type InsufficientDataError struct {
	Message string
}

func (e *InsufficientDataError) Error() string {
	return e.Message
}

type DatabaseError struct {
	Message string
}

func (e *DatabaseError) Error() string {
	return e.Message
}

// Constructors
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Message: msg}
}

func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}

func NewInsufficientDataError(msg string) error {
	return &InsufficientDataError{Message: msg}
}

func NewDatabaseError(msg string) error {
	return &DatabaseError{Message: msg}
}

// Type checks
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFoundError(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflictError(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsInsufficientDataError(err error) bool {
	var e *InsufficientDataError
	return errors.As(err, &e)
}

func IsDatabaseError(err error) bool {
	var e *DatabaseError
	return errors.As(err, &e)
}

// Mapper maps domain errors to HTTP status codes
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

func (m *Mapper) MapErrorToHttp(err error) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}

	switch {
	case IsValidationError(err):
		return http.StatusBadRequest, err.Error()
	case IsNotFoundError(err):
		return http.StatusNotFound, err.Error()
	case IsConflictError(err):
		return http.StatusConflict, err.Error()
	case IsInsufficientDataError(err):
		// never a hard failure, callers degrade to the default ranking
		return http.StatusOK, ""
	case IsDatabaseError(err):
		return http.StatusInternalServerError, "internal server error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
