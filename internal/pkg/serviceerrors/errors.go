// Package serviceerrors defines the error type exchanged between services
// and the HTTP layer.
package serviceerrors

import (
	"errors"
	"net/http"
)

// AppError carries a client-safe message, the HTTP status it maps to and
// the wrapped base error. The base error is for logs only and is never
// serialized to clients.
type AppError struct {
	Msg  string
	Code int
	Base error
}

func NewBadRequest(msg string) *AppError {
	return &AppError{msg, http.StatusBadRequest, nil}
}

func NewConflict(msg string) *AppError {
	return &AppError{msg, http.StatusConflict, nil}
}

func NewUnauthorized(msg string) *AppError {
	return &AppError{msg, http.StatusUnauthorized, nil}
}

func NewNotImplemented(msg string) *AppError {
	return &AppError{msg, http.StatusNotImplemented, nil}
}

func NewBadGateway(msg string) *AppError {
	return &AppError{msg, http.StatusBadGateway, nil}
}

func NewInternal(err error) *AppError {
	return &AppError{"internal error", http.StatusInternalServerError, err}
}

// FromError returns err as an *AppError, wrapping it as an internal error
// when it is not one already.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(err)
}

// Wrap attaches a base error for logging and returns the receiver.
func (e *AppError) Wrap(base error) *AppError {
	e.Base = base
	return e
}

func (e *AppError) IsInternal() bool {
	return e.Code/100 == 5
}

func (e *AppError) Error() string {
	return e.Msg
}

func (e *AppError) Unwrap() error {
	return e.Base
}

func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return errors.Is(e.Base, target)
	}
	return t.Code == e.Code && t.Msg == e.Msg
}
