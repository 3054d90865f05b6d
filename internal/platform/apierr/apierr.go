// Package apierr carries domain failures from services to the HTTP edge.
// Every service returns *Error values; the response package maps Status and
// Fields into the wire envelope without leaking internal detail.
package apierr

import (
	"fmt"
	"net/http"
)

const (
	CodeValidation        = "validation_error"
	CodeUnauthenticated   = "unauthenticated"
	CodeInvalidCredential = "invalid_credential"
	CodeNoStore           = "no_store"
	CodeNotFound          = "not_found"
	CodeConflict          = "conflict"
	CodeInvalidTransition = "invalid_transition"
	CodeInternal          = "internal"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Status int
	Code   string
	Err    error
	Fields []FieldError
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(fields []FieldError) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Code:   CodeValidation,
		Err:    fmt.Errorf("validation failed"),
		Fields: fields,
	}
}

func Unauthenticated(msg string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthenticated, fmt.Errorf("%s", msg))
}

func InvalidCredential(msg string) *Error {
	return New(http.StatusUnauthorized, CodeInvalidCredential, fmt.Errorf("%s", msg))
}

// NoStore keeps the 400 status the mobile clients already handle for
// store-scoped calls made before store creation.
func NoStore() *Error {
	return New(http.StatusBadRequest, CodeNoStore, fmt.Errorf("vendor must have a store"))
}

func NotFound(what string) *Error {
	return New(http.StatusNotFound, CodeNotFound, fmt.Errorf("%s not found", what))
}

func Conflict(msg string) *Error {
	return New(http.StatusConflict, CodeConflict, fmt.Errorf("%s", msg))
}

func InvalidTransition(from, to string) *Error {
	return New(http.StatusBadRequest, CodeInvalidTransition,
		fmt.Errorf("cannot change status from %s to %s", from, to))
}

func Internal(err error) *Error {
	return New(http.StatusInternalServerError, CodeInternal, err)
}
