// Package apperr carries the error taxonomy the HTTP layer maps to status
// codes: validation and conflicts are 400, bad credentials/tokens 401,
// missing records 404, uninitialized subsystems 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

func Validation(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: fmt.Sprintf(format, args...)}
}

func Auth(format string, args ...any) *Error {
	return &Error{Status: http.StatusUnauthorized, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Status: http.StatusNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Unavailable(format string, args ...any) *Error {
	return &Error{Status: http.StatusInternalServerError, Msg: fmt.Sprintf(format, args...)}
}

// SignatureMismatch rejects a payment callback whose signature does not
// match the recomputed HMAC.
func SignatureMismatch() *Error {
	return &Error{Status: http.StatusBadRequest, Msg: "invalid signature"}
}

// HTTPStatus maps any error to the status the envelope is sent with.
// Unclassified errors follow the handler-boundary default of 400.
func HTTPStatus(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusBadRequest
}
