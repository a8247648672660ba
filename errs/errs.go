// Package errs defines the error taxonomy shared by stores, engines and
// handlers. Errors are classified where they arise and translated to HTTP
// status codes only at the boundary.
package errs

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindUnauthorized
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) error     { return &Error{Kind: KindConflict, Msg: msg} }
func Validation(msg string) error   { return &Error{Kind: KindValidation, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Msg: msg} }

func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// HTTPStatus maps an error to the status code the original API used.
// Conflict and Unauthorized are surfaced as 400, not 409/401, to match the
// observed behavior of the service this one replaces.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindValidation, KindUnauthorized:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
