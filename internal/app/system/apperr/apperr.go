// Package apperr defines the error taxonomy shared by stores and handlers.
//
// Every error that crosses the store boundary is one of five kinds, and the
// HTTP layer maps kinds to status codes in exactly one place (httpjson.Error).
// Store/network failures are wrapped as KindUnavailable so their internals are
// logged but never surfaced to callers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

type Kind int

const (
	KindValidation    Kind = iota + 1 // malformed or out-of-range input
	KindNotFound                      // missing document
	KindPrecondition                  // state forbids the operation (e.g. decrement at zero)
	KindAuthorization                 // caller lacks the required role
	KindUnavailable                   // opaque persistence/I-O failure
)

// Error carries a kind, a caller-safe message, and an optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Precondition(format string, args ...any) *Error {
	return &Error{Kind: KindPrecondition, Msg: fmt.Sprintf(format, args...)}
}

func Authorization(format string, args ...any) *Error {
	return &Error{Kind: KindAuthorization, Msg: fmt.Sprintf(format, args...)}
}

// Store classifies a raw persistence error: ErrNoDocuments becomes NotFound,
// anything else is wrapped as Unavailable. Existing *Error values pass through.
func Store(err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &Error{Kind: KindNotFound, Msg: "not found", Err: err}
	}
	return &Error{Kind: KindUnavailable, Msg: "store unavailable", Err: err}
}

// KindOf returns the kind of err, or 0 for unclassified errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

// Message returns the caller-safe message of err. Unclassified and
// Unavailable errors get a generic message so internals never leak.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != KindUnavailable {
		return ae.Msg
	}
	return "internal server error"
}

// HTTPStatus maps an error to the status code written at the request boundary.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindPrecondition:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
