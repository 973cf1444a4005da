package fixit

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes an API failure so callers can branch on it
// programmatically instead of parsing display strings.
type Kind string

const (
	// KindValidation indicates the backend rejected the input (HTTP 400/422)
	KindValidation Kind = "validation"
	// KindNotFound indicates the resource does not exist (HTTP 404)
	KindNotFound Kind = "not_found"
	// KindConflict indicates a resource conflict (HTTP 409)
	KindConflict Kind = "conflict"
	// KindAuth indicates the request was not authenticated or not allowed (HTTP 401/403)
	KindAuth Kind = "auth"
	// KindServer indicates a backend-side failure (HTTP 5xx)
	KindServer Kind = "server"
	// KindNetwork indicates the request never produced a response
	KindNetwork Kind = "network"
	// KindAborted indicates the caller cancelled the request
	KindAborted Kind = "aborted"
)

// Error is the single error type returned by every service method.
// Message carries the backend-supplied message when one was present,
// Status the HTTP status code (0 when no response was received), and
// Cause the underlying transport error if any.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// AsError converts any error into an *Error.
// If err is already an *Error, returns it unchanged.
// Otherwise wraps it as a network-kind error.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	return &Error{Kind: KindNetwork, Message: "request failed", Cause: err}
}

// HasKind reports whether err is an *Error of the given kind.
func HasKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// IsAborted reports whether err represents caller cancellation rather
// than a real failure, so callers can ignore errors from requests they
// walked away from.
func IsAborted(err error) bool {
	return HasKind(err, KindAborted)
}

// kindForStatus maps an HTTP error status to an error kind.
func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status >= 500:
		return KindServer
	default:
		return KindServer
	}
}

// statusError builds an *Error for a non-2xx response, preferring the
// backend's own message over a generic one.
func statusError(status int, body []byte) *Error {
	msg := apiMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Kind: kindForStatus(status), Message: msg, Status: status}
}
