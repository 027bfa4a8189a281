package api

import (
	"errors"
	"fmt"
)

// Kind classifies a normalized API failure.
type Kind string

const (
	// KindTransport covers network failures and unexpected server
	// statuses. The message is generic; the underlying detail is logged,
	// never shown.
	KindTransport Kind = "transport"
	// KindValidation is a structured 4xx rejecting the caller's input.
	// The message carries the server's explanation for display.
	KindValidation Kind = "validation"
	// KindUnauthorized means the token is missing, expired, or invalid.
	KindUnauthorized Kind = "unauthorized"
	// KindNotFound means the requested resource does not exist.
	KindNotFound Kind = "not_found"
	// KindUnexpectedResponse means the server answered with a success
	// status but a body the client could not parse.
	KindUnexpectedResponse Kind = "unexpected_response"
)

// Error is the single failure shape produced by the API client. It is
// constructed exclusively by the client's normalization step; no raw
// transport error ever escapes to a caller.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, 0 for transport-level failures
	Message string // short, safe to show to the user
	cause   error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// AsError extracts the typed API error from err, if present.
func AsError(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a normalized authorization failure.
func IsUnauthorized(err error) bool {
	ae, ok := AsError(err)
	return ok && ae.Kind == KindUnauthorized
}

// IsNotFound reports whether err is a normalized missing-resource failure.
func IsNotFound(err error) bool {
	ae, ok := AsError(err)
	return ok && ae.Kind == KindNotFound
}

// IsValidation reports whether err is a normalized input-rejection failure.
func IsValidation(err error) bool {
	ae, ok := AsError(err)
	return ok && ae.Kind == KindValidation
}
