// Package apperr carries a tagged error kind through the service layers
// so handlers can map failures to HTTP responses without inspecting
// message text.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation is a field-local input failure; it never reaches the datastore.
	KindValidation
	// KindDuplicateIdentity means the email or username is already taken.
	KindDuplicateIdentity
	// KindBadCredentials means the email/password pair did not match.
	KindBadCredentials
	// KindDataUnavailable means authentication succeeded but the linked
	// profile document could not be resolved.
	KindDataUnavailable
	// KindConnectivity is a network-level failure talking to a collaborator.
	KindConnectivity
	// KindNotAuthenticated means the action requires a session and none exists.
	KindNotAuthenticated
	KindNotFound
	// KindUpstream is a non-2xx answer from an external API.
	KindUpstream
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain, KindUnknown when untagged.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is lets errors.Is match two apperr values by kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}
