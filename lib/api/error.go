// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

// Category classifies client errors so that UI code can choose a
// presentation (inline validation message, sign-in redirect, transient
// notice) without parsing error message text.
type Category string

const (
	// CategoryValidation indicates invalid local input, caught before
	// any network call is attempted.
	CategoryValidation Category = "validation"

	// CategoryAuth indicates a 401/403-class backend response: invalid
	// credentials or an expired access token.
	CategoryAuth Category = "auth"

	// CategoryNotFound indicates the referenced entity does not exist,
	// e.g. viewing an event that has been deleted.
	CategoryNotFound Category = "not_found"

	// CategoryRequest indicates the backend answered and declined: a
	// non-2xx response or a success:false body, carrying the backend
	// message when one is present.
	CategoryRequest Category = "request"

	// CategoryTransport indicates the request never produced a backend
	// answer: connection refused, DNS failure, a broken body read. The
	// user sees the underlying error and can retry.
	CategoryTransport Category = "transport"

	// CategoryTimeout indicates the request exceeded the configured
	// deadline. No automatic retry is performed; the user re-triggers
	// the action.
	CategoryTimeout Category = "timeout"

	// CategoryInternal indicates an unexpected failure: bugs, parse
	// errors on data the backend produced.
	CategoryInternal Category = "internal"
)

// Error is a categorized client error. It wraps an inner error,
// preserving the full chain for debugging while adding category
// metadata for the UI layer. Use the category-specific constructors
// rather than constructing Error directly.
type Error struct {
	// Category classifies the error for presentation decisions.
	Category Category

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message. The category is not
// included in the string; it travels separately for the UI layer.
func (e *Error) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the Error wrapper.
func (e *Error) Unwrap() error { return e.Err }

// Validation creates a validation error: the input is bad and no
// network call was made.
func Validation(format string, args ...any) *Error {
	return &Error{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Auth creates an auth error: invalid or expired credentials.
func Auth(format string, args ...any) *Error {
	return &Error{Category: CategoryAuth, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: the entity does not exist.
func NotFound(format string, args ...any) *Error {
	return &Error{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Request creates a request error: the backend declined the request.
func Request(format string, args ...any) *Error {
	return &Error{Category: CategoryRequest, Err: fmt.Errorf(format, args...)}
}

// Transport creates a transport error: the request never reached a
// backend answer.
func Transport(format string, args ...any) *Error {
	return &Error{Category: CategoryTransport, Err: fmt.Errorf(format, args...)}
}

// Timeout creates a timeout error: the request deadline elapsed.
func Timeout(format string, args ...any) *Error {
	return &Error{Category: CategoryTimeout, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure or bug.
func Internal(format string, args ...any) *Error {
	return &Error{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// CategoryOf extracts the category from an error chain. Errors that do
// not carry a category report CategoryInternal.
func CategoryOf(err error) Category {
	var clientError *Error
	if errors.As(err, &clientError) {
		return clientError.Category
	}
	return CategoryInternal
}
