package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a MIME type no normaliser handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrEmptyDocument indicates the document has no body content to render.
	// Callers decide whether this is user-facing or an error.
	ErrEmptyDocument = errors.New("document has no body content")

	// Authentication Errors.

	// ErrAuthRequired indicates a call needs authentication but none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrTokenRefreshFailed indicates token refresh operation failed.
	ErrTokenRefreshFailed = errors.New("token refresh failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
