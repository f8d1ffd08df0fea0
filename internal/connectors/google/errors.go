package google

import (
	"errors"
	"net/http"
	"strconv"

	"google.golang.org/api/googleapi"
)

// Common Google API errors.
var (
	// ErrUnauthorized indicates invalid or expired credentials.
	ErrUnauthorized = errors.New("google: unauthorised (invalid credentials)")

	// ErrForbidden indicates insufficient permissions.
	ErrForbidden = errors.New("google: forbidden (insufficient permissions)")

	// ErrNotFound indicates the requested document was not found.
	ErrNotFound = errors.New("google: document not found")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("google: rate limit exceeded")
)

// IsUnauthorized returns true if the error indicates invalid credentials.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) || hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden returns true if the error indicates insufficient permissions.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden) || hasStatus(err, http.StatusForbidden)
}

// IsNotFound returns true if the error indicates a missing document.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || hasStatus(err, http.StatusNotFound)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited) || hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, code int) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == code
	}
	return false
}

// RetryAfter returns the Retry-After delay in seconds carried by a 429
// response, or 0 when absent.
func RetryAfter(err error) int {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Header == nil {
		return 0
	}
	seconds, convErr := strconv.Atoi(gerr.Header.Get("Retry-After"))
	if convErr != nil || seconds < 0 {
		return 0
	}
	return seconds
}

// WrapError converts a Google API error to a more specific error type.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return err
	}
}
