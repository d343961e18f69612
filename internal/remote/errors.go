package remote

import "errors"

var (
	// ErrUnavailable indicates the backend could not be reached.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrUnauthorized indicates the request was rejected for lack of a
	// valid session or token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDecode indicates the backend response could not be parsed.
	ErrDecode = errors.New("invalid backend response")

	// ErrNotConfigured indicates no backend endpoint is set.
	ErrNotConfigured = errors.New("backend not configured")
)
