package api

import "errors"

// Error kinds for catalog API failures. Every client method wraps its
// failure in exactly one of these so callers can branch with errors.Is.
// An empty result list is success, never an error.
var (
	// ErrNetwork covers transport failures, including timeouts.
	ErrNetwork = errors.New("network error")
	// ErrServer covers non-2xx responses other than a content 404.
	ErrServer = errors.New("server error")
	// ErrDecode covers response bodies that do not match the expected shape.
	ErrDecode = errors.New("decode error")
	// ErrNotFound is returned by Content for unknown ids.
	ErrNotFound = errors.New("content not found")
)

// IsNotFound reports whether err is a missing-content failure.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
