package location

import "errors"

var (
	// ErrPermissionDenied means the positioning endpoint refused the lookup
	// or no endpoint is configured at all.
	ErrPermissionDenied = errors.New("location permission denied")

	// ErrNoFix means the endpoint is reachable in principle but no position
	// is available right now (timeout, transport failure, malformed reply).
	ErrNoFix = errors.New("location unavailable")
)
