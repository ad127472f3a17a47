package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyTitle          = errors.New("title is required")
	ErrBrokenCoordinate    = errors.New("latitude and longitude must be set together")
	ErrLatitudeOutOfRange  = errors.New("latitude must be between -90 and 90")
	ErrLongitudeOutOfRange = errors.New("longitude must be between -180 and 180")
	ErrEmptyIDs            = errors.New("IDs list cannot be empty")
)
