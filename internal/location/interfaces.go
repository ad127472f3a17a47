// Package location resolves the device's current coordinate through an
// external positioning endpoint. Position is attached to a note only at the
// user's explicit request; a note is always saved even when no coordinate is
// available.
package location

import (
	"context"

	"github.com/d-code000/YetAnotherNote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/location_mock.go -package=mock

// Provider performs a one-shot coordinate lookup.
type Provider interface {

	// CurrentCoordinate returns the device's current position.
	// Returns [ErrPermissionDenied] when the lookup is not authorised and
	// [ErrNoFix] when no position can be determined right now; both are
	// expected outcomes, not failures of the save path.
	CurrentCoordinate(ctx context.Context) (models.Coordinate, error)
}
