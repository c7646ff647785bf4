package usecase

import (
	"context"

	"domkarta/internal/domain/entity"
)

// MapLocationUsecase is the last-location memory: one remembered viewport
// anchor, overwritten on every successful resolution and read once at map
// initialization.
type MapLocationUsecase interface {
	// Remember unconditionally overwrites the stored location.
	Remember(ctx context.Context, location entity.MapLocation) error

	// Recall returns the stored location, or nil when nothing was
	// remembered yet.
	Recall(ctx context.Context) (*entity.MapLocation, error)
}
