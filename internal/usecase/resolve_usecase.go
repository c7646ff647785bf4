package usecase

import (
	"context"

	"domkarta/internal/domain/entity"
)

// ResolutionMode selects which of the three competing location inputs is
// authoritative for a resolution.
type ResolutionMode string

const (
	// ModeAddress resolves from the typed address (the default path).
	ModeAddress ResolutionMode = "address"
	// ModeManualPoint resolves from a point picked on the map.
	ModeManualPoint ResolutionMode = "manualPoint"
	// ModeExternalID resolves from a pre-fetched map-catalog footprint.
	ModeExternalID ResolutionMode = "externalId"
)

// ResolutionContext is the input to a coordinate resolution. Exactly one of
// manual point / fetched candidate / typed address is authoritative,
// determined by Mode.
type ResolutionContext struct {
	Mode              ResolutionMode
	IsEditingExisting bool

	// State of the record being edited; zero values when creating.
	ExistingAddress   string
	ExistingFootprint *entity.Footprint
	ExistingSourceID  string

	// Form and picking inputs.
	TypedAddress        string
	ManualPoint         *entity.GeoPoint
	FetchedCandidate    *entity.ExternalCandidate
	RequestedExternalID string
}

// ResolveUsecase produces exactly one authoritative footprint from a
// resolution context, or fails. A successful resolution also overwrites the
// last-location memory with the footprint's first point.
type ResolveUsecase interface {
	Resolve(ctx context.Context, rc *ResolutionContext) (entity.Footprint, error)
}
