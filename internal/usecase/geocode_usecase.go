package usecase

import (
	"context"

	"domkarta/internal/domain/entity"
	"domkarta/internal/domain/service"
)

// GeocodeUsecase exposes the lookup assists the picking UI calls before a
// submit: naming a clicked point and fetching a precise boundary for a
// captured source identifier.
type GeocodeUsecase interface {
	// ReverseGeocode names a clicked map point and captures a source
	// identifier usable for a follow-up footprint lookup.
	ReverseGeocode(ctx context.Context, point entity.GeoPoint) (*service.ReverseResult, error)

	// FetchFootprint fetches a precise boundary by source identifier.
	// Returns an ExternalCandidate so the submit can carry it into the
	// resolution context; nil when the identifier yields no geometry.
	FetchFootprint(ctx context.Context, sourceID string) (*entity.ExternalCandidate, error)
}
