package impl

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"domkarta/internal/address"
	"domkarta/internal/domain/constants"
	"domkarta/internal/domain/entity"
	"domkarta/internal/domain/service"
	"domkarta/internal/usecase"

	pkgerrors "github.com/pkg/errors"
)

// ErrResolutionFailed is returned when no rule of the resolution procedure
// can determine a footprint. The record must not be assembled or persisted.
var ErrResolutionFailed = errors.New("no footprint could be resolved")

type resolverService struct {
	geocoder service.GeocodingService
	memory   usecase.MapLocationUsecase
	logger   *slog.Logger
}

// NewResolverService creates the coordinate resolver. The input surface
// offers three competing ways to pin a location (typed address, clicked
// point, external catalog id); the resolver makes exactly one win without
// asking the user to disambiguate mid-submit.
func NewResolverService(geocoder service.GeocodingService, memory usecase.MapLocationUsecase, logger *slog.Logger) usecase.ResolveUsecase {
	return &resolverService{
		geocoder: geocoder,
		memory:   memory,
		logger:   logger,
	}
}

// Resolve applies the precedence rules and, on success, overwrites the
// last-location memory with the footprint's first point.
func (s *resolverService) Resolve(ctx context.Context, rc *usecase.ResolutionContext) (entity.Footprint, error) {
	footprint, err := s.resolve(ctx, rc)
	if err != nil {
		return entity.Footprint{}, err
	}

	s.rememberLastLocation(ctx, footprint)

	return footprint, nil
}

func (s *resolverService) resolve(ctx context.Context, rc *usecase.ResolutionContext) (entity.Footprint, error) {
	// Unchanged-address edit short-circuit: never re-geocode a no-op
	// address edit. Repeated independent geocoding calls return slightly
	// different results for the same address; reusing the stored footprint
	// is a stability guarantee, not an optimization.
	if fp, ok := s.unchangedAddressEdit(rc); ok {
		return fp, nil
	}

	switch rc.Mode {
	case usecase.ModeManualPoint:
		return s.resolveManualPoint(rc)
	case usecase.ModeExternalID:
		return s.resolveExternalID(rc)
	default:
		return s.resolveAddress(ctx, rc)
	}
}

func (s *resolverService) unchangedAddressEdit(rc *usecase.ResolutionContext) (entity.Footprint, bool) {
	if !rc.IsEditingExisting {
		return entity.Footprint{}, false
	}

	submitted := strings.TrimSpace(rc.TypedAddress)
	if submitted == "" || submitted != strings.TrimSpace(rc.ExistingAddress) {
		return entity.Footprint{}, false
	}

	return existingFootprint(rc)
}

// resolveManualPoint: the picked point is the sole source of truth; when the
// user never picked one while editing, keep the stored footprint.
func (s *resolverService) resolveManualPoint(rc *usecase.ResolutionContext) (entity.Footprint, error) {
	if rc.ManualPoint != nil {
		return entity.PointFootprint(*rc.ManualPoint), nil
	}

	if fp, ok := existingFootprint(rc); ok {
		return fp, nil
	}

	return entity.Footprint{}, ErrResolutionFailed
}

// resolveExternalID: the caller must fetch the footprint before submitting;
// editing the same external id as before keeps the stored footprint.
func (s *resolverService) resolveExternalID(rc *usecase.ResolutionContext) (entity.Footprint, error) {
	if rc.FetchedCandidate != nil && rc.FetchedCandidate.Footprint.Valid() {
		return rc.FetchedCandidate.Footprint, nil
	}

	if rc.RequestedExternalID != "" && rc.RequestedExternalID == rc.ExistingSourceID {
		if fp, ok := existingFootprint(rc); ok {
			return fp, nil
		}
	}

	return entity.Footprint{}, ErrResolutionFailed
}

// resolveAddress: normalize, forward-geocode, take the first candidate as
// ranked by the service (no local re-ranking). A picked point is only the
// last-resort fallback when geocoding yields nothing usable.
func (s *resolverService) resolveAddress(ctx context.Context, rc *usecase.ResolutionContext) (entity.Footprint, error) {
	normalized := address.Normalize(rc.TypedAddress)
	if normalized == "" {
		return s.manualFallback(rc)
	}

	candidates, err := s.geocoder.ForwardGeocode(ctx, normalized)
	if err != nil {
		return entity.Footprint{}, pkgerrors.Wrap(err, "forward geocode")
	}

	if len(candidates) == 0 {
		return s.manualFallback(rc)
	}

	// A malformed candidate (zero-point polygon) counts as "no geometry",
	// not as a degenerate polygon.
	first := candidates[0]
	if !first.Footprint.Valid() {
		return s.manualFallback(rc)
	}

	return first.Footprint, nil
}

func (s *resolverService) manualFallback(rc *usecase.ResolutionContext) (entity.Footprint, error) {
	if rc.ManualPoint != nil {
		return entity.PointFootprint(*rc.ManualPoint), nil
	}

	return entity.Footprint{}, ErrResolutionFailed
}

func existingFootprint(rc *usecase.ResolutionContext) (entity.Footprint, bool) {
	if rc.ExistingFootprint == nil || !rc.ExistingFootprint.Valid() {
		return entity.Footprint{}, false
	}

	return *rc.ExistingFootprint, true
}

// rememberLastLocation overwrites the remembered viewport so the map reopens
// centered near the last activity. A memory failure never fails the
// resolution itself.
func (s *resolverService) rememberLastLocation(ctx context.Context, footprint entity.Footprint) {
	point, ok := footprint.FirstPoint()
	if !ok {
		return
	}

	location := entity.MapLocation{Point: point, Zoom: constants.DefaultZoom}
	if err := s.memory.Remember(ctx, location); err != nil {
		s.logger.Warn("failed to remember last location",
			slog.Float64("lat", point.Lat),
			slog.Float64("lng", point.Lng),
			slog.Any("error", err),
		)
	}
}
