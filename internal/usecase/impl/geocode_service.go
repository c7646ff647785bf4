package impl

import (
	"context"
	"log/slog"

	"domkarta/internal/domain/entity"
	"domkarta/internal/domain/service"
	"domkarta/internal/usecase"

	pkgerrors "github.com/pkg/errors"
)

type geocodeService struct {
	geocoder service.GeocodingService
	logger   *slog.Logger
}

// NewGeocodeService creates the lookup-assist usecase over the external
// geocoding service.
func NewGeocodeService(geocoder service.GeocodingService, logger *slog.Logger) usecase.GeocodeUsecase {
	return &geocodeService{
		geocoder: geocoder,
		logger:   logger,
	}
}

func (s *geocodeService) ReverseGeocode(ctx context.Context, point entity.GeoPoint) (*service.ReverseResult, error) {
	result, err := s.geocoder.ReverseGeocode(ctx, point)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "reverse geocode")
	}

	return result, nil
}

// FetchFootprint looks up a precise boundary for a captured source
// identifier. An identifier that resolves to no usable geometry yields a nil
// candidate, not an error; the submit then falls through the resolver's
// reuse and failure rules.
func (s *geocodeService) FetchFootprint(ctx context.Context, sourceID string) (*entity.ExternalCandidate, error) {
	footprint, err := s.geocoder.LookupFootprintByID(ctx, sourceID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "lookup footprint")
	}
	if footprint == nil || !footprint.Valid() {
		s.logger.Debug("source id resolved to no usable geometry",
			slog.String("source_id", sourceID),
		)

		return nil, nil
	}

	return &entity.ExternalCandidate{
		Footprint: *footprint,
		SourceID:  sourceID,
	}, nil
}
