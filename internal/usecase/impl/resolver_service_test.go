package impl

import (
	"context"
	"errors"
	"testing"

	"domkarta/internal/domain/constants"
	"domkarta/internal/domain/entity"
	mockService "domkarta/internal/mocks/service"
	mockUsecase "domkarta/internal/mocks/usecase"
	"domkarta/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T) (usecase.ResolveUsecase, *mockService.MockGeocodingService, *mockUsecase.MockMapLocationUsecase) {
	mockGeocoder := mockService.NewMockGeocodingService(t)
	mockMemory := mockUsecase.NewMockMapLocationUsecase(t)
	resolver := NewResolverService(mockGeocoder, mockMemory, newDiscardLogger())

	return resolver, mockGeocoder, mockMemory
}

func leninaRing() []entity.GeoPoint {
	return []entity.GeoPoint{
		{Lat: 57.6261, Lng: 39.8971},
		{Lat: 57.6262, Lng: 39.8975},
		{Lat: 57.6259, Lng: 39.8976},
		{Lat: 57.6258, Lng: 39.8972},
	}
}

func TestResolverService_AddressMode_FirstCandidateWins(t *testing.T) {
	resolver, mockGeocoder, mockMemory := newResolver(t)
	ctx := context.Background()

	ring := leninaRing()
	mockGeocoder.EXPECT().
		ForwardGeocode(ctx, "Ленина 10").
		Return([]entity.ExternalCandidate{
			{Footprint: entity.PolygonFootprint(ring), SourceID: "W100", DisplayAddress: "улица Ленина, 10, Ярославль"},
			{Footprint: entity.PointFootprint(entity.GeoPoint{Lat: 1, Lng: 1}), SourceID: "N200"},
		}, nil)

	mockMemory.EXPECT().
		Remember(ctx, entity.MapLocation{Point: ring[0], Zoom: constants.DefaultZoom}).
		Return(nil)

	footprint, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:         usecase.ModeAddress,
		TypedAddress: "ул. Ленина, д. 10",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.FootprintPolygon, footprint.Type)
	assert.Equal(t, ring, footprint.Points)
}

func TestResolverService_ManualPointMode_NoNetwork(t *testing.T) {
	resolver, _, mockMemory := newResolver(t)
	ctx := context.Background()

	picked := entity.GeoPoint{Lat: 57.62, Lng: 39.89}
	mockMemory.EXPECT().
		Remember(ctx, entity.MapLocation{Point: picked, Zoom: constants.DefaultZoom}).
		Return(nil)

	// The typed address is present but must be ignored: the geocoder mock
	// has no expectations, so any call would fail the test.
	footprint, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:         usecase.ModeManualPoint,
		TypedAddress: "Ленина 10",
		ManualPoint:  &picked,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PointFootprint(picked), footprint)
}

func TestResolverService_UnchangedAddressEdit_SkipsGeocoding(t *testing.T) {
	resolver, _, mockMemory := newResolver(t)
	ctx := context.Background()

	stored := entity.PolygonFootprint(leninaRing())
	mockMemory.EXPECT().
		Remember(ctx, mock.AnythingOfType("entity.MapLocation")).
		Return(nil)

	footprint, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:              usecase.ModeAddress,
		IsEditingExisting: true,
		ExistingAddress:   "Ленина 10",
		ExistingFootprint: &stored,
		TypedAddress:      " Ленина 10 ",
	})
	require.NoError(t, err)
	assert.Equal(t, stored, footprint)
}

func TestResolverService_UnchangedAddressEdit_EmptyAddressDoesNotShortCircuit(t *testing.T) {
	resolver, mockGeocoder, _ := newResolver(t)
	ctx := context.Background()

	stored := entity.PolygonFootprint(leninaRing())

	// Both sides empty is not a reuse: an empty address has nothing to
	// compare, so the normal mode logic runs and fails without a fallback.
	_, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:              usecase.ModeAddress,
		IsEditingExisting: true,
		ExistingAddress:   "",
		ExistingFootprint: &stored,
		TypedAddress:      "",
	})
	require.ErrorIs(t, err, ErrResolutionFailed)
	mockGeocoder.AssertNotCalled(t, "ForwardGeocode", mock.Anything, mock.Anything)
}

func TestResolverService_UnchangedAddressEdit_OverridesManualPoint(t *testing.T) {
	resolver, _, mockMemory := newResolver(t)
	ctx := context.Background()

	stored := entity.PolygonFootprint(leninaRing())
	picked := entity.GeoPoint{Lat: 50, Lng: 30}
	mockMemory.EXPECT().
		Remember(ctx, mock.AnythingOfType("entity.MapLocation")).
		Return(nil)

	footprint, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:              usecase.ModeManualPoint,
		IsEditingExisting: true,
		ExistingAddress:   "Свободы 5",
		ExistingFootprint: &stored,
		TypedAddress:      "Свободы 5",
		ManualPoint:       &picked,
	})
	require.NoError(t, err)
	assert.Equal(t, stored, footprint)
}

func TestResolverService_ManualPointMode_EditingReusesStored(t *testing.T) {
	resolver, _, mockMemory := newResolver(t)
	ctx := context.Background()

	stored := entity.PointFootprint(entity.GeoPoint{Lat: 57.63, Lng: 39.88})
	mockMemory.EXPECT().
		Remember(ctx, mock.AnythingOfType("entity.MapLocation")).
		Return(nil)

	footprint, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:              usecase.ModeManualPoint,
		IsEditingExisting: true,
		ExistingAddress:   "Свободы 5",
		ExistingFootprint: &stored,
		TypedAddress:      "Свободы 5, к. 2",
	})
	require.NoError(t, err)
	assert.Equal(t, stored, footprint)
}

func TestResolverService_ManualPointMode_NoPointNoExisting(t *testing.T) {
	resolver, _, _ := newResolver(t)

	_, err := resolver.Resolve(context.Background(), &usecase.ResolutionContext{
		Mode: usecase.ModeManualPoint,
	})
	require.ErrorIs(t, err, ErrResolutionFailed)
}

func TestResolverService_ExternalIDMode_FetchedCandidateWins(t *testing.T) {
	resolver, _, mockMemory := newResolver(t)
	ctx := context.Background()

	ring := leninaRing()
	mockMemory.EXPECT().
		Remember(ctx, entity.MapLocation{Point: ring[0], Zoom: constants.DefaultZoom}).
		Return(nil)

	footprint, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode: usecase.ModeExternalID,
		FetchedCandidate: &entity.ExternalCandidate{
			Footprint: entity.PolygonFootprint(ring),
			SourceID:  "W123456",
		},
		RequestedExternalID: "W123456",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PolygonFootprint(ring), footprint)
}

func TestResolverService_ExternalIDMode_SameIDEditReusesStored(t *testing.T) {
	resolver, _, mockMemory := newResolver(t)
	ctx := context.Background()

	stored := entity.PolygonFootprint(leninaRing())
	mockMemory.EXPECT().
		Remember(ctx, mock.AnythingOfType("entity.MapLocation")).
		Return(nil)

	footprint, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:                usecase.ModeExternalID,
		IsEditingExisting:   true,
		ExistingAddress:     "Ленина 10",
		ExistingFootprint:   &stored,
		ExistingSourceID:    "W123456",
		RequestedExternalID: "W123456",
	})
	require.NoError(t, err)
	assert.Equal(t, stored, footprint)
}

func TestResolverService_ExternalIDMode_DifferentIDWithoutFetchFails(t *testing.T) {
	resolver, _, _ := newResolver(t)

	stored := entity.PolygonFootprint(leninaRing())
	_, err := resolver.Resolve(context.Background(), &usecase.ResolutionContext{
		Mode:                usecase.ModeExternalID,
		IsEditingExisting:   true,
		ExistingAddress:     "Ленина 10",
		ExistingFootprint:   &stored,
		ExistingSourceID:    "W123456",
		RequestedExternalID: "W999999",
		TypedAddress:        "Ленина 12",
	})
	require.ErrorIs(t, err, ErrResolutionFailed)
}

func TestResolverService_AddressMode_NoCandidatesFallsBackToPoint(t *testing.T) {
	resolver, mockGeocoder, mockMemory := newResolver(t)
	ctx := context.Background()

	picked := entity.GeoPoint{Lat: 57.61, Lng: 39.91}
	mockGeocoder.EXPECT().
		ForwardGeocode(ctx, "Несуществующая 1").
		Return(nil, nil)

	mockMemory.EXPECT().
		Remember(ctx, entity.MapLocation{Point: picked, Zoom: constants.DefaultZoom}).
		Return(nil)

	footprint, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:         usecase.ModeAddress,
		TypedAddress: "Несуществующая 1",
		ManualPoint:  &picked,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PointFootprint(picked), footprint)
}

func TestResolverService_AddressMode_NoCandidatesNoPointFails(t *testing.T) {
	resolver, mockGeocoder, _ := newResolver(t)
	ctx := context.Background()

	mockGeocoder.EXPECT().
		ForwardGeocode(ctx, "Несуществующая 1").
		Return([]entity.ExternalCandidate{}, nil)

	_, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:         usecase.ModeAddress,
		TypedAddress: "Несуществующая 1",
	})
	require.ErrorIs(t, err, ErrResolutionFailed)
}

func TestResolverService_AddressMode_GeocoderErrorPropagates(t *testing.T) {
	resolver, mockGeocoder, _ := newResolver(t)
	ctx := context.Background()

	upstream := errors.New("nominatim: 503")
	mockGeocoder.EXPECT().
		ForwardGeocode(ctx, "Ленина 10").
		Return(nil, upstream)

	picked := entity.GeoPoint{Lat: 57.61, Lng: 39.91}
	_, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:         usecase.ModeAddress,
		TypedAddress: "Ленина 10",
		ManualPoint:  &picked,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)
}

func TestResolverService_AddressMode_ZeroPointPolygonTreatedAsAbsent(t *testing.T) {
	resolver, mockGeocoder, mockMemory := newResolver(t)
	ctx := context.Background()

	picked := entity.GeoPoint{Lat: 57.61, Lng: 39.91}
	mockGeocoder.EXPECT().
		ForwardGeocode(ctx, "Ленина 10").
		Return([]entity.ExternalCandidate{
			{Footprint: entity.Footprint{Type: entity.FootprintPolygon}, SourceID: "W100"},
		}, nil)

	mockMemory.EXPECT().
		Remember(ctx, entity.MapLocation{Point: picked, Zoom: constants.DefaultZoom}).
		Return(nil)

	footprint, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:         usecase.ModeAddress,
		TypedAddress: "Ленина 10",
		ManualPoint:  &picked,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PointFootprint(picked), footprint)
}

func TestResolverService_AddressMode_EmptyAfterNormalization(t *testing.T) {
	resolver, _, mockMemory := newResolver(t)
	ctx := context.Background()

	picked := entity.GeoPoint{Lat: 57.61, Lng: 39.91}
	mockMemory.EXPECT().
		Remember(ctx, mock.AnythingOfType("entity.MapLocation")).
		Return(nil)

	footprint, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:         usecase.ModeAddress,
		TypedAddress: " ,, ; ",
		ManualPoint:  &picked,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PointFootprint(picked), footprint)
}

func TestResolverService_MemoryFailureDoesNotFailResolution(t *testing.T) {
	resolver, _, mockMemory := newResolver(t)
	ctx := context.Background()

	picked := entity.GeoPoint{Lat: 57.62, Lng: 39.89}
	mockMemory.EXPECT().
		Remember(ctx, mock.AnythingOfType("entity.MapLocation")).
		Return(errors.New("disk full"))

	footprint, err := resolver.Resolve(ctx, &usecase.ResolutionContext{
		Mode:        usecase.ModeManualPoint,
		ManualPoint: &picked,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PointFootprint(picked), footprint)
}

func TestResolverService_FailedResolutionLeavesMemoryUntouched(t *testing.T) {
	resolver, _, mockMemory := newResolver(t)

	_, err := resolver.Resolve(context.Background(), &usecase.ResolutionContext{
		Mode: usecase.ModeManualPoint,
	})
	require.ErrorIs(t, err, ErrResolutionFailed)
	mockMemory.AssertNotCalled(t, "Remember", mock.Anything, mock.Anything)
}
