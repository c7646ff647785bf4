package impl

import (
	"context"
	"errors"
	"testing"

	"domkarta/internal/domain/entity"
	"domkarta/internal/domain/service"
	mockService "domkarta/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeService_ReverseGeocode(t *testing.T) {
	mockGeocoder := mockService.NewMockGeocodingService(t)
	svc := NewGeocodeService(mockGeocoder, newDiscardLogger())

	ctx := context.Background()
	point := entity.GeoPoint{Lat: 57.626, Lng: 39.897}
	mockGeocoder.EXPECT().
		ReverseGeocode(ctx, point).
		Return(&service.ReverseResult{DisplayAddress: "Ярославль Ленина 10", SourceID: "W123456"}, nil)

	result, err := svc.ReverseGeocode(ctx, point)
	require.NoError(t, err)
	assert.Equal(t, "Ярославль Ленина 10", result.DisplayAddress)
	assert.Equal(t, "W123456", result.SourceID)
}

func TestGeocodeService_FetchFootprint(t *testing.T) {
	mockGeocoder := mockService.NewMockGeocodingService(t)
	svc := NewGeocodeService(mockGeocoder, newDiscardLogger())

	ctx := context.Background()
	footprint := entity.PolygonFootprint(leninaRing())
	mockGeocoder.EXPECT().
		LookupFootprintByID(ctx, "W123456").
		Return(&footprint, nil)

	candidate, err := svc.FetchFootprint(ctx, "W123456")
	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, footprint, candidate.Footprint)
	assert.Equal(t, "W123456", candidate.SourceID)
}

func TestGeocodeService_FetchFootprint_NoGeometry(t *testing.T) {
	mockGeocoder := mockService.NewMockGeocodingService(t)
	svc := NewGeocodeService(mockGeocoder, newDiscardLogger())

	ctx := context.Background()
	mockGeocoder.EXPECT().
		LookupFootprintByID(ctx, "W999999").
		Return(nil, nil)

	candidate, err := svc.FetchFootprint(ctx, "W999999")
	require.NoError(t, err)
	assert.Nil(t, candidate)
}

func TestGeocodeService_FetchFootprint_Error(t *testing.T) {
	mockGeocoder := mockService.NewMockGeocodingService(t)
	svc := NewGeocodeService(mockGeocoder, newDiscardLogger())

	ctx := context.Background()
	lookupErr := errors.New("nominatim: 503")
	mockGeocoder.EXPECT().
		LookupFootprintByID(ctx, "W123456").
		Return(nil, lookupErr)

	_, err := svc.FetchFootprint(ctx, "W123456")
	require.ErrorIs(t, err, lookupErr)
}
