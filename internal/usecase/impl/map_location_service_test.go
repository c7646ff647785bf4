package impl

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"domkarta/internal/domain/constants"
	"domkarta/internal/domain/entity"
	mockService "domkarta/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMapLocationService_RememberStoresUnderFixedKey(t *testing.T) {
	mockStore := mockService.NewMockKeyValueStore(t)
	svc := NewMapLocationService(mockStore, newDiscardLogger())

	ctx := context.Background()
	location := entity.MapLocation{Point: entity.GeoPoint{Lat: 57.626, Lng: 39.897}, Zoom: 13}

	var stored string
	mockStore.EXPECT().
		Set(ctx, constants.LastLocationKey, mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, value string) {
			stored = value
		}).
		Return(nil)

	require.NoError(t, svc.Remember(ctx, location))

	var roundTripped entity.MapLocation
	require.NoError(t, json.Unmarshal([]byte(stored), &roundTripped))
	assert.Equal(t, location, roundTripped)
}

func TestMapLocationService_RecallRoundTrip(t *testing.T) {
	mockStore := mockService.NewMockKeyValueStore(t)
	svc := NewMapLocationService(mockStore, newDiscardLogger())

	ctx := context.Background()
	mockStore.EXPECT().
		Get(ctx, constants.LastLocationKey).
		Return(`{"point":{"lat":57.626,"lng":39.897},"zoom":13}`, true, nil)

	location, err := svc.Recall(ctx)
	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, entity.MapLocation{Point: entity.GeoPoint{Lat: 57.626, Lng: 39.897}, Zoom: 13}, *location)
}

func TestMapLocationService_RecallNothingStored(t *testing.T) {
	mockStore := mockService.NewMockKeyValueStore(t)
	svc := NewMapLocationService(mockStore, newDiscardLogger())

	ctx := context.Background()
	mockStore.EXPECT().
		Get(ctx, constants.LastLocationKey).
		Return("", false, nil)

	location, err := svc.Recall(ctx)
	require.NoError(t, err)
	assert.Nil(t, location)
}

func TestMapLocationService_RecallCorruptedValueDiscarded(t *testing.T) {
	mockStore := mockService.NewMockKeyValueStore(t)
	svc := NewMapLocationService(mockStore, newDiscardLogger())

	ctx := context.Background()
	mockStore.EXPECT().
		Get(ctx, constants.LastLocationKey).
		Return("{not json", true, nil)

	location, err := svc.Recall(ctx)
	require.NoError(t, err)
	assert.Nil(t, location)
}

func TestMapLocationService_StoreErrorPropagates(t *testing.T) {
	mockStore := mockService.NewMockKeyValueStore(t)
	svc := NewMapLocationService(mockStore, newDiscardLogger())

	ctx := context.Background()
	storeErr := errors.New("read only file system")
	mockStore.EXPECT().
		Set(ctx, constants.LastLocationKey, mock.AnythingOfType("string")).
		Return(storeErr)

	err := svc.Remember(ctx, entity.MapLocation{Point: entity.GeoPoint{Lat: 1, Lng: 2}, Zoom: 13})
	require.ErrorIs(t, err, storeErr)
}
