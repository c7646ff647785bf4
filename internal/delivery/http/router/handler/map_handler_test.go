package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"domkarta/config"
	"domkarta/internal/domain/entity"
	mocks "domkarta/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMapHandler(t *testing.T) (*MapHandler, *mocks.MockMapLocationUsecase) {
	t.Helper()

	locationUC := mocks.NewMockMapLocationUsecase(t)

	cfg := &config.Config{
		Map: &config.MapConfig{
			DefaultLat:  57.626,
			DefaultLng:  39.897,
			DefaultZoom: 13,
		},
	}

	handler := NewMapHandler(MapHandlerParams{
		LocationUC: locationUC,
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return handler, locationUC
}

func TestMapHandler_GetLastLocation_Remembered(t *testing.T) {
	handler, locationUC := newMapHandler(t)

	locationUC.EXPECT().
		Recall(mock.Anything).
		Return(&entity.MapLocation{
			Point: entity.GeoPoint{Lat: 58.0485, Lng: 38.8584},
			Zoom:  13,
		}, nil)

	c, rec := newContext(t, http.MethodGet, "/map/last-location", "")

	err := handler.GetLastLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"lat":58.0485`)
	assert.Contains(t, rec.Body.String(), `"remembered":true`)
}

func TestMapHandler_GetLastLocation_Default(t *testing.T) {
	handler, locationUC := newMapHandler(t)

	locationUC.EXPECT().
		Recall(mock.Anything).
		Return(nil, nil)

	c, rec := newContext(t, http.MethodGet, "/map/last-location", "")

	err := handler.GetLastLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"lat":57.626`)
	assert.Contains(t, rec.Body.String(), `"zoom":13`)
	assert.Contains(t, rec.Body.String(), `"remembered":false`)
}
