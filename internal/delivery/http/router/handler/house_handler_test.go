package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"domkarta/internal/delivery/http/validator"
	"domkarta/internal/domain/entity"
	"domkarta/internal/domain/repository"
	"domkarta/internal/infra/qrcode"
	mocks "domkarta/internal/mocks/usecase"
	"domkarta/internal/usecase"
	"domkarta/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHouseHandler(t *testing.T) (*HouseHandler, *mocks.MockHouseUsecase, *mocks.MockSearchUsecase) {
	t.Helper()

	houseUC := mocks.NewMockHouseUsecase(t)
	searchUC := mocks.NewMockSearchUsecase(t)

	handler := NewHouseHandler(HouseHandlerParams{
		HouseUC:  houseUC,
		SearchUC: searchUC,
		QRCode:   qrcode.NewQRCodeService(256, "M", "http://localhost:3000"),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return handler, houseUC, searchUC
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func sampleHouse() *entity.House {
	return &entity.House{
		ID:      "h-1",
		Address: "Ленина 10",
		Footprint: entity.PolygonFootprint([]entity.GeoPoint{
			{Lat: 57.6261, Lng: 39.8971},
			{Lat: 57.6262, Lng: 39.8974},
			{Lat: 57.6259, Lng: 39.8976},
		}),
		Year:           "1958",
		BuildingSeries: []string{"1-515"},
		Floors:         5,
	}
}

func TestHouseHandler_CreateHouse(t *testing.T) {
	handler, houseUC, _ := newHouseHandler(t)

	houseUC.EXPECT().
		CreateHouse(mock.Anything, mock.AnythingOfType("*usecase.HouseInput")).
		Run(func(_ context.Context, input *usecase.HouseInput) {
			assert.Equal(t, "Ленина 10", input.Address)
			assert.Equal(t, usecase.ModeManualPoint, input.Mode)
			require.NotNil(t, input.ManualPoint)
			assert.InDelta(t, 57.6261, input.ManualPoint.Lat, 1e-9)
		}).
		Return(sampleHouse(), nil)

	body := `{
		"address": "Ленина 10",
		"year": "1958",
		"building_series": "1-515",
		"floors": 5,
		"mode": "manualPoint",
		"manual_point": {"lat": 57.6261, "lng": 39.8971}
	}`
	c, rec := newContext(t, http.MethodPost, "/admin/houses", body)

	err := handler.CreateHouse(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"h-1"`)
	assert.Contains(t, rec.Body.String(), `"type":"Polygon"`)
}

func TestHouseHandler_CreateHouse_InvalidMode(t *testing.T) {
	handler, houseUC, _ := newHouseHandler(t)

	body := `{"address": "Ленина 10", "mode": "teleport"}`
	c, rec := newContext(t, http.MethodPost, "/admin/houses", body)

	err := handler.CreateHouse(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	houseUC.AssertNotCalled(t, "CreateHouse")
}

func TestHouseHandler_CreateHouse_ResolutionFailure(t *testing.T) {
	handler, houseUC, _ := newHouseHandler(t)

	houseUC.EXPECT().
		CreateHouse(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(impl.ErrResolutionFailed, "resolve footprint"))

	c, rec := newContext(t, http.MethodPost, "/admin/houses", `{"address": "нигде"}`)

	err := handler.CreateHouse(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "RESOLUTION_FAILED")
}

func TestHouseHandler_GetHouse_NotFound(t *testing.T) {
	handler, houseUC, _ := newHouseHandler(t)

	houseUC.EXPECT().
		GetHouse(mock.Anything, "missing").
		Return(nil, repository.ErrHouseNotFound)

	c, rec := newContext(t, http.MethodGet, "/houses/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.GetHouse(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HOUSE_NOT_FOUND")
}

func TestHouseHandler_UpdateHouse(t *testing.T) {
	handler, houseUC, _ := newHouseHandler(t)

	updated := sampleHouse()
	updated.Year = "1958-1961"

	houseUC.EXPECT().
		UpdateHouse(mock.Anything, "h-1", mock.AnythingOfType("*usecase.HouseInput")).
		Return(updated, nil)

	c, rec := newContext(t, http.MethodPut, "/admin/houses/h-1", `{"address": "Ленина 10", "year": "1958-1961"}`)
	c.SetParamNames("id")
	c.SetParamValues("h-1")

	err := handler.UpdateHouse(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"year":"1958-1961"`)
}

func TestHouseHandler_DeleteHouse(t *testing.T) {
	handler, houseUC, _ := newHouseHandler(t)

	houseUC.EXPECT().
		DeleteHouse(mock.Anything, "h-1").
		Return(nil)

	c, rec := newContext(t, http.MethodDelete, "/admin/houses/h-1", "")
	c.SetParamNames("id")
	c.SetParamValues("h-1")

	err := handler.DeleteHouse(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHouseHandler_SearchHouses_NoFilter(t *testing.T) {
	handler, _, searchUC := newHouseHandler(t)

	searchUC.EXPECT().
		SearchHouses(mock.Anything, mock.AnythingOfType("*usecase.SearchInput")).
		Return(nil, nil)

	c, rec := newContext(t, http.MethodGet, "/houses/search", "")

	err := handler.SearchHouses(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No active filter")
}

func TestHouseHandler_SearchHouses_QueryBinding(t *testing.T) {
	handler, _, searchUC := newHouseHandler(t)

	searchUC.EXPECT().
		SearchHouses(mock.Anything, mock.AnythingOfType("*usecase.SearchInput")).
		Run(func(_ context.Context, input *usecase.SearchInput) {
			assert.Equal(t, "Ленина", input.Term)
			assert.Equal(t, usecase.SearchByAddress, input.Type)
			assert.Equal(t, "Ярославль", input.City)
			assert.False(t, input.AllMap)
		}).
		Return([]*entity.House{sampleHouse()}, nil)

	c, rec := newContext(t, http.MethodGet,
		"/houses/search?term=%D0%9B%D0%B5%D0%BD%D0%B8%D0%BD%D0%B0&type=address&city=%D0%AF%D1%80%D0%BE%D1%81%D0%BB%D0%B0%D0%B2%D0%BB%D1%8C", "")

	err := handler.SearchHouses(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"h-1"`)
}

func TestHouseHandler_StreamHouses(t *testing.T) {
	handler, houseUC, _ := newHouseHandler(t)

	snapshots := make(chan []*entity.House, 1)
	snapshots <- []*entity.House{sampleHouse()}
	close(snapshots)

	houseUC.EXPECT().
		WatchHouses(mock.Anything).
		Return((<-chan []*entity.House)(snapshots), nil)

	c, rec := newContext(t, http.MethodGet, "/houses/stream", "")

	err := handler.StreamHouses(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "data: ")
	assert.Contains(t, rec.Body.String(), `"id":"h-1"`)
}

func TestHouseHandler_GetHouseQR(t *testing.T) {
	handler, houseUC, _ := newHouseHandler(t)

	houseUC.EXPECT().
		GetHouse(mock.Anything, "h-1").
		Return(sampleHouse(), nil)

	c, rec := newContext(t, http.MethodGet, "/houses/h-1/qr", "")
	c.SetParamNames("id")
	c.SetParamValues("h-1")

	err := handler.GetHouseQR(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}
