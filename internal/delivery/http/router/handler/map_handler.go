package handler

import (
	"log/slog"
	"net/http"

	"domkarta/config"
	"domkarta/internal/delivery/http/response"
	domainerrors "domkarta/internal/domain/errors"
	"domkarta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	LocationUC usecase.MapLocationUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// MapHandler holds dependencies for the map-viewport handlers
type MapHandler struct {
	locationUC usecase.MapLocationUsecase
	mapConfig  *config.MapConfig
	logger     *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		locationUC: params.LocationUC,
		mapConfig:  params.Config.Map,
		logger:     params.Logger,
	}
}

// LastLocationResponse is the viewport anchor the map opens on. Remembered
// is false when the configured default is served instead of a stored one.
type LastLocationResponse struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Zoom       int     `json:"zoom"`
	Remembered bool    `json:"remembered"`
}

// GetLastLocation returns the remembered viewport anchor, falling back to
// the configured default viewport when nothing was remembered yet
func (h *MapHandler) GetLastLocation(c echo.Context) error {
	location, err := h.locationUC.Recall(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	if location == nil {
		return response.Success(c, http.StatusOK, &LastLocationResponse{
			Lat:  h.mapConfig.DefaultLat,
			Lng:  h.mapConfig.DefaultLng,
			Zoom: h.mapConfig.DefaultZoom,
		}, "Default location")
	}

	return response.Success(c, http.StatusOK, &LastLocationResponse{
		Lat:        location.Point.Lat,
		Lng:        location.Point.Lng,
		Zoom:       location.Zoom,
		Remembered: true,
	}, "Last location retrieved successfully")
}

// handleAppError handles application errors
func (h *MapHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
