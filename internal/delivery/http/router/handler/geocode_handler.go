package handler

import (
	"log/slog"
	"net/http"

	"domkarta/internal/delivery/http/response"
	"domkarta/internal/domain/entity"
	domainerrors "domkarta/internal/domain/errors"
	"domkarta/internal/domain/service"
	"domkarta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GeocodeHandlerParams holds dependencies for GeocodeHandler, injected by Fx.
type GeocodeHandlerParams struct {
	fx.In

	GeocodeUC usecase.GeocodeUsecase
	Logger    *slog.Logger
}

// GeocodeHandler holds dependencies for the picking-assist handlers
type GeocodeHandler struct {
	geocodeUC usecase.GeocodeUsecase
	logger    *slog.Logger
}

// NewGeocodeHandler is the constructor for GeocodeHandler
func NewGeocodeHandler(params GeocodeHandlerParams) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: params.GeocodeUC,
		logger:    params.Logger,
	}
}

// ReverseGeocodeRequest represents the query parameters of a reverse lookup
type ReverseGeocodeRequest struct {
	Lat float64 `query:"lat" validate:"min=-90,max=90"`
	Lng float64 `query:"lng" validate:"min=-180,max=180"`
}

// ReverseGeocodeResponse carries the composed address of a clicked point
// plus the source identifier usable for a follow-up footprint lookup.
type ReverseGeocodeResponse struct {
	Address    string `json:"address"`
	ExternalID string `json:"external_id,omitempty"`
}

// FootprintLookupResponse carries the boundary fetched for a source
// identifier. Found is false when the identifier yields no geometry.
type FootprintLookupResponse struct {
	Found      bool               `json:"found"`
	ExternalID string             `json:"external_id,omitempty"`
	Footprint  *FootprintResponse `json:"footprint,omitempty"`
}

// ReverseGeocode names a clicked map point
func (h *GeocodeHandler) ReverseGeocode(c echo.Context) error {
	var req ReverseGeocodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coordinates")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.geocodeUC.ReverseGeocode(c.Request().Context(), entity.GeoPoint{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		return h.handleAppError(c, err)
	}
	if result == nil {
		return response.NotFound(c, "ADDRESS_NOT_FOUND", "Nothing found at this point")
	}

	return response.Success(c, http.StatusOK, &ReverseGeocodeResponse{
		Address:    result.DisplayAddress,
		ExternalID: result.SourceID,
	}, "Address resolved successfully")
}

// LookupFootprint fetches a precise boundary for a source identifier
func (h *GeocodeHandler) LookupFootprint(c echo.Context) error {
	sourceID := c.Param("id")
	if sourceID == "" {
		return response.BadRequest(c, "INVALID_ID", "Source identifier is required")
	}

	candidate, err := h.geocodeUC.FetchFootprint(c.Request().Context(), sourceID)
	if err != nil {
		return h.handleAppError(c, err)
	}
	if candidate == nil {
		return response.Success(c, http.StatusOK, &FootprintLookupResponse{Found: false}, "No geometry for this identifier")
	}

	footprint := &FootprintResponse{
		Type:   string(candidate.Footprint.Type),
		Points: make([]GeoPointResponse, 0, len(candidate.Footprint.Points)),
	}
	for _, p := range candidate.Footprint.Points {
		footprint.Points = append(footprint.Points, GeoPointResponse{Lat: p.Lat, Lng: p.Lng})
	}

	return response.Success(c, http.StatusOK, &FootprintLookupResponse{
		Found:      true,
		ExternalID: candidate.SourceID,
		Footprint:  footprint,
	}, "Footprint retrieved successfully")
}

// handleAppError handles application errors
func (h *GeocodeHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	var lookupErr *service.LookupError
	if errors.As(err, &lookupErr) {
		return response.Error(c, domainerrors.ErrGeocodingFailed.HTTPCode(),
			domainerrors.ErrGeocodingFailed.ErrorCode(), domainerrors.ErrGeocodingFailed.Message(), "")
	}

	return errors.WithStack(err)
}
