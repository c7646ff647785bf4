package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"domkarta/internal/delivery/http/response"
	"domkarta/internal/domain/entity"
	domainerrors "domkarta/internal/domain/errors"
	"domkarta/internal/domain/repository"
	"domkarta/internal/domain/service"
	"domkarta/internal/usecase"
	"domkarta/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HouseHandlerParams holds dependencies for HouseHandler, injected by Fx.
type HouseHandlerParams struct {
	fx.In

	HouseUC  usecase.HouseUsecase
	SearchUC usecase.SearchUsecase
	QRCode   service.QRCodeService
	Logger   *slog.Logger
}

// HouseHandler holds dependencies for the house directory handlers
type HouseHandler struct {
	houseUC  usecase.HouseUsecase
	searchUC usecase.SearchUsecase
	qrcode   service.QRCodeService
	logger   *slog.Logger
}

// NewHouseHandler is the constructor for HouseHandler
func NewHouseHandler(params HouseHandlerParams) *HouseHandler {
	return &HouseHandler{
		houseUC:  params.HouseUC,
		searchUC: params.SearchUC,
		qrcode:   params.QRCode,
		logger:   params.Logger,
	}
}

// FloorPlanRequest is one floor-plan entry of a submitted house form.
type FloorPlanRequest struct {
	URL string `json:"url"`
}

// HouseRequest represents the request body for creating or updating a house
type HouseRequest struct {
	Address        string             `json:"address"`
	Year           string             `json:"year"`
	BuildingSeries string             `json:"building_series"`
	Floors         int                `json:"floors" validate:"min=0"`
	ImageURL       string             `json:"image_url"`
	FloorPlans     []FloorPlanRequest `json:"floor_plans"`
	ExternalID     string             `json:"external_id"`

	Mode        string           `json:"mode" validate:"omitempty,oneof=address manualPoint externalId"`
	ManualPoint *GeoPointRequest `json:"manual_point,omitempty"`
}

// GeoPointRequest is a single coordinate in a request body.
type GeoPointRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// GeoPointResponse is a single coordinate in a response body.
type GeoPointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FootprintResponse is the resolved footprint of a house.
type FootprintResponse struct {
	Type   string             `json:"type"`
	Points []GeoPointResponse `json:"points"`
}

// FloorPlanResponse is one floor-plan entry of a house record.
type FloorPlanResponse struct {
	URL string `json:"url"`
}

// HouseResponse represents a house record in API responses
type HouseResponse struct {
	ID             string              `json:"id"`
	Address        string              `json:"address"`
	Footprint      FootprintResponse   `json:"footprint"`
	Year           string              `json:"year,omitempty"`
	BuildingSeries []string            `json:"building_series,omitempty"`
	Floors         int                 `json:"floors,omitempty"`
	ImageURL       string              `json:"image_url,omitempty"`
	FloorPlans     []FloorPlanResponse `json:"floor_plans,omitempty"`
	ExternalID     string              `json:"external_id,omitempty"`
}

// SearchHousesRequest represents the query parameters of a directory search
type SearchHousesRequest struct {
	Term   string `query:"term"`
	Type   string `query:"type" validate:"omitempty,oneof=address year buildingSeries"`
	City   string `query:"city"`
	AllMap bool   `query:"all_map"`
}

// CreateHouse handles creating a new house record
func (h *HouseHandler) CreateHouse(c echo.Context) error {
	var req HouseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid house input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	house, err := h.houseUC.CreateHouse(c.Request().Context(), toHouseInput(&req))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toHouseResponse(house), "House created successfully")
}

// UpdateHouse handles updating an existing house record
func (h *HouseHandler) UpdateHouse(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_ID", "House ID is required")
	}

	var req HouseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid house input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	house, err := h.houseUC.UpdateHouse(c.Request().Context(), id, toHouseInput(&req))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toHouseResponse(house), "House updated successfully")
}

// DeleteHouse handles deleting a house record
func (h *HouseHandler) DeleteHouse(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_ID", "House ID is required")
	}

	if err := h.houseUC.DeleteHouse(c.Request().Context(), id); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "House deleted successfully")
}

// GetHouse handles retrieving a single house record
func (h *HouseHandler) GetHouse(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_ID", "House ID is required")
	}

	house, err := h.houseUC.GetHouse(c.Request().Context(), id)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toHouseResponse(house), "House retrieved successfully")
}

// ListHouses handles retrieving the full directory
func (h *HouseHandler) ListHouses(c echo.Context) error {
	houses, err := h.houseUC.ListHouses(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toHouseResponses(houses), "Houses retrieved successfully")
}

// SearchHouses handles filtering the directory by term and city
func (h *HouseHandler) SearchHouses(c echo.Context) error {
	var req SearchHousesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	houses, err := h.searchUC.SearchHouses(c.Request().Context(), &usecase.SearchInput{
		Term:   req.Term,
		Type:   req.Type,
		City:   req.City,
		AllMap: req.AllMap,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	// nil means "no active filter"; the client falls back to the full list.
	if houses == nil {
		return response.Success(c, http.StatusOK, nil, "No active filter")
	}

	return response.Success(c, http.StatusOK, toHouseResponses(houses), "Houses retrieved successfully")
}

// StreamHouses pushes authoritative collection snapshots to the client as
// server-sent events, so open maps see edits without polling. The stream
// ends when the client disconnects or the store subscription closes.
func (h *HouseHandler) StreamHouses(c echo.Context) error {
	snapshots, err := h.houseUC.WatchHouses(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	encoder := json.NewEncoder(resp)
	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case houses, ok := <-snapshots:
			if !ok {
				return nil
			}
			if _, err := resp.Write([]byte("data: ")); err != nil {
				return errors.WithStack(err)
			}
			if err := encoder.Encode(toHouseResponses(houses)); err != nil {
				return errors.WithStack(err)
			}
			if _, err := resp.Write([]byte("\n")); err != nil {
				return errors.WithStack(err)
			}
			resp.Flush()
		}
	}
}

// GetHouseQR renders a share QR code deep-linking the map to a house
func (h *HouseHandler) GetHouseQR(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_ID", "House ID is required")
	}

	if _, err := h.houseUC.GetHouse(c.Request().Context(), id); err != nil {
		return h.handleAppError(c, err)
	}

	png, err := h.qrcode.GenerateHouseQR(id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func toHouseInput(req *HouseRequest) *usecase.HouseInput {
	input := &usecase.HouseInput{
		Address:        req.Address,
		Year:           req.Year,
		BuildingSeries: req.BuildingSeries,
		Floors:         req.Floors,
		ImageURL:       req.ImageURL,
		ExternalID:     req.ExternalID,
		Mode:           usecase.ResolutionMode(req.Mode),
	}

	for _, plan := range req.FloorPlans {
		input.FloorPlans = append(input.FloorPlans, usecase.FloorPlanInput{URL: plan.URL})
	}

	if req.ManualPoint != nil {
		input.ManualPoint = &entity.GeoPoint{Lat: req.ManualPoint.Lat, Lng: req.ManualPoint.Lng}
	}

	return input
}

func toHouseResponse(house *entity.House) *HouseResponse {
	resp := &HouseResponse{
		ID:             house.ID,
		Address:        house.Address,
		Year:           house.Year,
		BuildingSeries: house.BuildingSeries,
		Floors:         house.Floors,
		ImageURL:       house.ImageURL,
		ExternalID:     house.ExternalID,
		Footprint: FootprintResponse{
			Type:   string(house.Footprint.Type),
			Points: make([]GeoPointResponse, 0, len(house.Footprint.Points)),
		},
	}

	for _, p := range house.Footprint.Points {
		resp.Footprint.Points = append(resp.Footprint.Points, GeoPointResponse{Lat: p.Lat, Lng: p.Lng})
	}

	for _, plan := range house.FloorPlans {
		resp.FloorPlans = append(resp.FloorPlans, FloorPlanResponse{URL: plan.URL})
	}

	return resp
}

func toHouseResponses(houses []*entity.House) []*HouseResponse {
	responses := make([]*HouseResponse, 0, len(houses))
	for _, house := range houses {
		responses = append(responses, toHouseResponse(house))
	}

	return responses
}

// handleAppError handles application errors
func (h *HouseHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	switch {
	case errors.Is(err, repository.ErrHouseNotFound):
		return response.Error(c, domainerrors.ErrHouseNotFound.HTTPCode(),
			domainerrors.ErrHouseNotFound.ErrorCode(), domainerrors.ErrHouseNotFound.Message(), "")
	case errors.Is(err, impl.ErrResolutionFailed):
		return response.Error(c, domainerrors.ErrResolutionFailed.HTTPCode(),
			domainerrors.ErrResolutionFailed.ErrorCode(), domainerrors.ErrResolutionFailed.Message(), "")
	case errors.Is(err, repository.ErrPersistenceRejected):
		return response.Error(c, domainerrors.ErrPersistenceRejected.HTTPCode(),
			domainerrors.ErrPersistenceRejected.ErrorCode(), domainerrors.ErrPersistenceRejected.Message(), "")
	}

	var lookupErr *service.LookupError
	if errors.As(err, &lookupErr) {
		return response.Error(c, domainerrors.ErrGeocodingFailed.HTTPCode(),
			domainerrors.ErrGeocodingFailed.ErrorCode(), domainerrors.ErrGeocodingFailed.Message(), "")
	}

	return errors.WithStack(err)
}
