// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"domkarta/internal/delivery/http/middleware"
	"domkarta/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HouseHandler   *handler.HouseHandler
	GeocodeHandler *handler.GeocodeHandler
	MapHandler     *handler.MapHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	houseHandler   *handler.HouseHandler
	geocodeHandler *handler.GeocodeHandler
	mapHandler     *handler.MapHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		houseHandler:   params.HouseHandler,
		geocodeHandler: params.GeocodeHandler,
		mapHandler:     params.MapHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public read routes used by the map viewer
	houses := e.Group("/houses")
	{
		houses.GET("", r.houseHandler.ListHouses)
		houses.GET("/stream", r.houseHandler.StreamHouses)
		houses.GET("/search", r.houseHandler.SearchHouses)
		houses.GET("/:id", r.houseHandler.GetHouse)
		houses.GET("/:id/qr", r.houseHandler.GetHouseQR)
	}

	mapGroup := e.Group("/map")
	{
		mapGroup.GET("/last-location", r.mapHandler.GetLastLocation)
	}

	// Admin routes: every mutation and every picking assist requires an
	// authenticated user holding the admin role.
	admin := e.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireAdmin)
	{
		admin.POST("/houses", r.houseHandler.CreateHouse)
		admin.PUT("/houses/:id", r.houseHandler.UpdateHouse)
		admin.DELETE("/houses/:id", r.houseHandler.DeleteHouse)

		admin.GET("/geocode/reverse", r.geocodeHandler.ReverseGeocode)
		admin.GET("/geocode/footprint/:id", r.geocodeHandler.LookupFootprint)
	}
}
