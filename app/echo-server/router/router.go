package router

import (
	"tripLogger/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func SetupAuthRoutes(e *echo.Echo, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	auth := e.Group("/auth")

	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)
	auth.GET("/me", handler.Me, authRequired)
}

func SetupTripRoutes(e *echo.Echo, handler *rest.TripHandler, authRequired echo.MiddlewareFunc) {
	trips := e.Group("/trips", authRequired)

	trips.POST("", handler.CreateTrip)
	trips.GET("", handler.GetTrips)
	trips.GET("/stats", handler.GetStats)
	trips.GET("/spending", handler.GetSpending)
	trips.GET("/:id", handler.GetTripByID)
}

func SetupRecommendationRoutes(e *echo.Echo, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	e.GET("/recommend", handler.Recommend, authRequired)
}
