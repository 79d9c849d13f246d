package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"tripLogger/business/trip"
	"tripLogger/domain"
	"tripLogger/pkg/logger"
	"tripLogger/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

type TripService interface {
	CreateTrip(ctx context.Context, userID uint, in trip.CreateTripInput) (domain.Trip, error)
	GetTrips(ctx context.Context, userID uint) ([]domain.Trip, error)
	GetTripByID(ctx context.Context, userID, id uint) (domain.Trip, error)
	GetStats(ctx context.Context, userID uint) (domain.TripStats, error)
	GetSpending(ctx context.Context, userID uint) (domain.TripSpending, error)
}

type TripHandler struct {
	tripService TripService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewTripHandler(tripService TripService, timeout time.Duration) *TripHandler {
	return &TripHandler{
		tripService: tripService,
		validator:   validator.New(),
		timeout:     timeout,
	}
}

// Budget and Rating are pointers so a missing field fails "required" while
// an explicit 0 rating is still accepted.
type CreateTripRequest struct {
	Destination string   `json:"destination" validate:"required"`
	StartDate   string   `json:"start_date" validate:"required"`
	EndDate     string   `json:"end_date" validate:"required"`
	Budget      *float64 `json:"budget" validate:"required"`
	Rating      *float64 `json:"rating" validate:"required"`
}

type TripResponse struct {
	ID          uint    `json:"id"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	Rating      float64 `json:"rating"`
}

func toTripResponse(t domain.Trip) TripResponse {
	return TripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   t.StartDate.Format(dateLayout),
		EndDate:     t.EndDate.Format(dateLayout),
		Budget:      t.Budget,
		Rating:      t.Rating,
	}
}

func (h *TripHandler) CreateTrip(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid request body"})
	}
	if err := h.validator.Struct(&req); err != nil {
		logger.Debug("Failed to validate trip request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "destination, start_date, end_date, budget and rating are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.tripService.CreateTrip(ctx, userID, trip.CreateTripInput{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      *req.Budget,
		Rating:      *req.Rating,
	})
	if err != nil {
		if errors.Is(err, trip.ErrInvalidTrip) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to create trip"})
	}

	metrics.TripsCreated.Inc()
	return c.JSON(http.StatusCreated, map[string]uint{"id": created.ID})
}

func (h *TripHandler) GetTrips(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	trips, err := h.tripService.GetTrips(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to get trips"})
	}

	out := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResponse(t))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(out))
}

func (h *TripHandler) GetTripByID(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	tripID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid trip id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	t, err := h.tripService.GetTripByID(ctx, userID, uint(tripID))
	if err != nil {
		if errors.Is(err, domain.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to get trip"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(toTripResponse(t)))
}

func (h *TripHandler) GetStats(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.tripService.GetStats(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to get trip stats"})
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *TripHandler) GetSpending(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	spending, err := h.tripService.GetSpending(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to get spending"})
	}

	return c.JSON(http.StatusOK, spending)
}
