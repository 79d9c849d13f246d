package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"tripLogger/business/recommend"
	"tripLogger/domain"
	"tripLogger/pkg/logger"
	"tripLogger/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type RecommendationService interface {
	RequestRecommendations(ctx context.Context, userID uint) (domain.RecommendationResult, error)
}

type RecommendationHandler struct {
	recommendService RecommendationService
	timeout          time.Duration
}

func NewRecommendationHandler(svc RecommendationService, timeout time.Duration) *RecommendationHandler {
	return &RecommendationHandler{
		recommendService: svc,
		timeout:          timeout,
	}
}

// Recommend serves GET /recommend. The success body is the bare
// RecommendationResult, without an envelope.
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	start := time.Now()
	status := http.StatusOK
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
		metrics.RecommendRequests.WithLabelValues(strconv.Itoa(status)).Inc()
	}()

	userID, ok := currentUserID(c)
	if !ok {
		status = http.StatusUnauthorized
		return c.JSON(status, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.recommendService.RequestRecommendations(ctx, userID)
	if err != nil {
		status = recommendErrorStatus(err)
		switch status {
		case http.StatusUnprocessableEntity:
			return c.JSON(status, ResponseError{Message: err.Error()})
		case http.StatusServiceUnavailable:
			return c.JSON(status, ResponseError{Message: "recommendations are temporarily unavailable"})
		}
		logger.Error("Failed to build recommendations", "user_id", userID, err)
		return c.JSON(status, ResponseError{Message: "failed to build recommendations"})
	}

	return c.JSON(status, result)
}

func recommendErrorStatus(err error) int {
	switch {
	case errors.Is(err, recommend.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, recommend.ErrRepository):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
