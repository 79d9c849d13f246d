package postgres

import (
	"context"
	"errors"
	"time"

	"tripLogger/domain"
	"tripLogger/pkg/logger"

	gobreaker "github.com/sony/gobreaker/v2"
)

// TripReader is the read side the breaker wraps.
type TripReader interface {
	FindByUserID(ctx context.Context, userID uint) ([]domain.Trip, error)
}

type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// BreakerTripRepository fails fast while the database is unhealthy. It never
// retries; a tripped breaker surfaces gobreaker.ErrOpenState to the caller.
type BreakerTripRepository struct {
	next TripReader
	cb   *gobreaker.CircuitBreaker[[]domain.Trip]
}

func NewBreakerTripRepository(next TripReader, cfg BreakerConfig) *BreakerTripRepository {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// a caller giving up is not a database fault
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	}

	return &BreakerTripRepository{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[[]domain.Trip](settings),
	}
}

func (r *BreakerTripRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Trip, error) {
	return r.cb.Execute(func() ([]domain.Trip, error) {
		return r.next.FindByUserID(ctx, userID)
	})
}

func (r *BreakerTripRepository) State() string {
	return r.cb.State().String()
}
