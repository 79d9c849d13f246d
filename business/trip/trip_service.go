package trip

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"tripLogger/business/recommend"
	"tripLogger/domain"
	"tripLogger/pkg/logger"
)

const (
	dateLayout     = "2006-01-02"
	monthLayout    = "2006-01"
	favoritesLimit = 5
	maxTripRating  = 5.0
)

// ErrInvalidTrip matches every trip validation failure.
var ErrInvalidTrip = errors.New("invalid trip")

type validationError string

func (e validationError) Error() string { return string(e) }

func (e validationError) Is(target error) bool { return target == ErrInvalidTrip }

// TripRepository contract interface
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	FindByUserID(ctx context.Context, userID uint) ([]domain.Trip, error)
	FindByID(ctx context.Context, userID, id uint) (domain.Trip, error)
}

// DestinationLookup resolves free-text names to catalog spelling.
type DestinationLookup interface {
	Lookup(name string) (domain.Destination, bool)
}

type CreateTripInput struct {
	Destination string
	StartDate   string
	EndDate     string
	Budget      float64
	Rating      float64
}

type tripService struct {
	tripRepo TripRepository
	catalog  DestinationLookup
}

func NewTripService(tripRepo TripRepository, catalog DestinationLookup) *tripService {
	return &tripService{
		tripRepo: tripRepo,
		catalog:  catalog,
	}
}

func (s *tripService) CreateTrip(ctx context.Context, userID uint, in CreateTripInput) (domain.Trip, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create trip")
		return domain.Trip{}, fmt.Errorf("context error: %w", err)
	}

	trip, err := s.buildTrip(userID, in)
	if err != nil {
		logger.Warn("Invalid trip data", "user_id", userID, err)
		return domain.Trip{}, err
	}

	if err := s.tripRepo.Create(ctx, &trip); err != nil {
		logger.Error("Failed to create trip", err)
		return domain.Trip{}, err
	}

	return trip, nil
}

// buildTrip validates the input and resolves the destination to its catalog
// name so later exact-name comparisons line up with the catalog.
func (s *tripService) buildTrip(userID uint, in CreateTripInput) (domain.Trip, error) {
	name := recommend.NormalizeName(in.Destination)
	if name == "" {
		return domain.Trip{}, validationError("destination is required")
	}
	if s.catalog != nil {
		if d, ok := s.catalog.Lookup(name); ok {
			name = d.Name
		}
	}

	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return domain.Trip{}, validationError("invalid date format, use YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return domain.Trip{}, validationError("invalid date format, use YYYY-MM-DD")
	}
	if end.Before(start) {
		return domain.Trip{}, validationError("end date cannot be before start date")
	}

	if !(in.Budget > 0) {
		return domain.Trip{}, validationError("budget must be greater than 0")
	}
	if !(in.Rating >= 0 && in.Rating <= maxTripRating) {
		return domain.Trip{}, validationError("rating must be between 0 and 5")
	}

	return domain.Trip{
		UserID:      userID,
		Destination: name,
		StartDate:   start,
		EndDate:     end,
		Budget:      in.Budget,
		Rating:      in.Rating,
	}, nil
}

func (s *tripService) GetTrips(ctx context.Context, userID uint) ([]domain.Trip, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	trips, err := s.tripRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to find trips", err)
		return nil, err
	}

	return trips, nil
}

func (s *tripService) GetTripByID(ctx context.Context, userID, id uint) (domain.Trip, error) {
	if id == 0 {
		return domain.Trip{}, domain.ErrTripNotFound
	}

	if err := ctx.Err(); err != nil {
		return domain.Trip{}, fmt.Errorf("context error: %w", err)
	}

	trip, err := s.tripRepo.FindByID(ctx, userID, id)
	if err != nil {
		if !errors.Is(err, domain.ErrTripNotFound) {
			logger.Error("Failed to find trip by id", err)
		}
		return domain.Trip{}, err
	}

	return trip, nil
}

// GetStats counts trips per start month and the five most visited
// destinations. Equal counts keep the order destinations first appear in.
func (s *tripService) GetStats(ctx context.Context, userID uint) (domain.TripStats, error) {
	trips, err := s.GetTrips(ctx, userID)
	if err != nil {
		return domain.TripStats{}, err
	}

	stats := domain.TripStats{
		TripsByMonth:         make(map[string]int),
		FavoriteDestinations: []domain.DestinationFrequency{},
	}

	index := make(map[string]int)
	for _, t := range trips {
		stats.TripsByMonth[t.StartDate.Format(monthLayout)]++

		i, seen := index[t.Destination]
		if !seen {
			index[t.Destination] = len(stats.FavoriteDestinations)
			stats.FavoriteDestinations = append(stats.FavoriteDestinations, domain.DestinationFrequency{
				Destination: t.Destination,
				Count:       1,
			})
			continue
		}
		stats.FavoriteDestinations[i].Count++
	}

	sort.SliceStable(stats.FavoriteDestinations, func(i, j int) bool {
		return stats.FavoriteDestinations[i].Count > stats.FavoriteDestinations[j].Count
	})
	if len(stats.FavoriteDestinations) > favoritesLimit {
		stats.FavoriteDestinations = stats.FavoriteDestinations[:favoritesLimit]
	}

	return stats, nil
}

func (s *tripService) GetSpending(ctx context.Context, userID uint) (domain.TripSpending, error) {
	trips, err := s.GetTrips(ctx, userID)
	if err != nil {
		return domain.TripSpending{}, err
	}

	var spending domain.TripSpending
	for _, t := range trips {
		spending.Total += t.Budget
	}
	if len(trips) > 0 {
		spending.Average = spending.Total / float64(len(trips))
	}

	return spending, nil
}
