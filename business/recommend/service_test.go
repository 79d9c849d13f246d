//go:build !integration

package recommend

import (
	"context"
	"errors"
	"testing"

	"tripLogger/domain"

	"github.com/stretchr/testify/require"
)

type fakeTripRepo struct {
	trips []domain.Trip
	err   error
	calls int
}

func (f *fakeTripRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.Trip, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.trips, nil
}

type fakeCatalog struct {
	destinations []domain.Destination
	err          error
	calls        int
}

func (f *fakeCatalog) ListAll(ctx context.Context) ([]domain.Destination, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.destinations, nil
}

func TestRequestRecommendationsNoHistory(t *testing.T) {
	trips := &fakeTripRepo{}
	catalog := &fakeCatalog{destinations: sampleCatalog()}
	svc := NewService(trips, catalog, DefaultConfig())

	res, err := svc.RequestRecommendations(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, res.Recommendations)
	require.Empty(t, res.Recommendations)
	require.Equal(t, MessageNoHistory, res.Message)
	require.Zero(t, catalog.calls, "catalog must not be read without history")
}

func TestRequestRecommendationsRanksUnvisited(t *testing.T) {
	trips := &fakeTripRepo{trips: []domain.Trip{
		{ID: 1, UserID: 1, Destination: "Paris", Budget: 2000, Rating: 5.0},
	}}
	catalog := &fakeCatalog{destinations: sampleCatalog()}
	svc := NewService(trips, catalog, DefaultConfig())

	res, err := svc.RequestRecommendations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 2)
	require.Equal(t, "London", res.Recommendations[0].Destination)
	require.Equal(t, "Tokyo", res.Recommendations[1].Destination)
	require.Equal(t, "Found 2 destinations similar to your travel profile.", res.Message)
}

func TestRequestRecommendationsAllVisited(t *testing.T) {
	trips := &fakeTripRepo{trips: []domain.Trip{
		{ID: 1, Destination: "Paris", Budget: 2000, Rating: 5.0},
		{ID: 2, Destination: "London", Budget: 1800, Rating: 4.8},
		{ID: 3, Destination: "Tokyo", Budget: 6000, Rating: 4.0},
	}}
	svc := NewService(trips, &fakeCatalog{destinations: sampleCatalog()}, DefaultConfig())

	res, err := svc.RequestRecommendations(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, res.Recommendations)
	require.NotNil(t, res.Recommendations)
	require.Equal(t, MessageNoCandidates, res.Message)
	require.NotEqual(t, MessageNoHistory, res.Message)
}

func TestRequestRecommendationsOnlyInvalidCandidatesLeft(t *testing.T) {
	trips := &fakeTripRepo{trips: []domain.Trip{
		{ID: 1, Destination: "Paris", Budget: 2000, Rating: 5.0},
	}}
	catalog := &fakeCatalog{destinations: []domain.Destination{
		{ID: 1, Name: "Paris", AvgBudget: 2000, AvgRating: 5.0},
		{ID: 2, Name: "Nowhere", AvgBudget: 0, AvgRating: 4.0},
	}}
	svc := NewService(trips, catalog, DefaultConfig())

	res, err := svc.RequestRecommendations(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, res.Recommendations)
	require.Empty(t, res.Recommendations)
	require.Equal(t, MessageNoComparableCandidates, res.Message)
	require.NotEqual(t, MessageNoCandidates, res.Message)
}

func TestRequestRecommendationsRespectsTopK(t *testing.T) {
	trips := &fakeTripRepo{trips: []domain.Trip{
		{ID: 1, Destination: "Somewhere", Budget: 2000, Rating: 4.5},
	}}
	cfg := DefaultConfig()
	cfg.TopK = 2
	svc := NewService(trips, &fakeCatalog{destinations: sampleCatalog()}, cfg)

	res, err := svc.RequestRecommendations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 2)
}

func TestRequestRecommendationsTripRepositoryError(t *testing.T) {
	trips := &fakeTripRepo{err: errors.New("connection refused")}
	catalog := &fakeCatalog{destinations: sampleCatalog()}
	svc := NewService(trips, catalog, DefaultConfig())

	_, err := svc.RequestRecommendations(context.Background(), 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrRepository))

	var repoErr *RepositoryError
	require.True(t, errors.As(err, &repoErr))
	require.Equal(t, "fetch trips", repoErr.Op)
	require.Equal(t, 1, trips.calls, "no internal retries")
	require.Zero(t, catalog.calls)
}

func TestRequestRecommendationsTimeoutIsRepositoryError(t *testing.T) {
	trips := &fakeTripRepo{err: context.DeadlineExceeded}
	svc := NewService(trips, &fakeCatalog{}, DefaultConfig())

	_, err := svc.RequestRecommendations(context.Background(), 1)
	require.True(t, errors.Is(err, ErrRepository))
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRequestRecommendationsCatalogError(t *testing.T) {
	trips := &fakeTripRepo{trips: []domain.Trip{{ID: 1, Destination: "Paris", Budget: 2000, Rating: 5}}}
	catalog := &fakeCatalog{err: errors.New("boom")}
	svc := NewService(trips, catalog, DefaultConfig())

	_, err := svc.RequestRecommendations(context.Background(), 1)
	var repoErr *RepositoryError
	require.True(t, errors.As(err, &repoErr))
	require.Equal(t, "list destinations", repoErr.Op)
}

func TestRequestRecommendationsInvalidTrip(t *testing.T) {
	trips := &fakeTripRepo{trips: []domain.Trip{{ID: 1, Destination: "Paris", Budget: -5, Rating: 5}}}
	svc := NewService(trips, &fakeCatalog{destinations: sampleCatalog()}, DefaultConfig())

	_, err := svc.RequestRecommendations(context.Background(), 1)
	require.True(t, errors.Is(err, ErrInvalidInput))
}

func TestRequestRecommendationsCancelledContext(t *testing.T) {
	trips := &fakeTripRepo{}
	svc := NewService(trips, &fakeCatalog{}, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.RequestRecommendations(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, trips.calls)
}

func TestRequestRecommendationsDoesNotMutateInputs(t *testing.T) {
	history := []domain.Trip{{ID: 1, Destination: "Paris", Budget: 2000, Rating: 5.0}}
	catalogRows := sampleCatalog()
	svc := NewService(&fakeTripRepo{trips: history}, &fakeCatalog{destinations: catalogRows}, DefaultConfig())

	_, err := svc.RequestRecommendations(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, sampleCatalog(), catalogRows)
	require.Equal(t, "Paris", history[0].Destination)
}
