//go:build !integration

package recommend

import (
	"errors"
	"math"
	"testing"

	"tripLogger/domain"

	"github.com/stretchr/testify/require"
)

func TestBuildProfileEmptyHistory(t *testing.T) {
	p, ok, err := BuildProfile(NewVectorizer(DefaultConfig()), nil)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, Profile{}, p)
}

func TestBuildProfileCentroid(t *testing.T) {
	trips := []domain.Trip{
		{ID: 1, Destination: "Paris", Budget: 2000, Rating: 5.0},
		{ID: 2, Destination: "Lisbon", Budget: 1000, Rating: 4.0},
	}

	p, ok, err := BuildProfile(NewVectorizer(DefaultConfig()), trips)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, p.TripCount)
	require.InDelta(t, 1500, p.AvgBudget, 1e-9)
	require.InDelta(t, 4.5, p.AvgRating, 1e-9)
	require.InDelta(t, math.Log(1500)*2, p.Vector.Budget, 1e-12)
	require.InDelta(t, 0.9, p.Vector.Rating, 1e-12)
}

func TestBuildProfileRejectsInvalidTrip(t *testing.T) {
	trips := []domain.Trip{
		{ID: 1, Destination: "Paris", Budget: 2000, Rating: 5.0},
		{ID: 2, Destination: "Nowhere", Budget: 0, Rating: 3.0},
	}

	_, ok, err := BuildProfile(NewVectorizer(DefaultConfig()), trips)
	require.False(t, ok)
	require.True(t, errors.Is(err, ErrInvalidInput))
	require.Contains(t, err.Error(), "Nowhere")
}

func TestBuildProfileLargeBudgetsStayFinite(t *testing.T) {
	trips := []domain.Trip{
		{ID: 1, Destination: "Monaco", Budget: 1e308, Rating: 5.0},
		{ID: 2, Destination: "Dubai", Budget: 1e308, Rating: 4.0},
	}

	p, ok, err := BuildProfile(NewVectorizer(DefaultConfig()), trips)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, math.IsInf(p.AvgBudget, 0))
	require.InDelta(t, 1e308, p.AvgBudget, 1e294)
	require.InDelta(t, 4.5, p.AvgRating, 1e-9)
	require.InDelta(t, math.Log(1e308)*2, p.Vector.Budget, 1e-9)
}
