//go:build !integration

package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceProperties(t *testing.T) {
	points := []FeatureVector{
		{Budget: 0, Rating: 0},
		{Budget: 15.2, Rating: 1.0},
		{Budget: 14.99, Rating: 0.96},
		{Budget: 17.4, Rating: 0.8},
		{Budget: -3, Rating: 0.2},
	}

	for _, a := range points {
		require.Zero(t, Distance(a, a))
		for _, b := range points {
			require.Equal(t, Distance(a, b), Distance(b, a))
			require.GreaterOrEqual(t, Distance(a, b), 0.0)
			for _, c := range points {
				require.LessOrEqual(t, Distance(a, c), Distance(a, b)+Distance(b, c)+1e-12)
			}
		}
	}
}

func TestDistanceValue(t *testing.T) {
	d := Distance(FeatureVector{Budget: 0, Rating: 0}, FeatureVector{Budget: 3, Rating: 4})
	require.InDelta(t, 5.0, d, 1e-12)
}

func TestConfidence(t *testing.T) {
	require.Equal(t, 1.0, confidence(0))
	require.InDelta(t, 0.5, confidence(1), 1e-12)
	require.Greater(t, confidence(0.2), confidence(0.3))
	require.Zero(t, confidence(math.NaN()))
	require.Zero(t, confidence(-1))
}
