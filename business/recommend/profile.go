package recommend

import (
	"fmt"

	"tripLogger/domain"
)

// Profile is the centroid of a user's trips: the mean budget and mean rating
// vectorized as one point. Ranking always measures against this centroid.
type Profile struct {
	Vector    FeatureVector
	AvgBudget float64
	AvgRating float64
	TripCount int
}

// BuildProfile returns ok=false when trips is empty. That is the "no history
// yet" state, not an error.
func BuildProfile(v Vectorizer, trips []domain.Trip) (Profile, bool, error) {
	if len(trips) == 0 {
		return Profile{}, false, nil
	}

	// running means stay finite where a plain sum of large budgets would not
	var avgBudget, avgRating float64
	for i, t := range trips {
		if err := validateBudgetRating(t.Budget, t.Rating); err != nil {
			return Profile{}, false, fmt.Errorf("trip %d to %q: %w", t.ID, t.Destination, err)
		}
		n := float64(i + 1)
		avgBudget += (t.Budget - avgBudget) / n
		avgRating += (t.Rating - avgRating) / n
	}

	vec, err := v.Vectorize(avgBudget, avgRating)
	if err != nil {
		return Profile{}, false, err
	}

	return Profile{
		Vector:    vec,
		AvgBudget: avgBudget,
		AvgRating: avgRating,
		TripCount: len(trips),
	}, true, nil
}
