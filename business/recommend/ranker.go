package recommend

import (
	"fmt"
	"sort"

	"tripLogger/domain"
	"tripLogger/pkg/logger"
)

// Ranker selects the K catalog destinations nearest a profile.
type Ranker struct {
	vectorizer      Vectorizer
	topK            int
	budgetProximity float64
	ratingProximity float64
}

func NewRanker(cfg Config) *Ranker {
	cfg = cfg.normalized()
	return &Ranker{
		vectorizer:      NewVectorizer(cfg),
		topK:            cfg.TopK,
		budgetProximity: cfg.BudgetProximity,
		ratingProximity: cfg.RatingProximity,
	}
}

// VisitedSet collects the destination names of trips. Names are compared
// exactly; normalization happens when trips are stored.
func VisitedSet(trips []domain.Trip) map[string]struct{} {
	visited := make(map[string]struct{}, len(trips))
	for _, t := range trips {
		visited[t.Destination] = struct{}{}
	}
	return visited
}

type candidate struct {
	dest     domain.Destination
	vec      FeatureVector
	distance float64
}

// Rank excludes visited destinations, sorts the rest by ascending distance to
// the profile (equal distances keep catalog order) and returns at most K.
func (r *Ranker) Rank(
	profile Profile,
	catalog []domain.Destination,
	visited map[string]struct{},
) []domain.Recommendation {

	candidates := make([]candidate, 0, len(catalog))
	for _, d := range catalog {
		if _, seen := visited[d.Name]; seen {
			continue
		}

		vec, err := r.vectorizer.Vectorize(d.AvgBudget, d.AvgRating)
		if err != nil {
			logger.Warn("skipping catalog destination", "destination", d.Name, err)
			CatalogSkippedTotal.Inc()
			continue
		}

		candidates = append(candidates, candidate{
			dest:     d,
			vec:      vec,
			distance: Distance(profile.Vector, vec),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	limit := r.topK
	if len(candidates) < limit {
		limit = len(candidates)
	}

	out := make([]domain.Recommendation, 0, limit)
	for _, c := range candidates[:limit] {
		out = append(out, domain.Recommendation{
			Destination: c.dest.Name,
			Budget:      c.dest.AvgBudget,
			Rating:      c.dest.AvgRating,
			Distance:    c.distance,
			Confidence:  confidence(c.distance),
			Reason:      r.reason(profile, c),
		})
	}

	return out
}

// reason names the dimension(s) the candidate is close on. When neither gap
// is within its proximity threshold, the dimension with the smaller relative
// gap is reported as the dominant one.
func (r *Ranker) reason(profile Profile, c candidate) string {
	budgetGap := abs(c.vec.Budget - profile.Vector.Budget)
	ratingGap := abs(c.vec.Rating - profile.Vector.Rating)

	budgetClose := budgetGap <= r.budgetProximity
	ratingClose := ratingGap <= r.ratingProximity

	switch {
	case budgetClose && ratingClose:
		return fmt.Sprintf(
			"Similar budget ($%.0f) and rating (%.1f) to your travel profile (avg $%.0f, %.1f stars).",
			c.dest.AvgBudget, c.dest.AvgRating, profile.AvgBudget, profile.AvgRating,
		)
	case budgetClose:
		return fmt.Sprintf(
			"Similar budget ($%.0f) to your travel profile (avg $%.0f).",
			c.dest.AvgBudget, profile.AvgBudget,
		)
	case ratingClose:
		return fmt.Sprintf(
			"Similar rating (%.1f) to your travel profile (avg %.1f stars).",
			c.dest.AvgRating, profile.AvgRating,
		)
	case budgetGap/r.budgetProximity <= ratingGap/r.ratingProximity:
		return fmt.Sprintf(
			"Closest remaining match, mostly on budget ($%.0f vs your avg $%.0f).",
			c.dest.AvgBudget, profile.AvgBudget,
		)
	default:
		return fmt.Sprintf(
			"Closest remaining match, mostly on rating (%.1f vs your avg %.1f stars).",
			c.dest.AvgRating, profile.AvgRating,
		)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
