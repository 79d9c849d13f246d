package recommend

import "math"

const maxRating = 5.0

// FeatureVector is the weighted (budget, rating) point compared by distance.
type FeatureVector struct {
	Budget float64
	Rating float64
}

// Vectorizer maps (budget, rating) to
// (ln(budget) * budgetWeight, (rating / 5) * ratingWeight).
type Vectorizer struct {
	budgetWeight float64
	ratingWeight float64
}

func NewVectorizer(cfg Config) Vectorizer {
	cfg = cfg.normalized()
	return Vectorizer{
		budgetWeight: cfg.BudgetWeight,
		ratingWeight: cfg.RatingWeight,
	}
}

// Vectorize never coerces: a non-positive budget or a rating outside [0, 5]
// yields an *InvalidInputError.
func (v Vectorizer) Vectorize(budget, rating float64) (FeatureVector, error) {
	if err := validateBudgetRating(budget, rating); err != nil {
		return FeatureVector{}, err
	}

	return FeatureVector{
		Budget: math.Log(budget) * v.budgetWeight,
		Rating: (rating / maxRating) * v.ratingWeight,
	}, nil
}

func validateBudgetRating(budget, rating float64) error {
	switch {
	case math.IsNaN(budget) || math.IsInf(budget, 0):
		return &InvalidInputError{Field: "budget", Value: budget, Reason: "must be a finite number"}
	case budget <= 0:
		return &InvalidInputError{Field: "budget", Value: budget, Reason: "must be greater than 0"}
	case math.IsNaN(rating) || rating < 0 || rating > maxRating:
		return &InvalidInputError{Field: "rating", Value: rating, Reason: "must be between 0 and 5"}
	}
	return nil
}
