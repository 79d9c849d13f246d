package recommend

// Config holds every tuning constant of the recommender. Nothing in the
// package embeds weights or K as literals.
type Config struct {
	// feature weights applied after scaling
	BudgetWeight float64
	RatingWeight float64

	// number of destinations returned per request
	TopK int

	// per-dimension gaps (in weighted feature units) under which a
	// candidate counts as "similar" when writing the reason text
	BudgetProximity float64
	RatingProximity float64
}

const (
	defaultBudgetWeight    = 2.0
	defaultRatingWeight    = 1.0
	defaultTopK            = 3
	defaultBudgetProximity = 0.5
	defaultRatingProximity = 0.05
)

func DefaultConfig() Config {
	return Config{
		BudgetWeight:    defaultBudgetWeight,
		RatingWeight:    defaultRatingWeight,
		TopK:            defaultTopK,
		BudgetProximity: defaultBudgetProximity,
		RatingProximity: defaultRatingProximity,
	}
}

// normalized fills zero or invalid values with defaults.
func (c Config) normalized() Config {
	if c.TopK <= 0 {
		c.TopK = defaultTopK
	}
	if c.BudgetWeight < 0 {
		c.BudgetWeight = defaultBudgetWeight
	}
	if c.RatingWeight < 0 {
		c.RatingWeight = defaultRatingWeight
	}
	if c.BudgetProximity <= 0 {
		c.BudgetProximity = defaultBudgetProximity
	}
	if c.RatingProximity <= 0 {
		c.RatingProximity = defaultRatingProximity
	}
	return c
}
