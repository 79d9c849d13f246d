package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK              = "ok"
	outcomeNoHistory       = "no_history"
	outcomeNoCandidates    = "no_candidates"
	outcomeNoComparable    = "no_comparable_candidates"
	outcomeInvalidInput    = "invalid_input"
	outcomeRepositoryError = "repository_error"
)

var (
	RecommendResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_results_total",
			Help: "Count of recommendation requests by outcome.",
		},
		[]string{"outcome"},
	)

	CatalogSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_catalog_skipped_total",
			Help: "Catalog destinations skipped because their budget or rating could not be vectorized.",
		},
	)
)

func init() {
	prometheus.MustRegister(RecommendResultsTotal, CatalogSkippedTotal)
}
