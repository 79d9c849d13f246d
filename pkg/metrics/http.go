package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the /recommend HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the recommend handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of /recommend requests by response status
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommend requests",
	}, []string{"status"})

	TripsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "trips_created_total",
		Help: "Total number of trips logged",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		TripsCreated,
	)
}
