package recommend

import "math"

// Distance is the Euclidean distance between two feature vectors.
func Distance(a, b FeatureVector) float64 {
	return math.Hypot(a.Budget-b.Budget, a.Rating-b.Rating)
}

// confidence maps a distance onto (0, 1], decreasing as distance grows.
func confidence(distance float64) float64 {
	if distance < 0 || math.IsNaN(distance) {
		return 0
	}
	return 1 / (1 + distance)
}
