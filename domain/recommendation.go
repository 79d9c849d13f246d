package domain

type Recommendation struct {
	Destination string  `json:"destination"`
	Budget      float64 `json:"budget"`
	Rating      float64 `json:"rating"`
	Distance    float64 `json:"distance"`
	Confidence  float64 `json:"confidence"`
	Reason      string  `json:"reason"`
}

type RecommendationResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	Message         string           `json:"message"`
}
