package recommend

import (
	"context"
	"errors"
	"fmt"

	"tripLogger/domain"
	"tripLogger/pkg/logger"
)

const (
	MessageNoHistory    = "Add trips to get personalized recommendations."
	MessageNoCandidates = "You have visited every destination in our catalog. No new recommendations remain."
	// unvisited destinations exist but none had a usable budget and rating
	MessageNoComparableCandidates = "No unvisited destination could be compared with your travel profile right now."
	messageFoundFormat            = "Found %d destinations similar to your travel profile."
)

// ---- Repository interfaces ----

type TripRepository interface {
	FindByUserID(ctx context.Context, userID uint) ([]domain.Trip, error)
}

type DestinationCatalog interface {
	ListAll(ctx context.Context) ([]domain.Destination, error)
}

// ---- Service ----

// Service is stateless between requests and never writes trips or
// destinations.
type Service struct {
	tripRepo   TripRepository
	catalog    DestinationCatalog
	vectorizer Vectorizer
	ranker     *Ranker
}

func NewService(tripRepo TripRepository, catalog DestinationCatalog, cfg Config) *Service {
	return &Service{
		tripRepo:   tripRepo,
		catalog:    catalog,
		vectorizer: NewVectorizer(cfg),
		ranker:     NewRanker(cfg),
	}
}

// RequestRecommendations ranks unvisited catalog destinations by similarity
// to the centroid of the user's trips. userID must already be authenticated.
func (s *Service) RequestRecommendations(
	ctx context.Context,
	userID uint,
) (domain.RecommendationResult, error) {

	if err := ctx.Err(); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("context error: %w", err)
	}

	tid := TraceIDFromContext(ctx)

	// 1) trip history
	trips, err := s.tripRepo.FindByUserID(ctx, userID)
	if err != nil {
		return s.repositoryFailure(tid, userID, "fetch trips", err)
	}

	// 2) centroid profile; empty history short-circuits
	profile, ok, err := BuildProfile(s.vectorizer, trips)
	if err != nil {
		RecommendResultsTotal.WithLabelValues(outcomeInvalidInput).Inc()
		logger.Warn("recommend_invalid_trip", "trace_id", tid, "user_id", userID, err)
		return domain.RecommendationResult{}, err
	}
	if !ok {
		RecommendResultsTotal.WithLabelValues(outcomeNoHistory).Inc()
		logger.Debug("recommend_no_history", "trace_id", tid, "user_id", userID)
		return domain.RecommendationResult{
			Recommendations: []domain.Recommendation{},
			Message:         MessageNoHistory,
		}, nil
	}

	// 3) catalog snapshot
	catalog, err := s.catalog.ListAll(ctx)
	if err != nil {
		return s.repositoryFailure(tid, userID, "list destinations", err)
	}

	// 4) rank
	visited := VisitedSet(trips)
	recs := s.ranker.Rank(profile, catalog, visited)

	logger.Debug("recommend_request",
		"trace_id", tid,
		"user_id", userID,
		"trip_count", profile.TripCount,
		"catalog_size", len(catalog),
		"result_count", len(recs),
	)

	if len(recs) == 0 {
		if countUnvisited(catalog, visited) > 0 {
			RecommendResultsTotal.WithLabelValues(outcomeNoComparable).Inc()
			logger.Warn("recommend_no_comparable_candidates", "trace_id", tid, "user_id", userID)
			return domain.RecommendationResult{
				Recommendations: recs,
				Message:         MessageNoComparableCandidates,
			}, nil
		}

		RecommendResultsTotal.WithLabelValues(outcomeNoCandidates).Inc()
		return domain.RecommendationResult{
			Recommendations: recs,
			Message:         MessageNoCandidates,
		}, nil
	}

	RecommendResultsTotal.WithLabelValues(outcomeOK).Inc()
	return domain.RecommendationResult{
		Recommendations: recs,
		Message:         fmt.Sprintf(messageFoundFormat, len(recs)),
	}, nil
}

func countUnvisited(catalog []domain.Destination, visited map[string]struct{}) int {
	n := 0
	for _, d := range catalog {
		if _, seen := visited[d.Name]; !seen {
			n++
		}
	}
	return n
}

func (s *Service) repositoryFailure(
	tid string,
	userID uint,
	op string,
	err error,
) (domain.RecommendationResult, error) {
	RecommendResultsTotal.WithLabelValues(outcomeRepositoryError).Inc()

	wrapped := asRepositoryError(op, err)
	if errors.Is(err, context.DeadlineExceeded) {
		logger.Error("recommend_repository_timeout", "trace_id", tid, "user_id", userID, "op", op, err)
	} else {
		logger.Error("recommend_repository_error", "trace_id", tid, "user_id", userID, "op", op, err)
	}

	return domain.RecommendationResult{}, wrapped
}
