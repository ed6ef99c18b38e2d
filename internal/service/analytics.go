package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/petrosTsatsis/KilogBackend/internal/apperr"
	"github.com/petrosTsatsis/KilogBackend/internal/logger"
	model "github.com/petrosTsatsis/KilogBackend/internal/models"
)

const defaultProgressLimit = 10

// AnalyticsStore runs the read-only queries, already scoped to the owner.
type AnalyticsStore interface {
	MaxWeight(ctx context.Context, userID, exerciseID uuid.UUID) (*float64, error)
	SessionTopWeights(ctx context.Context, userID, exerciseID uuid.UUID, limit int) ([]model.ProgressPoint, error)
	CountWorkoutsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
}

// AnalyticsService computes performance stats over committed set data. It is
// stateless and never writes; empty history is a valid result, not an error.
type AnalyticsService struct {
	store AnalyticsStore
	now   func() time.Time
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

// PersonalBest returns the heaviest weight ever logged for the exercise, or
// nil when the user has no history with it.
func (s *AnalyticsService) PersonalBest(ctx context.Context, actorID, exerciseID uuid.UUID) (*float64, error) {
	best, err := s.store.MaxWeight(ctx, actorID, exerciseID)
	if err != nil {
		logger.Error("calculating personal best for user %s: %v", actorID, err)
		return nil, apperr.System(err)
	}

	return best, nil
}

// ProgressSeries returns chart points (date, session top weight), oldest
// first. The limit selects a trailing window of the most recent sessions.
func (s *AnalyticsService) ProgressSeries(ctx context.Context, actorID, exerciseID uuid.UUID, limit int) ([]model.ProgressPoint, error) {
	if limit <= 0 {
		limit = defaultProgressLimit
	}

	points, err := s.store.SessionTopWeights(ctx, actorID, exerciseID, limit)
	if err != nil {
		logger.Error("fetching progress for user %s: %v", actorID, err)
		return nil, apperr.System(err)
	}

	return points, nil
}

// WeeklyConsistency counts the actor's workouts dated within the last 7 days,
// both window bounds inclusive.
func (s *AnalyticsService) WeeklyConsistency(ctx context.Context, actorID uuid.UUID) (int, error) {
	today := truncateToDay(s.now())
	from := today.AddDate(0, 0, -7)

	count, err := s.store.CountWorkoutsBetween(ctx, actorID, from, today)
	if err != nil {
		logger.Error("fetching consistency for user %s: %v", actorID, err)
		return 0, apperr.System(err)
	}

	return count, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
