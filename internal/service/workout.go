package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/petrosTsatsis/KilogBackend/internal/apperr"
	"github.com/petrosTsatsis/KilogBackend/internal/logger"
	model "github.com/petrosTsatsis/KilogBackend/internal/models"
	"github.com/petrosTsatsis/KilogBackend/internal/policy"
)

const defaultWorkoutPageSize = 20

// WorkoutStore is the unit-of-work boundary for the aggregate. Mutating
// methods run as one transaction; the check callback is invoked inside it for
// every referenced exercise, and whatever it returns aborts the write and
// propagates as-is.
type WorkoutStore interface {
	CreateAggregate(ctx context.Context, ownerID uuid.UUID, in model.WorkoutInput, check func(ctx context.Context, exerciseID uuid.UUID) error) (*model.Workout, error)
	GetAggregate(ctx context.Context, id uuid.UUID) (*model.Workout, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]model.Workout, error)
	ReplaceAggregate(ctx context.Context, id uuid.UUID, in model.WorkoutInput, check func(ctx context.Context, exerciseID uuid.UUID) error) (*model.Workout, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WorkoutService owns the transactional lifecycle of the workout aggregate.
// Exercise legality is delegated to the catalog, so using another user's
// private exercise fails exactly like referencing a nonexistent one.
type WorkoutService struct {
	store   WorkoutStore
	catalog *ExerciseService
}

func NewWorkoutService(store WorkoutStore, catalog *ExerciseService) *WorkoutService {
	return &WorkoutService{store: store, catalog: catalog}
}

// legality adapts the catalog's masked read for the aggregate write path.
func (s *WorkoutService) legality(actorID uuid.UUID) func(ctx context.Context, exerciseID uuid.UUID) error {
	return func(ctx context.Context, exerciseID uuid.UUID) error {
		_, err := s.catalog.GetByID(ctx, exerciseID, actorID)
		return err
	}
}

func (s *WorkoutService) Create(ctx context.Context, in model.WorkoutInput, actorID uuid.UUID) (*model.Workout, error) {
	logger.Info("creating workout for user %s on %s", actorID, in.Date.Format("2006-01-02"))

	if err := validateMetrics(in); err != nil {
		return nil, err
	}

	w, err := s.store.CreateAggregate(ctx, actorID, in, s.legality(actorID))
	if err != nil {
		logger.Error("creating workout for user %s: %v", actorID, err)
		return nil, wrapStore(err)
	}

	return w, nil
}

// GetByID surfaces PermissionDenied openly: workouts are never enumerable, so
// unlike the catalog there is no privacy gained by masking.
func (s *WorkoutService) GetByID(ctx context.Context, id, actorID uuid.UUID) (*model.Workout, error) {
	w, err := s.store.GetAggregate(ctx, id)
	if err != nil {
		logger.Error("fetching workout %s: %v", id, err)
		return nil, apperr.System(err)
	}
	if w == nil {
		return nil, apperr.NotFound("workout", id.String())
	}

	if !policy.CanAccessWorkout(*w, actorID) {
		return nil, apperr.PermissionDenied("workout", policy.ReasonWorkoutNotOwned)
	}

	return w, nil
}

// ListForUser returns the actor's own workout summaries, most recent first.
func (s *WorkoutService) ListForUser(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]model.Workout, error) {
	if limit <= 0 {
		limit = defaultWorkoutPageSize
	}
	if offset < 0 {
		offset = 0
	}

	workouts, err := s.store.ListByOwner(ctx, actorID, limit, offset)
	if err != nil {
		logger.Error("listing workouts for user %s: %v", actorID, err)
		return nil, apperr.System(err)
	}

	return workouts, nil
}

// Replace swaps the whole exercise/set subtree for the one in newData. Either
// the replacement commits in full or the old subtree stays untouched.
func (s *WorkoutService) Replace(ctx context.Context, id uuid.UUID, in model.WorkoutInput, actorID uuid.UUID) (*model.Workout, error) {
	logger.Info("replacing workout %s for user %s", id, actorID)

	if _, err := s.GetByID(ctx, id, actorID); err != nil {
		return nil, err
	}

	if err := validateMetrics(in); err != nil {
		return nil, err
	}

	w, err := s.store.ReplaceAggregate(ctx, id, in, s.legality(actorID))
	if err != nil {
		logger.Error("replacing workout %s: %v", id, err)
		return nil, wrapStore(err)
	}

	return w, nil
}

func (s *WorkoutService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	logger.Debug("deleting workout %s for user %s", id, actorID)

	if _, err := s.GetByID(ctx, id, actorID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		logger.Error("deleting workout %s: %v", id, err)
		return apperr.System(err)
	}

	return nil
}

// validateMetrics rejects impossible performance values before the unit of
// work opens. Field-shape validation happens upstream; this is the domain
// floor.
func validateMetrics(in model.WorkoutInput) error {
	for _, ex := range in.Exercises {
		for _, set := range ex.Sets {
			if set.Weight < 0 {
				return apperr.BusinessRule(fmt.Sprintf("invalid metric: negative weight %.2f", set.Weight))
			}
			if set.Reps < 0 {
				return apperr.BusinessRule(fmt.Sprintf("invalid metric: negative reps %d", set.Reps))
			}
		}
	}
	return nil
}
