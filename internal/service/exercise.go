package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/petrosTsatsis/KilogBackend/internal/apperr"
	"github.com/petrosTsatsis/KilogBackend/internal/logger"
	model "github.com/petrosTsatsis/KilogBackend/internal/models"
	"github.com/petrosTsatsis/KilogBackend/internal/policy"
)

const (
	defaultCatalogLimit = 100
	maxCatalogLimit     = 500
)

// ExerciseStore is what the catalog needs from persistence.
type ExerciseStore interface {
	List(ctx context.Context, actorID uuid.UUID, search string, limit int) ([]model.Exercise, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Exercise, error)
	Create(ctx context.Context, in model.ExerciseInput, ownerID uuid.UUID) (*model.Exercise, error)
	UpdatePatch(ctx context.Context, id uuid.UUID, patch model.ExercisePatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExerciseService manages the shared exercise catalog: global entries
// everyone reads, private entries only their owner touches.
type ExerciseService struct {
	store ExerciseStore
}

func NewExerciseService(store ExerciseStore) *ExerciseService {
	return &ExerciseService{store: store}
}

func (s *ExerciseService) List(ctx context.Context, actorID uuid.UUID, search string, limit int) ([]model.Exercise, error) {
	if limit <= 0 || limit > maxCatalogLimit {
		limit = defaultCatalogLimit
	}

	exercises, err := s.store.List(ctx, actorID, search, limit)
	if err != nil {
		logger.Error("listing exercises for user %s: %v", actorID, err)
		return nil, apperr.System(err)
	}

	return exercises, nil
}

// GetByID masks denied reads as not-found: probing another user's private
// exercise is indistinguishable from referencing a nonexistent one.
func (s *ExerciseService) GetByID(ctx context.Context, id, actorID uuid.UUID) (*model.Exercise, error) {
	ex, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Error("fetching exercise %s: %v", id, err)
		return nil, apperr.System(err)
	}
	if ex == nil {
		return nil, apperr.NotFound("exercise", id.String())
	}

	if !policy.CanReadExercise(*ex, actorID) {
		return nil, apperr.NotFound("exercise", id.String())
	}

	return ex, nil
}

// Create inserts a private entry owned by the actor. Duplicate names are
// currently permitted.
func (s *ExerciseService) Create(ctx context.Context, in model.ExerciseInput, actorID uuid.UUID) (*model.Exercise, error) {
	logger.Info("creating exercise %q for user %s", in.Name, actorID)

	ex, err := s.store.Create(ctx, in, actorID)
	if err != nil {
		logger.Error("creating exercise: %v", err)
		return nil, apperr.System(err)
	}

	return ex, nil
}

// Update applies a partial patch. Write denials are not masked: the actor
// already holds the id they tried to mutate, so there is nothing to hide.
func (s *ExerciseService) Update(ctx context.Context, id uuid.UUID, patch model.ExercisePatch, actorID uuid.UUID) (*model.Exercise, error) {
	ex, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Error("fetching exercise %s: %v", id, err)
		return nil, apperr.System(err)
	}
	if ex == nil {
		return nil, apperr.NotFound("exercise", id.String())
	}

	if ok, reason := policy.CanWriteExercise(*ex, actorID); !ok {
		return nil, apperr.PermissionDenied("exercise", reason)
	}

	if err := s.store.UpdatePatch(ctx, id, patch); err != nil {
		logger.Error("updating exercise %s: %v", id, err)
		return nil, apperr.System(err)
	}

	updated, err := s.store.GetByID(ctx, id)
	if err != nil || updated == nil {
		logger.Error("reloading exercise %s after update: %v", id, err)
		return nil, apperr.System(err)
	}

	return updated, nil
}

func (s *ExerciseService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	ex, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Error("fetching exercise %s: %v", id, err)
		return apperr.System(err)
	}
	if ex == nil {
		return apperr.NotFound("exercise", id.String())
	}

	if ok, reason := policy.CanWriteExercise(*ex, actorID); !ok {
		return apperr.PermissionDenied("exercise", reason)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		logger.Error("deleting exercise %s: %v", id, err)
		return apperr.System(err)
	}

	return nil
}
