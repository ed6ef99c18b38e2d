package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrosTsatsis/KilogBackend/internal/apperr"
	model "github.com/petrosTsatsis/KilogBackend/internal/models"
)

// fakeWorkoutStore is an in-memory WorkoutStore. Like the real one, a failed
// legality check aborts the whole write and leaves prior state untouched.
type fakeWorkoutStore struct {
	workouts map[uuid.UUID]model.Workout
}

func newFakeWorkoutStore() *fakeWorkoutStore {
	return &fakeWorkoutStore{workouts: make(map[uuid.UUID]model.Workout)}
}

func materialize(id, ownerID uuid.UUID, in model.WorkoutInput) model.Workout {
	w := model.Workout{ID: id, OwnerID: ownerID, Date: in.Date, Notes: in.Notes}
	for _, exIn := range in.Exercises {
		we := model.WorkoutExercise{ID: uuid.New(), WorkoutID: w.ID, ExerciseID: exIn.ExerciseID}
		for _, setIn := range exIn.Sets {
			we.Sets = append(we.Sets, model.Set{
				ID:                uuid.New(),
				WorkoutExerciseID: we.ID,
				Order:             setIn.Order,
				Weight:            setIn.Weight,
				Reps:              setIn.Reps,
				RPE:               setIn.RPE,
			})
		}
		w.Exercises = append(w.Exercises, we)
	}
	return w
}

func (f *fakeWorkoutStore) CreateAggregate(ctx context.Context, ownerID uuid.UUID, in model.WorkoutInput, check func(ctx context.Context, exerciseID uuid.UUID) error) (*model.Workout, error) {
	for _, exIn := range in.Exercises {
		if err := check(ctx, exIn.ExerciseID); err != nil {
			return nil, err
		}
	}
	w := materialize(uuid.New(), ownerID, in)
	f.workouts[w.ID] = w
	return &w, nil
}

func (f *fakeWorkoutStore) GetAggregate(_ context.Context, id uuid.UUID) (*model.Workout, error) {
	w, ok := f.workouts[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (f *fakeWorkoutStore) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]model.Workout, error) {
	var out []model.Workout
	for _, w := range f.workouts {
		if w.OwnerID == ownerID {
			out = append(out, w)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeWorkoutStore) ReplaceAggregate(ctx context.Context, id uuid.UUID, in model.WorkoutInput, check func(ctx context.Context, exerciseID uuid.UUID) error) (*model.Workout, error) {
	old, ok := f.workouts[id]
	if !ok {
		return nil, nil
	}
	for _, exIn := range in.Exercises {
		if err := check(ctx, exIn.ExerciseID); err != nil {
			return nil, err
		}
	}
	w := materialize(id, old.OwnerID, in)
	f.workouts[id] = w
	return &w, nil
}

func (f *fakeWorkoutStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.workouts, id)
	return nil
}

func newWorkoutFixture() (*WorkoutService, *fakeWorkoutStore, *fakeExerciseStore) {
	exercises := newFakeExerciseStore()
	workouts := newFakeWorkoutStore()
	svc := NewWorkoutService(workouts, NewExerciseService(exercises))
	return svc, workouts, exercises
}

func workoutInput(exerciseIDs ...uuid.UUID) model.WorkoutInput {
	in := model.WorkoutInput{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	for _, id := range exerciseIDs {
		in.Exercises = append(in.Exercises, model.WorkoutExerciseInput{
			ExerciseID: id,
			Sets: []model.SetInput{
				{Order: 1, Weight: 100, Reps: 5},
				{Order: 2, Weight: 102.5, Reps: 3},
			},
		})
	}
	return in
}

func TestWorkoutCreate(t *testing.T) {
	svc, _, exercises := newWorkoutFixture()
	actor := uuid.New()
	bench := exercises.add("Bench Press", nil)

	w, err := svc.Create(context.Background(), workoutInput(bench.ID), actor)
	require.NoError(t, err)
	assert.Equal(t, actor, w.OwnerID)
	require.Len(t, w.Exercises, 1)
	assert.Len(t, w.Exercises[0].Sets, 2)
}

func TestWorkoutCreateEmptyIsAllowed(t *testing.T) {
	svc, _, _ := newWorkoutFixture()

	w, err := svc.Create(context.Background(), workoutInput(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, w.Exercises)
}

func TestWorkoutCreateRejectsInaccessibleExercise(t *testing.T) {
	svc, workouts, exercises := newWorkoutFixture()
	actor := uuid.New()
	other := uuid.New()
	bench := exercises.add("Bench Press", nil)
	private := exercises.add("Cable Fly Variation", &other)

	// a reference to someone else's private exercise fails like a missing id,
	// and nothing from the rest of the payload survives
	_, err := svc.Create(context.Background(), workoutInput(bench.ID, private.ID), actor)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Empty(t, workouts.workouts)

	_, err = svc.Create(context.Background(), workoutInput(uuid.New()), actor)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Empty(t, workouts.workouts)
}

func TestWorkoutCreateRejectsNegativeMetrics(t *testing.T) {
	svc, workouts, exercises := newWorkoutFixture()
	bench := exercises.add("Bench Press", nil)

	in := workoutInput(bench.ID)
	in.Exercises[0].Sets[0].Weight = -10

	_, err := svc.Create(context.Background(), in, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
	assert.Empty(t, workouts.workouts)

	in = workoutInput(bench.ID)
	in.Exercises[0].Sets[1].Reps = -1

	_, err = svc.Create(context.Background(), in, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestWorkoutGetByIDOwnership(t *testing.T) {
	svc, _, exercises := newWorkoutFixture()
	actor := uuid.New()
	bench := exercises.add("Bench Press", nil)

	w, err := svc.Create(context.Background(), workoutInput(bench.ID), actor)
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), w.ID, actor)
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)

	// denied openly, not masked
	_, err = svc.GetByID(context.Background(), w.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindPermissionDenied, apperr.KindOf(err))

	_, err = svc.GetByID(context.Background(), uuid.New(), actor)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestWorkoutReplace(t *testing.T) {
	svc, _, exercises := newWorkoutFixture()
	actor := uuid.New()
	bench := exercises.add("Bench Press", nil)
	squat := exercises.add("Back Squat", nil)

	w, err := svc.Create(context.Background(), workoutInput(bench.ID), actor)
	require.NoError(t, err)

	replaced, err := svc.Replace(context.Background(), w.ID, workoutInput(squat.ID), actor)
	require.NoError(t, err)
	assert.Equal(t, w.ID, replaced.ID)
	require.Len(t, replaced.Exercises, 1)
	assert.Equal(t, squat.ID, replaced.Exercises[0].ExerciseID)
}

func TestWorkoutReplaceKeepsOldSubtreeOnFailure(t *testing.T) {
	svc, _, exercises := newWorkoutFixture()
	actor := uuid.New()
	other := uuid.New()
	bench := exercises.add("Bench Press", nil)
	private := exercises.add("Cable Fly Variation", &other)

	w, err := svc.Create(context.Background(), workoutInput(bench.ID), actor)
	require.NoError(t, err)

	_, err = svc.Replace(context.Background(), w.ID, workoutInput(private.ID), actor)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	kept, err := svc.GetByID(context.Background(), w.ID, actor)
	require.NoError(t, err)
	require.Len(t, kept.Exercises, 1)
	assert.Equal(t, bench.ID, kept.Exercises[0].ExerciseID)
}

func TestWorkoutReplaceDeniedForNonOwner(t *testing.T) {
	svc, _, exercises := newWorkoutFixture()
	actor := uuid.New()
	bench := exercises.add("Bench Press", nil)

	w, err := svc.Create(context.Background(), workoutInput(bench.ID), actor)
	require.NoError(t, err)

	_, err = svc.Replace(context.Background(), w.ID, workoutInput(bench.ID), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindPermissionDenied, apperr.KindOf(err))
}

func TestWorkoutDelete(t *testing.T) {
	svc, _, exercises := newWorkoutFixture()
	actor := uuid.New()
	bench := exercises.add("Bench Press", nil)

	w, err := svc.Create(context.Background(), workoutInput(bench.ID), actor)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), w.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindPermissionDenied, apperr.KindOf(err))

	require.NoError(t, svc.Delete(context.Background(), w.ID, actor))

	err = svc.Delete(context.Background(), w.ID, actor)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestWorkoutListForUser(t *testing.T) {
	svc, _, exercises := newWorkoutFixture()
	actor := uuid.New()
	bench := exercises.add("Bench Press", nil)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), workoutInput(bench.ID), actor)
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), workoutInput(bench.ID), uuid.New())
	require.NoError(t, err)

	mine, err := svc.ListForUser(context.Background(), actor, 0, 0)
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	page, err := svc.ListForUser(context.Background(), actor, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}
