package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	model "github.com/petrosTsatsis/KilogBackend/internal/models"
)

func TestCanReadExercise(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	global := model.Exercise{ID: uuid.New(), Name: "Bench Press"}
	private := model.Exercise{ID: uuid.New(), Name: "Cable Fly Variation", OwnerID: &owner}

	assert.True(t, CanReadExercise(global, owner))
	assert.True(t, CanReadExercise(global, stranger))
	assert.True(t, CanReadExercise(private, owner))
	assert.False(t, CanReadExercise(private, stranger))
}

func TestCanWriteExercise(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	global := model.Exercise{ID: uuid.New(), Name: "Deadlift"}
	private := model.Exercise{ID: uuid.New(), Name: "Paused Squat", OwnerID: &owner}

	ok, reason := CanWriteExercise(private, owner)
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, reason = CanWriteExercise(global, owner)
	assert.False(t, ok)
	assert.Equal(t, ReasonExerciseGlobal, reason)

	ok, reason = CanWriteExercise(private, stranger)
	assert.False(t, ok)
	assert.Equal(t, ReasonExerciseNotOwned, reason)
}

func TestCanAccessWorkout(t *testing.T) {
	owner := uuid.New()

	w := model.Workout{ID: uuid.New(), OwnerID: owner}

	assert.True(t, CanAccessWorkout(w, owner))
	assert.False(t, CanAccessWorkout(w, uuid.New()))
}
