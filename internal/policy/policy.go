// Package policy answers "can actor A touch resource R". Pure decisions,
// no store access; callers decide how a denial is reported.
package policy

import (
	"github.com/google/uuid"

	model "github.com/petrosTsatsis/KilogBackend/internal/models"
)

// Reasons attached to write denials so the caller can tell a global entry
// apart from another user's private one.
const (
	ReasonExerciseGlobal   = "exercise is global"
	ReasonExerciseNotOwned = "exercise belongs to another user"
	ReasonWorkoutNotOwned  = "workout belongs to another user"
)

// CanReadExercise allows the shared catalog plus the actor's own entries.
// Callers must mask a denial as not-found: a read probe must not reveal that
// another user's private exercise exists.
func CanReadExercise(ex model.Exercise, actorID uuid.UUID) bool {
	return ex.OwnerID == nil || *ex.OwnerID == actorID
}

// CanWriteExercise allows mutation only for the private owner. Global entries
// are writable by nobody through this path, admins included. The reason is
// only meaningful when the decision is false.
func CanWriteExercise(ex model.Exercise, actorID uuid.UUID) (bool, string) {
	if ex.OwnerID == nil {
		return false, ReasonExerciseGlobal
	}
	if *ex.OwnerID != actorID {
		return false, ReasonExerciseNotOwned
	}
	return true, ""
}

// CanAccessWorkout allows only the owner. Workouts are never shared, so read
// and write share one rule, and denials are reported openly (no masking: the
// actor already holds the id and workouts are not enumerable).
func CanAccessWorkout(w model.Workout, actorID uuid.UUID) bool {
	return w.OwnerID == actorID
}
