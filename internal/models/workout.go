package model

import (
	"time"

	"github.com/google/uuid"
)

// Workout is the aggregate root for one gym session. Its exercises and their
// sets only ever exist as part of a workout write.
type Workout struct {
	ID        uuid.UUID         `json:"id"`
	OwnerID   uuid.UUID         `json:"ownerId"`
	Date      time.Time         `json:"date"`
	Notes     *string           `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Exercises []WorkoutExercise `json:"exercises,omitempty"`
}

// WorkoutExercise links a session to a catalog entry:
// "I did Bench Press in this session".
type WorkoutExercise struct {
	ID         uuid.UUID `json:"id"`
	WorkoutID  uuid.UUID `json:"workoutId"`
	ExerciseID uuid.UUID `json:"exerciseId"`
	Exercise   *Exercise `json:"exercise,omitempty"` // catalog entry, attached on aggregate reads
	Sets       []Set     `json:"sets,omitempty"`
}

// Set is the leaf performance record.
type Set struct {
	ID                uuid.UUID `json:"id"`
	WorkoutExerciseID uuid.UUID `json:"workoutExerciseId"`
	Order             int       `json:"order"` // 1st set, 2nd set...
	Weight            float64   `json:"weight"`
	Reps              int       `json:"reps"`
	RPE               *float64  `json:"rpe,omitempty"` // rate of perceived exertion
}

type WorkoutInput struct {
	Date      time.Time              `json:"date"`
	Notes     *string                `json:"notes,omitempty"`
	Exercises []WorkoutExerciseInput `json:"exercises"`
}

type WorkoutExerciseInput struct {
	ExerciseID uuid.UUID  `json:"exerciseId"`
	Sets       []SetInput `json:"sets"`
}

type SetInput struct {
	Order  int      `json:"order"`
	Weight float64  `json:"weight"`
	Reps   int      `json:"reps"`
	RPE    *float64 `json:"rpe,omitempty"`
}

// ProgressPoint is one chart sample: the heaviest weight logged for an
// exercise in the session dated Date.
type ProgressPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}
