package scanner

import (
	"database/sql"

	"github.com/google/uuid"

	model "github.com/petrosTsatsis/KilogBackend/internal/models"
	"github.com/petrosTsatsis/KilogBackend/internal/utils"
)

// Row is satisfied by pgx.Row and pgx.Rows.
type Row interface {
	Scan(dest ...interface{}) error
}

// ScanUser scans a SQL row into a User.
// Column order: id, auth_id, email, username, role, created_at, updated_at, last_login_at
func ScanUser(row Row) (*model.User, error) {
	var u model.User
	var username sql.NullString
	var lastLoginAt sql.NullTime

	err := row.Scan(
		&u.ID, &u.AuthID, &u.Email, &username, &u.Role,
		&u.CreatedAt, &u.UpdatedAt, &lastLoginAt,
	)
	if err != nil {
		return nil, err
	}

	u.Username = utils.NullStringToPointer(username)
	u.LastLoginAt = utils.NullTimeToPointer(lastLoginAt)

	return &u, nil
}

// ScanExercise scans a SQL row into an Exercise.
// Column order: id, name, category, user_id
func ScanExercise(row Row) (*model.Exercise, error) {
	var e model.Exercise
	var category sql.NullString
	var ownerID *uuid.UUID

	err := row.Scan(&e.ID, &e.Name, &category, &ownerID)
	if err != nil {
		return nil, err
	}

	e.Category = utils.NullStringToPointer(category)
	e.OwnerID = ownerID

	return &e, nil
}

// ScanWorkout scans a SQL row into a Workout without its children.
// Column order: id, user_id, date, notes, created_at, updated_at
func ScanWorkout(row Row) (*model.Workout, error) {
	var w model.Workout
	var notes sql.NullString

	err := row.Scan(&w.ID, &w.OwnerID, &w.Date, &notes, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}

	w.Notes = utils.NullStringToPointer(notes)

	return &w, nil
}

// ScanWorkoutExercise scans a workout exercise joined with its catalog entry.
// Column order: we.id, we.workout_id, we.exercise_id, e.name, e.category, e.user_id
func ScanWorkoutExercise(row Row) (*model.WorkoutExercise, error) {
	var we model.WorkoutExercise
	var name string
	var category sql.NullString
	var ownerID *uuid.UUID

	err := row.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &name, &category, &ownerID)
	if err != nil {
		return nil, err
	}

	we.Exercise = &model.Exercise{
		ID:       we.ExerciseID,
		Name:     name,
		Category: utils.NullStringToPointer(category),
		OwnerID:  ownerID,
	}

	return &we, nil
}

// ScanSet scans a SQL row into a Set.
// Column order: id, workout_exercise_id, set_order, weight, reps, rpe
func ScanSet(row Row) (*model.Set, error) {
	var s model.Set
	var rpe sql.NullFloat64

	err := row.Scan(&s.ID, &s.WorkoutExerciseID, &s.Order, &s.Weight, &s.Reps, &rpe)
	if err != nil {
		return nil, err
	}

	s.RPE = utils.NullFloat64ToPointer(rpe)

	return &s, nil
}

// ScanProgressPoint scans a (date, top_weight) analytics row.
func ScanProgressPoint(row Row) (*model.ProgressPoint, error) {
	var p model.ProgressPoint

	if err := row.Scan(&p.Date, &p.Weight); err != nil {
		return nil, err
	}

	return &p, nil
}
