package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	model "github.com/petrosTsatsis/KilogBackend/internal/models"
	"github.com/petrosTsatsis/KilogBackend/internal/scanner"
)

// WorkoutStore persists the Workout -> WorkoutExercise -> Set aggregate.
// Children never outlive the operation that writes them: every mutating
// method here is one transaction.
type WorkoutStore struct {
	pool *pgxpool.Pool
}

func NewWorkoutStore(pool *pgxpool.Pool) *WorkoutStore {
	return &WorkoutStore{pool: pool}
}

// CreateAggregate inserts the workout and its whole subtree. check runs for
// every referenced exercise before its row is written; any error it returns
// aborts the transaction and propagates unchanged.
func (s *WorkoutStore) CreateAggregate(
	ctx context.Context,
	ownerID uuid.UUID,
	in model.WorkoutInput,
	check func(ctx context.Context, exerciseID uuid.UUID) error,
) (*model.Workout, error) {
	var created *model.Workout

	err := inTx(ctx, s.pool, func(q Queryer) error {
		w := &model.Workout{OwnerID: ownerID, Date: in.Date, Notes: in.Notes}

		err := q.QueryRow(ctx, `
			INSERT INTO workouts (user_id, date, notes)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at
		`, ownerID, in.Date, in.Notes).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return err
		}

		if err := insertSubtree(ctx, q, w, in.Exercises, check); err != nil {
			return err
		}

		created = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// insertSubtree writes the exercise instances and their sets in input order.
// Shared by create and replace.
func insertSubtree(
	ctx context.Context,
	q Queryer,
	w *model.Workout,
	exercises []model.WorkoutExerciseInput,
	check func(ctx context.Context, exerciseID uuid.UUID) error,
) error {
	for i, exIn := range exercises {
		if err := check(ctx, exIn.ExerciseID); err != nil {
			return err
		}

		we := model.WorkoutExercise{WorkoutID: w.ID, ExerciseID: exIn.ExerciseID}
		err := q.QueryRow(ctx, `
			INSERT INTO workout_exercises (workout_id, exercise_id, position)
			VALUES ($1, $2, $3)
			RETURNING id
		`, w.ID, exIn.ExerciseID, i).Scan(&we.ID)
		if err != nil {
			return err
		}

		for _, setIn := range exIn.Sets {
			st := model.Set{
				WorkoutExerciseID: we.ID,
				Order:             setIn.Order,
				Weight:            setIn.Weight,
				Reps:              setIn.Reps,
				RPE:               setIn.RPE,
			}
			err := q.QueryRow(ctx, `
				INSERT INTO sets (workout_exercise_id, set_order, weight, reps, rpe)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`, we.ID, setIn.Order, setIn.Weight, setIn.Reps, setIn.RPE).Scan(&st.ID)
			if err != nil {
				return err
			}
			we.Sets = append(we.Sets, st)
		}

		w.Exercises = append(w.Exercises, we)
	}

	return nil
}

// GetAggregate fetches a workout with all descendants eagerly attached,
// children in insertion order. Returns nil when no row exists.
func (s *WorkoutStore) GetAggregate(ctx context.Context, id uuid.UUID) (*model.Workout, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, user_id, date, notes, created_at, updated_at
		FROM workouts
		WHERE id = $1
	`, id)

	w, err := scanner.ScanWorkout(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT we.id, we.workout_id, we.exercise_id, e.name, e.category, e.user_id
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_id = $1
		ORDER BY we.position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := map[uuid.UUID]int{}
	for rows.Next() {
		we, err := scanner.ScanWorkoutExercise(rows)
		if err != nil {
			return nil, err
		}
		index[we.ID] = len(w.Exercises)
		w.Exercises = append(w.Exercises, *we)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	setRows, err := s.pool.Query(ctx, `
		SELECT s.id, s.workout_exercise_id, s.set_order, s.weight, s.reps, s.rpe
		FROM sets s
		JOIN workout_exercises we ON we.id = s.workout_exercise_id
		WHERE we.workout_id = $1
		ORDER BY we.position, s.set_order
	`, id)
	if err != nil {
		return nil, err
	}
	defer setRows.Close()

	for setRows.Next() {
		st, err := scanner.ScanSet(setRows)
		if err != nil {
			return nil, err
		}
		if i, ok := index[st.WorkoutExerciseID]; ok {
			w.Exercises[i].Sets = append(w.Exercises[i].Sets, *st)
		}
	}
	if err := setRows.Err(); err != nil {
		return nil, err
	}

	return w, nil
}

// ListByOwner returns workout summaries (no children), most recent first.
func (s *WorkoutStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]model.Workout, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, date, notes, created_at, updated_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []model.Workout
	for rows.Next() {
		w, err := scanner.ScanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}

	return workouts, rows.Err()
}

// ReplaceAggregate updates the scalar fields, drops the existing subtree and
// rebuilds it from in, all in one transaction. On any failure the old subtree
// stays exactly as it was.
func (s *WorkoutStore) ReplaceAggregate(
	ctx context.Context,
	id uuid.UUID,
	in model.WorkoutInput,
	check func(ctx context.Context, exerciseID uuid.UUID) error,
) (*model.Workout, error) {
	var replaced *model.Workout

	err := inTx(ctx, s.pool, func(q Queryer) error {
		w := &model.Workout{ID: id, Date: in.Date, Notes: in.Notes}

		err := q.QueryRow(ctx, `
			UPDATE workouts
			SET date = $1, notes = $2, updated_at = NOW()
			WHERE id = $3
			RETURNING user_id, created_at, updated_at
		`, in.Date, in.Notes, id).Scan(&w.OwnerID, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return err
		}

		// Two-phase rebuild: delete the whole old subtree, then insert the
		// new one. Leaves first so no row is ever orphaned.
		_, err = q.Exec(ctx, `
			DELETE FROM sets
			WHERE workout_exercise_id IN (
				SELECT id FROM workout_exercises WHERE workout_id = $1
			)
		`, id)
		if err != nil {
			return err
		}

		_, err = q.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_id = $1`, id)
		if err != nil {
			return err
		}

		if err := insertSubtree(ctx, q, w, in.Exercises, check); err != nil {
			return err
		}

		replaced = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	return replaced, nil
}

// Delete removes the workout and cascades over all descendants in one
// transaction.
func (s *WorkoutStore) Delete(ctx context.Context, id uuid.UUID) error {
	return inTx(ctx, s.pool, func(q Queryer) error {
		_, err := q.Exec(ctx, `
			DELETE FROM sets
			WHERE workout_exercise_id IN (
				SELECT id FROM workout_exercises WHERE workout_id = $1
			)
		`, id)
		if err != nil {
			return err
		}

		_, err = q.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_id = $1`, id)
		if err != nil {
			return err
		}

		_, err = q.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
		return err
	})
}
