package store

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	model "github.com/petrosTsatsis/KilogBackend/internal/models"
	"github.com/petrosTsatsis/KilogBackend/internal/scanner"
)

// ExerciseStore persists catalog entries.
type ExerciseStore struct {
	pool *pgxpool.Pool
}

func NewExerciseStore(pool *pgxpool.Pool) *ExerciseStore {
	return &ExerciseStore{pool: pool}
}

// List returns global entries plus the actor's own, optionally filtered by a
// case-insensitive substring on name. No particular order is promised.
func (s *ExerciseStore) List(ctx context.Context, actorID uuid.UUID, search string, limit int) ([]model.Exercise, error) {
	query := `
		SELECT id, name, category, user_id
		FROM exercises
		WHERE (user_id IS NULL OR user_id = $1)
	`
	args := []interface{}{actorID}
	argCount := 2

	if search != "" {
		query += " AND name ILIKE '%' || $" + strconv.Itoa(argCount) + " || '%'"
		args = append(args, search)
		argCount++
	}

	query += " LIMIT $" + strconv.Itoa(argCount)
	args = append(args, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []model.Exercise
	for rows.Next() {
		ex, err := scanner.ScanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, *ex)
	}

	return exercises, rows.Err()
}

// GetByID returns nil when no row exists.
func (s *ExerciseStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Exercise, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, category, user_id FROM exercises WHERE id = $1`,
		id,
	)

	ex, err := scanner.ScanExercise(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ex, nil
}

// Create inserts a private entry owned by ownerID.
func (s *ExerciseStore) Create(ctx context.Context, in model.ExerciseInput, ownerID uuid.UUID) (*model.Exercise, error) {
	ex := &model.Exercise{
		Name:     in.Name,
		Category: in.Category,
		OwnerID:  &ownerID,
	}

	err := s.pool.QueryRow(ctx, `
		INSERT INTO exercises (name, category, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, in.Name, in.Category, ownerID).Scan(&ex.ID)
	if err != nil {
		return nil, err
	}

	return ex, nil
}

// UpdatePatch applies only the fields present in patch.
func (s *ExerciseStore) UpdatePatch(ctx context.Context, id uuid.UUID, patch model.ExercisePatch) error {
	query := "UPDATE exercises SET"
	args := []interface{}{}
	argCount := 1

	if patch.Name != nil {
		query += " name = $" + strconv.Itoa(argCount) + ","
		args = append(args, *patch.Name)
		argCount++
	}

	if patch.Category != nil {
		query += " category = $" + strconv.Itoa(argCount) + ","
		args = append(args, *patch.Category)
		argCount++
	}

	if len(args) == 0 {
		// empty patch, nothing to write
		return nil
	}

	query = query[:len(query)-1] + " WHERE id = $" + strconv.Itoa(argCount)
	args = append(args, id)

	_, err := s.pool.Exec(ctx, query, args...)
	return err
}

func (s *ExerciseStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	return err
}
