package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petrosTsatsis/KilogBackend/internal/logger"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		auth_id       TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		username      TEXT UNIQUE,
		role          TEXT NOT NULL DEFAULT 'USER',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_login_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id       UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name     TEXT NOT NULL,
		category TEXT,
		user_id  UUID REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_exercises_user_id ON exercises(user_id)`,
	`CREATE TABLE IF NOT EXISTS workouts (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date       DATE NOT NULL,
		notes      TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_user_date ON workouts(user_id, date DESC)`,
	`CREATE TABLE IF NOT EXISTS workout_exercises (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		workout_id  UUID NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
		exercise_id UUID NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
		position    INT NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout_id ON workout_exercises(workout_id)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_exercises_exercise_id ON workout_exercises(exercise_id)`,
	`CREATE TABLE IF NOT EXISTS sets (
		id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		workout_exercise_id UUID NOT NULL REFERENCES workout_exercises(id) ON DELETE CASCADE,
		set_order           INT NOT NULL DEFAULT 1,
		weight              DOUBLE PRECISION NOT NULL,
		reps                INT NOT NULL,
		rpe                 DOUBLE PRECISION
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sets_workout_exercise_id ON sets(workout_exercise_id)`,
}

// Migrate brings the schema up. Statements are idempotent so running at every
// boot is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	logger.Success("Schema up to date (%d statements)", len(migrations))
	return nil
}
