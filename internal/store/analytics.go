package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	model "github.com/petrosTsatsis/KilogBackend/internal/models"
	"github.com/petrosTsatsis/KilogBackend/internal/scanner"
	"github.com/petrosTsatsis/KilogBackend/internal/utils"
)

// AnalyticsStore runs the read-only performance queries. Every query joins
// back to workouts.user_id so a user only ever sees their own sets.
type AnalyticsStore struct {
	pool *pgxpool.Pool
}

func NewAnalyticsStore(pool *pgxpool.Pool) *AnalyticsStore {
	return &AnalyticsStore{pool: pool}
}

// MaxWeight returns the heaviest weight the user ever logged for the
// exercise, or nil when there is no history.
func (s *AnalyticsStore) MaxWeight(ctx context.Context, userID, exerciseID uuid.UUID) (*float64, error) {
	var max sql.NullFloat64

	err := s.pool.QueryRow(ctx, `
		SELECT MAX(s.weight)
		FROM sets s
		JOIN workout_exercises we ON we.id = s.workout_exercise_id
		JOIN workouts w ON w.id = we.workout_id
		WHERE w.user_id = $1 AND we.exercise_id = $2
	`, userID, exerciseID).Scan(&max)
	if err != nil {
		return nil, err
	}

	return utils.NullFloat64ToPointer(max), nil
}

// SessionTopWeights returns (date, top weight) per session containing the
// exercise, oldest first. The limit keeps the most recent sessions: the inner
// query picks the trailing window, the outer one restores chronological order.
func (s *AnalyticsStore) SessionTopWeights(ctx context.Context, userID, exerciseID uuid.UUID, limit int) ([]model.ProgressPoint, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT date, top_weight FROM (
			SELECT w.id, w.date, MAX(s.weight) AS top_weight
			FROM workouts w
			JOIN workout_exercises we ON we.workout_id = w.id
			JOIN sets s ON s.workout_exercise_id = we.id
			WHERE w.user_id = $1 AND we.exercise_id = $2
			GROUP BY w.id, w.date
			ORDER BY w.date DESC
			LIMIT $3
		) recent
		ORDER BY date ASC
	`, userID, exerciseID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []model.ProgressPoint
	for rows.Next() {
		p, err := scanner.ScanProgressPoint(rows)
		if err != nil {
			return nil, err
		}
		points = append(points, *p)
	}

	return points, rows.Err()
}

// CountWorkoutsBetween counts the user's workouts with date in [from, to],
// both bounds inclusive.
func (s *AnalyticsStore) CountWorkoutsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	var count int

	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM workouts
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`, userID, from, to).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
