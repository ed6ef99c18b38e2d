package scanner

import (
	"database/sql"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRow plays back one row of column values.
type stubRow struct {
	vals []interface{}
}

func (r stubRow) Scan(dest ...interface{}) error {
	if len(dest) != len(r.vals) {
		return fmt.Errorf("expected %d columns, got %d", len(r.vals), len(dest))
	}
	for i, d := range dest {
		dst := reflect.ValueOf(d).Elem()
		val := reflect.ValueOf(r.vals[i])
		if !val.Type().AssignableTo(dst.Type()) {
			val = val.Convert(dst.Type())
		}
		dst.Set(val)
	}
	return nil
}

func TestScanUser(t *testing.T) {
	id := uuid.New()
	created := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	u, err := ScanUser(stubRow{vals: []interface{}{
		id, "auth_1", "anna@example.com",
		sql.NullString{String: "anna", Valid: true},
		"USER", created, created,
		sql.NullTime{},
	}})
	require.NoError(t, err)

	assert.Equal(t, id, u.ID)
	assert.Equal(t, "auth_1", u.AuthID)
	require.NotNil(t, u.Username)
	assert.Equal(t, "anna", *u.Username)
	assert.Nil(t, u.LastLoginAt)
}

func TestScanExercise(t *testing.T) {
	id := uuid.New()
	owner := uuid.New()

	global, err := ScanExercise(stubRow{vals: []interface{}{
		id, "Bench Press", sql.NullString{String: "Push", Valid: true}, (*uuid.UUID)(nil),
	}})
	require.NoError(t, err)
	assert.True(t, global.IsGlobal())
	require.NotNil(t, global.Category)
	assert.Equal(t, "Push", *global.Category)

	private, err := ScanExercise(stubRow{vals: []interface{}{
		id, "Paused Squat", sql.NullString{}, &owner,
	}})
	require.NoError(t, err)
	assert.False(t, private.IsGlobal())
	assert.Equal(t, owner, *private.OwnerID)
	assert.Nil(t, private.Category)
}

func TestScanWorkoutExercise(t *testing.T) {
	weID := uuid.New()
	workoutID := uuid.New()
	exerciseID := uuid.New()

	we, err := ScanWorkoutExercise(stubRow{vals: []interface{}{
		weID, workoutID, exerciseID, "Deadlift", sql.NullString{}, (*uuid.UUID)(nil),
	}})
	require.NoError(t, err)

	assert.Equal(t, exerciseID, we.ExerciseID)
	require.NotNil(t, we.Exercise)
	assert.Equal(t, exerciseID, we.Exercise.ID)
	assert.Equal(t, "Deadlift", we.Exercise.Name)
}

func TestScanSet(t *testing.T) {
	id := uuid.New()
	weID := uuid.New()

	s, err := ScanSet(stubRow{vals: []interface{}{
		id, weID, 2, 102.5, 5, sql.NullFloat64{Float64: 8.5, Valid: true},
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Order)
	assert.Equal(t, 102.5, s.Weight)
	assert.Equal(t, 5, s.Reps)
	require.NotNil(t, s.RPE)
	assert.Equal(t, 8.5, *s.RPE)

	noRPE, err := ScanSet(stubRow{vals: []interface{}{
		id, weID, 1, 100.0, 5, sql.NullFloat64{},
	}})
	require.NoError(t, err)
	assert.Nil(t, noRPE.RPE)
}
