package store

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petrosTsatsis/KilogBackend/internal/apperr"
	model "github.com/petrosTsatsis/KilogBackend/internal/models"
	"github.com/petrosTsatsis/KilogBackend/internal/scanner"
)

const userColumns = `id, auth_id, email, username, role, created_at, updated_at, last_login_at`

// UserStore persists users. Unique violations come back as apperr.Conflict
// naming the colliding field; deleting a user cascades over their workouts
// and private exercises at the schema level.
type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	u, err := scanner.ScanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (s *UserStore) GetByAuthID(ctx context.Context, authID string) (*model.User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE auth_id = $1`, authID)

	u, err := scanner.ScanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (s *UserStore) Create(ctx context.Context, authID, email string, username *string) (*model.User, error) {
	u := &model.User{AuthID: authID, Email: email, Username: username}

	err := s.pool.QueryRow(ctx, `
		INSERT INTO users (auth_id, email, username)
		VALUES ($1, $2, $3)
		RETURNING id, role, created_at, updated_at
	`, authID, email, username).Scan(&u.ID, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, conflictOrRaw(err)
	}

	return u, nil
}

// UpdatePatch applies only the fields present in patch.
func (s *UserStore) UpdatePatch(ctx context.Context, id uuid.UUID, patch model.UserPatch) error {
	query := "UPDATE users SET updated_at = NOW()"
	args := []interface{}{}
	argCount := 1

	if patch.Username != nil {
		query += ", username = $" + strconv.Itoa(argCount)
		args = append(args, *patch.Username)
		argCount++
	}

	query += " WHERE id = $" + strconv.Itoa(argCount)
	args = append(args, id)

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return conflictOrRaw(err)
	}

	return nil
}

func (s *UserStore) RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE users SET last_login_at = $1, updated_at = NOW() WHERE id = $2`,
		at, id,
	)
	return err
}

func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

// conflictOrRaw turns a unique violation into a Conflict naming the field the
// caller collided on; anything else passes through untouched.
func conflictOrRaw(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return err
	}
	switch {
	case strings.Contains(constraint, "email"):
		return apperr.Conflict("email already in use")
	case strings.Contains(constraint, "username"):
		return apperr.Conflict("username already in use")
	case strings.Contains(constraint, "auth_id"):
		return apperr.Conflict("identity already registered")
	default:
		return apperr.Conflict("user constraint violation")
	}
}
