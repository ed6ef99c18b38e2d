package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/petrosTsatsis/KilogBackend/internal/apperr"
	"github.com/petrosTsatsis/KilogBackend/internal/logger"
	model "github.com/petrosTsatsis/KilogBackend/internal/models"
)

// UserStore is what the lifecycle needs from persistence.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByAuthID(ctx context.Context, authID string) (*model.User, error)
	Create(ctx context.Context, authID, email string, username *string) (*model.User, error)
	UpdatePatch(ctx context.Context, id uuid.UUID, patch model.UserPatch) error
	RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService mirrors the external identity provider's user lifecycle. Every
// event handler is idempotent and tolerates out-of-order delivery; a handler
// error never bounces back to the provider.
type UserService struct {
	store UserStore
	now   func() time.Time
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store, now: time.Now}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Error("fetching user %s: %v", id, err)
		return nil, apperr.System(err)
	}
	if u == nil {
		return nil, apperr.NotFound("user", id.String())
	}

	return u, nil
}

// GetByAuthID resolves the external identity key into a local user. Used by
// the auth middleware on every request.
func (s *UserService) GetByAuthID(ctx context.Context, authID string) (*model.User, error) {
	u, err := s.store.GetByAuthID(ctx, authID)
	if err != nil {
		logger.Error("fetching user by auth id: %v", err)
		return nil, apperr.System(err)
	}
	if u == nil {
		return nil, apperr.NotFound("user", authID)
	}

	return u, nil
}

// ProcessIdentityEvent dispatches one provider notification.
func (s *UserService) ProcessIdentityEvent(ctx context.Context, ev model.IdentityEvent) error {
	switch ev.Type {
	case model.EventUserCreated:
		return s.CreateFromIdentity(ctx, ev.Data.ID, ev.Data.Email, ev.Data.Username)
	case model.EventUserUpdated:
		return s.UpdateFromIdentity(ctx, ev.Data.ID, model.UserPatch{Username: ev.Data.Username})
	case model.EventSessionCreated:
		return s.RecordLogin(ctx, ev.Data.UserID)
	case model.EventUserDeleted:
		return s.DeleteFromIdentity(ctx, ev.Data.ID)
	default:
		logger.Warning("ignoring unknown identity event %q", ev.Type)
		return nil
	}
}

// CreateFromIdentity creates the local user unless the identity is already
// registered, in which case it is a no-op.
func (s *UserService) CreateFromIdentity(ctx context.Context, authID, email string, username *string) error {
	existing, err := s.store.GetByAuthID(ctx, authID)
	if err != nil {
		logger.Error("checking identity %s: %v", authID, err)
		return apperr.System(err)
	}
	if existing != nil {
		logger.Info("identity %s already registered, skipping create", authID)
		return nil
	}

	if email == "" {
		return apperr.BusinessRule("identity event carries no email")
	}

	// provider username, falling back to the email prefix
	if username == nil || *username == "" {
		prefix := strings.SplitN(email, "@", 2)[0]
		username = &prefix
	}

	if _, err := s.store.Create(ctx, authID, email, username); err != nil {
		logger.Error("creating user for identity %s: %v", authID, err)
		return wrapStore(err)
	}

	logger.Success("created user %s from identity provider", email)
	return nil
}

// UpdateFromIdentity patches mutable profile fields. Unknown users are logged
// and ignored.
func (s *UserService) UpdateFromIdentity(ctx context.Context, authID string, patch model.UserPatch) error {
	u, err := s.store.GetByAuthID(ctx, authID)
	if err != nil {
		logger.Error("fetching identity %s: %v", authID, err)
		return apperr.System(err)
	}
	if u == nil {
		logger.Warning("received update for unknown identity %s", authID)
		return nil
	}

	if err := s.store.UpdatePatch(ctx, u.ID, patch); err != nil {
		logger.Error("updating user %s: %v", u.ID, err)
		return wrapStore(err)
	}

	return nil
}

// RecordLogin stamps last_login_at. Tolerates sessions arriving before the
// user.created event.
func (s *UserService) RecordLogin(ctx context.Context, authID string) error {
	u, err := s.store.GetByAuthID(ctx, authID)
	if err != nil {
		logger.Error("fetching identity %s: %v", authID, err)
		return apperr.System(err)
	}
	if u == nil {
		logger.Warning("session started for unknown identity %s", authID)
		return nil
	}

	if err := s.store.RecordLogin(ctx, u.ID, s.now()); err != nil {
		logger.Error("recording login for user %s: %v", u.ID, err)
		return apperr.System(err)
	}

	return nil
}

// DeleteFromIdentity removes the user; their workouts and private exercises
// go with them.
func (s *UserService) DeleteFromIdentity(ctx context.Context, authID string) error {
	u, err := s.store.GetByAuthID(ctx, authID)
	if err != nil {
		logger.Error("fetching identity %s: %v", authID, err)
		return apperr.System(err)
	}
	if u == nil {
		logger.Warning("received delete for unknown identity %s", authID)
		return nil
	}

	if err := s.store.Delete(ctx, u.ID); err != nil {
		logger.Error("deleting user %s: %v", u.ID, err)
		return apperr.System(err)
	}

	logger.Info("deleted user %s", u.ID)
	return nil
}
