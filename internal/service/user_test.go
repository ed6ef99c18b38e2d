package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrosTsatsis/KilogBackend/internal/apperr"
	model "github.com/petrosTsatsis/KilogBackend/internal/models"
)

// fakeUserStore is an in-memory UserStore keyed by both ids.
type fakeUserStore struct {
	users   map[uuid.UUID]model.User
	creates int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]model.User)}
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserStore) GetByAuthID(_ context.Context, authID string) (*model.User, error) {
	for _, u := range f.users {
		if u.AuthID == authID {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(_ context.Context, authID, email string, username *string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return nil, apperr.Conflict("email already in use")
		}
	}
	f.creates++
	u := model.User{ID: uuid.New(), AuthID: authID, Email: email, Username: username, Role: model.RoleUser}
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserStore) UpdatePatch(_ context.Context, id uuid.UUID, patch model.UserPatch) error {
	u := f.users[id]
	if patch.Username != nil {
		u.Username = patch.Username
	}
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) RecordLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	u := f.users[id]
	u.LastLoginAt = &at
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func createdEvent(authID, email string, username *string) model.IdentityEvent {
	return model.IdentityEvent{
		Type: model.EventUserCreated,
		Data: model.IdentityEventData{ID: authID, Email: email, Username: username},
	}
}

func TestCreateFromIdentity(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	name := "anna"
	err := svc.ProcessIdentityEvent(context.Background(), createdEvent("auth_1", "anna@example.com", &name))
	require.NoError(t, err)

	u, err := svc.GetByAuthID(context.Background(), "auth_1")
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", u.Email)
	require.NotNil(t, u.Username)
	assert.Equal(t, "anna", *u.Username)
}

func TestCreateFromIdentityIsIdempotent(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	ev := createdEvent("auth_1", "anna@example.com", nil)
	require.NoError(t, svc.ProcessIdentityEvent(context.Background(), ev))
	require.NoError(t, svc.ProcessIdentityEvent(context.Background(), ev))

	assert.Equal(t, 1, store.creates)
}

func TestCreateFromIdentityUsernameFallsBackToEmailPrefix(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	require.NoError(t, svc.ProcessIdentityEvent(context.Background(), createdEvent("auth_2", "bob.smith@example.com", nil)))

	u, err := svc.GetByAuthID(context.Background(), "auth_2")
	require.NoError(t, err)
	require.NotNil(t, u.Username)
	assert.Equal(t, "bob.smith", *u.Username)
}

func TestCreateFromIdentityRequiresEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	err := svc.ProcessIdentityEvent(context.Background(), createdEvent("auth_3", "", nil))
	require.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestUpdateFromIdentity(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	require.NoError(t, svc.ProcessIdentityEvent(context.Background(), createdEvent("auth_1", "anna@example.com", nil)))

	renamed := "anna_lifts"
	err := svc.ProcessIdentityEvent(context.Background(), model.IdentityEvent{
		Type: model.EventUserUpdated,
		Data: model.IdentityEventData{ID: "auth_1", Username: &renamed},
	})
	require.NoError(t, err)

	u, err := svc.GetByAuthID(context.Background(), "auth_1")
	require.NoError(t, err)
	require.NotNil(t, u.Username)
	assert.Equal(t, "anna_lifts", *u.Username)
}

func TestUpdateFromIdentityUnknownUserIsIgnored(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	err := svc.ProcessIdentityEvent(context.Background(), model.IdentityEvent{
		Type: model.EventUserUpdated,
		Data: model.IdentityEventData{ID: "auth_missing"},
	})
	require.NoError(t, err)
}

func TestRecordLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)
	loginAt := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return loginAt }

	require.NoError(t, svc.ProcessIdentityEvent(context.Background(), createdEvent("auth_1", "anna@example.com", nil)))

	err := svc.ProcessIdentityEvent(context.Background(), model.IdentityEvent{
		Type: model.EventSessionCreated,
		Data: model.IdentityEventData{UserID: "auth_1"},
	})
	require.NoError(t, err)

	u, err := svc.GetByAuthID(context.Background(), "auth_1")
	require.NoError(t, err)
	require.NotNil(t, u.LastLoginAt)
	assert.Equal(t, loginAt, *u.LastLoginAt)
}

func TestRecordLoginBeforeCreateIsTolerated(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	err := svc.ProcessIdentityEvent(context.Background(), model.IdentityEvent{
		Type: model.EventSessionCreated,
		Data: model.IdentityEventData{UserID: "auth_early"},
	})
	require.NoError(t, err)
}

func TestDeleteFromIdentity(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	require.NoError(t, svc.ProcessIdentityEvent(context.Background(), createdEvent("auth_1", "anna@example.com", nil)))

	deleted := model.IdentityEvent{
		Type: model.EventUserDeleted,
		Data: model.IdentityEventData{ID: "auth_1"},
	}
	require.NoError(t, svc.ProcessIdentityEvent(context.Background(), deleted))

	_, err := svc.GetByAuthID(context.Background(), "auth_1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// redelivery is a no-op
	require.NoError(t, svc.ProcessIdentityEvent(context.Background(), deleted))
}

func TestUnknownIdentityEventIsIgnored(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	err := svc.ProcessIdentityEvent(context.Background(), model.IdentityEvent{Type: "organization.created"})
	require.NoError(t, err)
}
