package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campusadmin/internal/app/models"
	"github.com/yigit/campusadmin/internal/app/models/dto"
	"github.com/yigit/campusadmin/internal/pkg/apperrors"
)

type fakeAuthenticator struct {
	password string
	err      error
	calls    int
}

func (f *fakeAuthenticator) Login(_ context.Context, username, password string) (*dto.LoginResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if password != f.password {
		return nil, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "backend returned 401")
	}
	return &dto.LoginResponse{
		Token: "token-" + username,
		User:  models.User{Username: username, Email: username + "@college.edu", Role: "Admin"},
	}, nil
}

func TestLoginWrongPasswordStaysAnonymous(t *testing.T) {
	store := NewSessionService(&fakeAuthenticator{password: "secret"}, time.Hour, zerolog.Nop())

	session, err := store.Login(context.Background(), "admin", "wrong")
	require.Nil(t, session)
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	require.Equal(t, LoginFailedMessage, err.Error())
	require.Zero(t, store.Count())
}

func TestLoginFailuresCollapseToOneMessage(t *testing.T) {
	causes := []error{
		apperrors.NewCustomError(apperrors.ErrBackendUnavailable, "dial tcp: connection refused"),
		apperrors.ErrResourceNotFound,
		errors.New("anything"),
	}
	for _, cause := range causes {
		store := NewSessionService(&fakeAuthenticator{err: cause}, time.Hour, zerolog.Nop())
		_, err := store.Login(context.Background(), "admin", "secret")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		require.Equal(t, LoginFailedMessage, err.Error())
	}
}

func TestLoginEmptyCredentialsSkipsBackend(t *testing.T) {
	auth := &fakeAuthenticator{password: ""}
	store := NewSessionService(auth, time.Hour, zerolog.Nop())

	_, err := store.Login(context.Background(), "admin", "")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	require.Zero(t, auth.calls)
}

func TestLoginThenLogout(t *testing.T) {
	store := NewSessionService(&fakeAuthenticator{password: "secret"}, time.Hour, zerolog.Nop())

	session, err := store.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	require.Equal(t, "token-admin", session.Token)
	require.Equal(t, "admin", session.User.Username)

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	require.Same(t, session, got)
	require.Equal(t, 1, store.Count())

	store.Logout(session.ID)
	_, err = store.Get(session.ID)
	require.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	require.Zero(t, store.Count())

	// Logging out twice is harmless.
	store.Logout(session.ID)
}

func TestSessionsAreIndependent(t *testing.T) {
	store := NewSessionService(&fakeAuthenticator{password: "secret"}, time.Hour, zerolog.Nop())

	a, err := store.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	b, err := store.Login(context.Background(), "bob", "secret")
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)

	store.Logout(a.ID)
	got, err := store.Get(b.ID)
	require.NoError(t, err)
	require.Equal(t, "bob", got.User.Username)
}

func TestExpiredSessionsAreDropped(t *testing.T) {
	store := NewSessionService(&fakeAuthenticator{password: "secret"}, time.Hour, zerolog.Nop())
	impl := store.(*sessionServiceImpl)
	start := time.Date(2024, 9, 1, 9, 0, 0, 0, time.UTC)
	impl.now = func() time.Time { return start }

	stale, err := store.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	abandoned, err := store.Login(context.Background(), "carol", "secret")
	require.NoError(t, err)

	impl.now = func() time.Time { return start.Add(59 * time.Minute) }
	_, err = store.Get(stale.ID)
	require.NoError(t, err)

	impl.now = func() time.Time { return start.Add(time.Hour) }
	_, err = store.Get(stale.ID)
	require.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	require.Equal(t, 1, store.Count())

	// The next login sweeps sessions nobody asked for again.
	fresh, err := store.Login(context.Background(), "bob", "secret")
	require.NoError(t, err)
	require.Equal(t, 1, store.Count())
	_, err = store.Get(abandoned.ID)
	require.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	_, err = store.Get(fresh.ID)
	require.NoError(t, err)
}

func TestZeroLifetimeKeepsSessions(t *testing.T) {
	store := NewSessionService(&fakeAuthenticator{password: "secret"}, 0, zerolog.Nop())
	impl := store.(*sessionServiceImpl)

	session, err := store.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)

	impl.now = func() time.Time { return time.Now().Add(1000 * time.Hour) }
	_, err = store.Get(session.ID)
	require.NoError(t, err)
}
