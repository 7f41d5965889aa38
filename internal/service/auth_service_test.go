package service

import (
	"context"
	"testing"
	"time"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/kv"
	"trackhq/trackhq-server/internal/repository"
	"trackhq/trackhq-server/internal/repository/kvrepo"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func newAuthFixture(t *testing.T) (repository.ProfileRepository, AuthService) {
	t.Helper()
	store := kv.NewMemoryStore()
	profiles := kvrepo.NewProfileRepository(store)
	credentials := kvrepo.NewCredentialRepository(store)
	return profiles, NewAuthService(profiles, credentials, testJWTSecret, time.Hour)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	_, svc := newAuthFixture(t)

	token, profile, err := svc.Register(ctx, "Mila", "mila@example.com", "s3cret-pw")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Mila", profile.Name)

	token, logged, err := svc.Login(ctx, "mila@example.com", "s3cret-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, profile.ID, logged.ID)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	_, svc := newAuthFixture(t)

	_, _, err := svc.Register(ctx, "Mila", "mila@example.com", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, _, err = svc.Register(ctx, "", "mila@example.com", "s3cret-pw")
	assert.Error(t, err)

	_, _, err = svc.Register(ctx, "Mila", "mila@example.com", "s3cret-pw")
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, "Other", "mila@example.com", "another-pw")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	_, svc := newAuthFixture(t)

	_, _, err := svc.Register(ctx, "Mila", "mila@example.com", "s3cret-pw")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "mila@example.com", "wrong-pw")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cret-pw")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_RegisterActivatesProfile(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	profiles := kvrepo.NewProfileRepository(store)
	credentials := kvrepo.NewCredentialRepository(store)
	records := kvrepo.NewRecordRepository(store, profiles)
	svc := NewAuthService(profiles, credentials, testJWTSecret, time.Hour)

	_, first, err := svc.Register(ctx, "Mila", "mila@example.com", "s3cret-pw")
	require.NoError(t, err)
	_, second, err := svc.Register(ctx, "Ivan", "ivan@example.com", "s3cret-pw")
	require.NoError(t, err)

	// The second registration takes over the active pointer.
	active, err := profiles.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	// A record written right after registration lands in the new profile's
	// namespace, not the previous user's.
	require.NoError(t, records.SaveWorkout(ctx, domain.WorkoutEntry{ID: "w1", Date: "2026-08-28"}))
	_, err = store.Get(ctx, second.ID+"_workouts")
	assert.NoError(t, err)
	_, err = store.Get(ctx, first.ID+"_workouts")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}

func TestAuthService_LoginActivatesProfile(t *testing.T) {
	ctx := context.Background()
	profiles, svc := newAuthFixture(t)

	_, first, err := svc.Register(ctx, "Mila", "mila@example.com", "s3cret-pw")
	require.NoError(t, err)
	_, second, err := svc.Register(ctx, "Ivan", "ivan@example.com", "s3cret-pw")
	require.NoError(t, err)

	active, err := profiles.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	_, _, err = svc.Login(ctx, "mila@example.com", "s3cret-pw")
	require.NoError(t, err)

	active, err = profiles.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)
	assert.NotEqual(t, second.ID, active.ID)
}

func TestAuthService_TokenClaims(t *testing.T) {
	ctx := context.Background()
	_, svc := newAuthFixture(t)

	token, profile, err := svc.Register(ctx, "Mila", "mila@example.com", "s3cret-pw")
	require.NoError(t, err)

	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, profile.ID, claims.ProfileID)
	assert.Equal(t, "trackhq", claims.Issuer)
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	store := kv.NewMemoryStore()
	profiles := kvrepo.NewProfileRepository(store)
	credentials := kvrepo.NewCredentialRepository(store)

	assert.Panics(t, func() {
		NewAuthService(profiles, credentials, "", time.Hour)
	})
}
