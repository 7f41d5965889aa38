package service

import (
	"context"
	"testing"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/kv"
	"trackhq/trackhq-server/internal/repository"
	"trackhq/trackhq-server/internal/repository/kvrepo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture(t *testing.T) (repository.CredentialRepository, ProfileService) {
	t.Helper()
	store := kv.NewMemoryStore()
	profiles := kvrepo.NewProfileRepository(store)
	credentials := kvrepo.NewCredentialRepository(store)
	return credentials, NewProfileService(profiles, credentials)
}

func TestProfileService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	_, svc := newProfileFixture(t)

	_, err := svc.CreateProfile(ctx, "", "")
	assert.ErrorIs(t, err, ErrProfileNameEmpty)
	_, err = svc.CreateProfile(ctx, "   ", "")
	assert.ErrorIs(t, err, ErrProfileNameEmpty)

	profile, err := svc.CreateProfile(ctx, "Mila", "mila@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Mila", profile.Name)
	assert.Equal(t, domain.DefaultPreferences(), profile.Preferences)
}

func TestProfileService_UpdateValidation(t *testing.T) {
	ctx := context.Background()
	_, svc := newProfileFixture(t)

	profile, err := svc.CreateProfile(ctx, "Mila", "")
	require.NoError(t, err)

	blank := "  "
	_, err = svc.UpdateProfile(ctx, profile.ID, repository.ProfileUpdate{Name: &blank})
	assert.ErrorIs(t, err, ErrProfileNameEmpty)

	_, err = svc.UpdateProfile(ctx, "no-such-id", repository.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_DeleteLastRefused(t *testing.T) {
	ctx := context.Background()
	_, svc := newProfileFixture(t)

	only, err := svc.CreateProfile(ctx, "Mila", "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteProfile(ctx, only.ID), ErrLastProfile)
	assert.ErrorIs(t, svc.DeleteProfile(ctx, "no-such-id"), ErrProfileNotFound)
}

func TestProfileService_DeleteDropsCredential(t *testing.T) {
	ctx := context.Background()
	credentials, svc := newProfileFixture(t)

	first, err := svc.CreateProfile(ctx, "Mila", "mila@example.com")
	require.NoError(t, err)
	_, err = svc.CreateProfile(ctx, "Ivan", "")
	require.NoError(t, err)

	require.NoError(t, credentials.Create(ctx, domain.Credential{
		ProfileID:    first.ID,
		Email:        "mila@example.com",
		PasswordHash: "x",
	}))

	require.NoError(t, svc.DeleteProfile(ctx, first.ID))

	_, err = credentials.GetByEmail(ctx, "mila@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileService_ActiveProfile(t *testing.T) {
	ctx := context.Background()
	_, svc := newProfileFixture(t)

	_, err := svc.GetActiveProfile(ctx)
	assert.ErrorIs(t, err, ErrNoActiveProfile)

	first, err := svc.CreateProfile(ctx, "Mila", "")
	require.NoError(t, err)
	second, err := svc.CreateProfile(ctx, "Ivan", "")
	require.NoError(t, err)

	active, err := svc.GetActiveProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)

	require.NoError(t, svc.SetActiveProfile(ctx, second.ID))
	active, err = svc.GetActiveProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	assert.ErrorIs(t, svc.SetActiveProfile(ctx, "no-such-id"), ErrProfileNotFound)
}
