package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/kv"
	"trackhq/trackhq-server/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// kvProfileRepository implements repository.ProfileRepository.
type kvProfileRepository struct {
	store kv.Store
}

// NewProfileRepository creates a profile repository over the given store.
func NewProfileRepository(store kv.Store) repository.ProfileRepository {
	return &kvProfileRepository{store: store}
}

// readAll loads the profile list, treating missing or corrupt storage as an
// empty list so callers always get something to work with.
func (r *kvProfileRepository) readAll(ctx context.Context) []domain.UserProfile {
	data, err := r.store.Get(ctx, usersKey)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			logrus.Warnf("profile repo: reading %s: %v", usersKey, err)
		}
		return nil
	}
	var profiles []domain.UserProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		logrus.Warnf("profile repo: corrupt profile list, treating as empty: %v", err)
		return nil
	}
	return profiles
}

// writeAll persists the full profile list. Every mutation goes through
// here; there are no partial writes.
func (r *kvProfileRepository) writeAll(ctx context.Context, profiles []domain.UserProfile) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, usersKey, data)
}

func (r *kvProfileRepository) List(ctx context.Context) ([]domain.UserProfile, error) {
	return r.readAll(ctx), nil
}

func (r *kvProfileRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	for _, profile := range r.readAll(ctx) {
		if profile.ID == id {
			p := profile
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *kvProfileRepository) GetActive(ctx context.Context) (*domain.UserProfile, error) {
	data, err := r.store.Get(ctx, currentUserKey)
	if err != nil {
		return nil, repository.ErrNoActiveProfile
	}
	activeID := string(data)
	if activeID == "" {
		return nil, repository.ErrNoActiveProfile
	}
	for _, profile := range r.readAll(ctx) {
		if profile.ID == activeID {
			p := profile
			return &p, nil
		}
	}
	// Dangling pointer: the active profile was deleted out from under us.
	return nil, repository.ErrNoActiveProfile
}

func (r *kvProfileRepository) SetActive(ctx context.Context, id string) error {
	for _, profile := range r.readAll(ctx) {
		if profile.ID == id {
			return r.store.Set(ctx, currentUserKey, []byte(id))
		}
	}
	return repository.ErrNotFound
}

func (r *kvProfileRepository) Create(ctx context.Context, name, email string) (*domain.UserProfile, error) {
	profile := domain.UserProfile{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		CreatedAt:   time.Now().UTC(),
		Preferences: domain.DefaultPreferences(),
	}

	profiles := append(r.readAll(ctx), profile)
	if err := r.writeAll(ctx, profiles); err != nil {
		return nil, err
	}

	// The first profile ever created becomes active automatically.
	if len(profiles) == 1 {
		if err := r.store.Set(ctx, currentUserKey, []byte(profile.ID)); err != nil {
			return nil, err
		}
	}
	return &profile, nil
}

func (r *kvProfileRepository) Update(ctx context.Context, id string, update repository.ProfileUpdate) (*domain.UserProfile, error) {
	profiles := r.readAll(ctx)
	for i := range profiles {
		if profiles[i].ID != id {
			continue
		}
		if update.Name != nil {
			profiles[i].Name = *update.Name
		}
		if update.Email != nil {
			profiles[i].Email = *update.Email
		}
		if update.Preferences != nil {
			profiles[i].Preferences = *update.Preferences
		}
		if err := r.writeAll(ctx, profiles); err != nil {
			return nil, err
		}
		p := profiles[i]
		return &p, nil
	}
	return nil, repository.ErrNotFound
}

func (r *kvProfileRepository) Delete(ctx context.Context, id string) error {
	profiles := r.readAll(ctx)

	index := -1
	for i := range profiles {
		if profiles[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return repository.ErrNotFound
	}
	if len(profiles) == 1 {
		return repository.ErrLastProfile
	}

	remaining := append(profiles[:index:index], profiles[index+1:]...)
	if err := r.writeAll(ctx, remaining); err != nil {
		return err
	}

	if err := r.purgeData(ctx, id); err != nil {
		return err
	}

	// Reassign the active pointer if the deleted profile held it.
	activeData, err := r.store.Get(ctx, currentUserKey)
	if err == nil && string(activeData) == id {
		return r.store.Set(ctx, currentUserKey, []byte(remaining[0].ID))
	}
	return nil
}

// purgeData removes every key namespaced under the profile ID.
func (r *kvProfileRepository) purgeData(ctx context.Context, profileID string) error {
	keys, err := r.store.Keys(ctx, namespacePrefix(profileID))
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := r.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
