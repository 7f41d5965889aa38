package kvrepo

import (
	"context"
	"encoding/json"
	"errors"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/kv"
	"trackhq/trackhq-server/internal/repository"

	"github.com/sirupsen/logrus"
)

// kvCredentialRepository implements repository.CredentialRepository over
// the global credential list key.
type kvCredentialRepository struct {
	store kv.Store
}

// NewCredentialRepository creates a credential repository over the given
// store.
func NewCredentialRepository(store kv.Store) repository.CredentialRepository {
	return &kvCredentialRepository{store: store}
}

func (r *kvCredentialRepository) readAll(ctx context.Context) []domain.Credential {
	data, err := r.store.Get(ctx, authListKey)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			logrus.Warnf("credential repo: reading %s: %v", authListKey, err)
		}
		return nil
	}
	var credentials []domain.Credential
	if err := json.Unmarshal(data, &credentials); err != nil {
		logrus.Warnf("credential repo: corrupt credential list, treating as empty: %v", err)
		return nil
	}
	return credentials
}

func (r *kvCredentialRepository) writeAll(ctx context.Context, credentials []domain.Credential) error {
	data, err := json.Marshal(credentials)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, authListKey, data)
}

func (r *kvCredentialRepository) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	for _, credential := range r.readAll(ctx) {
		if credential.Email == email {
			c := credential
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *kvCredentialRepository) Create(ctx context.Context, credential domain.Credential) error {
	return r.writeAll(ctx, append(r.readAll(ctx), credential))
}

func (r *kvCredentialRepository) DeleteByProfileID(ctx context.Context, profileID string) error {
	credentials := r.readAll(ctx)
	filtered := credentials[:0]
	for _, credential := range credentials {
		if credential.ProfileID != profileID {
			filtered = append(filtered, credential)
		}
	}
	return r.writeAll(ctx, filtered)
}
