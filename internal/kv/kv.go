package kv

import "context"

// ErrKeyNotFound distinguishes an absent key from a backend failure.
var ErrKeyNotFound = StoreError("key not found")

// StoreError helps distinguish storage layer errors.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// Store is a flat key-value store holding JSON-encoded values. It is the
// persistence seam of the whole application: repositories are constructed
// with an injected Store, so tests run against the in-memory backend while
// production uses the file or MongoDB one.
type Store interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the value for key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns every stored key starting with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
