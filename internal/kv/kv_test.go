package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
	}
}

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "alpha", []byte(`{"a":1}`)))

			value, err := store.Get(ctx, "alpha")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":1}`), value)

			// Overwrite replaces the previous value.
			require.NoError(t, store.Set(ctx, "alpha", []byte(`{"a":2}`)))
			value, err = store.Get(ctx, "alpha")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":2}`), value)
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "nope")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "alpha", []byte("x")))
			require.NoError(t, store.Delete(ctx, "alpha"))

			_, err := store.Get(ctx, "alpha")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			// Deleting an absent key is not an error.
			assert.NoError(t, store.Delete(ctx, "alpha"))
		})
	}
}

func TestStore_KeysPrefix(t *testing.T) {
	ctx := context.Background()
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "p1_workouts", []byte("[]")))
			require.NoError(t, store.Set(ctx, "p1_templates", []byte("[]")))
			require.NoError(t, store.Set(ctx, "p2_workouts", []byte("[]")))

			keys, err := store.Keys(ctx, "p1_")
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"p1_workouts", "p1_templates"}, keys)

			keys, err = store.Keys(ctx, "nope_")
			require.NoError(t, err)
			assert.Empty(t, keys)
		})
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", original))
	original[0] = 'z'

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)

	// Mutating what Get returned must not touch the stored value either.
	value[0] = 'q'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "trackhq_users", []byte(`[]`)))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	value, err := reopened.Get(ctx, "trackhq_users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)
}
