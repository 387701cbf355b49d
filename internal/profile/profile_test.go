package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFileIsNotFound(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "user_data.json"))
	_, err := store.LoadName()
	require.ErrorIs(t, err, ErrNotFound)

	name, err := LoadOrDefault(store, "Lakshman")
	require.NoError(t, err)
	require.Equal(t, "Lakshman", name)
}

func TestFileStoreRoundTripUsesNameField(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "user_data.json")
	store := NewFileStore(path)

	require.NoError(t, store.SaveName("राम"))
	name, err := store.LoadName()
	require.NoError(t, err)
	require.Equal(t, "राम", name)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"राम"}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreReadsExistingDeviceFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "user_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Sita", "extra": 1}`), 0o600))

	name, err := NewFileStore(path).LoadName()
	require.NoError(t, err)
	require.Equal(t, "Sita", name)
}

func TestFileStoreCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "user_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0o600))

	store := NewFileStore(path)
	_, err := store.LoadName()
	require.ErrorContains(t, err, "decode profile")

	name, err := LoadOrDefault(store, "Lakshman")
	require.Error(t, err)
	require.Equal(t, "Lakshman", name)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.db")
	store, err := OpenSQLite(path)
	require.NoError(t, err)

	_, err = store.LoadName()
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.SaveName("Ravi"))
	require.NoError(t, store.SaveName("Meera"))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	name, err := reopened.LoadName()
	require.NoError(t, err)
	require.Equal(t, "Meera", name)
}
