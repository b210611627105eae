package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func openTestStore(t *testing.T, maxAge time.Duration) *Store {
	t.Helper()

	store, err := Open(t.TempDir(), maxAge)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

// injectEntry writes an entry directly, bypassing Put's timestamping.
func injectEntry(t *testing.T, store *Store, entry Entry) {
	t.Helper()

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	err = store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(entry.Marker), data)
	})
	require.NoError(t, err)
}

func TestOpen_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir, time.Hour)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, filepath.Join(dir, dbName))
}

func TestOpen_CreatesNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	store, err := Open(dir, time.Hour)
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpen_RequiresDirectory(t *testing.T) {
	_, err := Open("", time.Hour)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache directory is required")
}

func TestStore_PutGet(t *testing.T) {
	store := openTestStore(t, time.Hour)

	err := store.Put("OPENSSL_VERSION=latest", "OPENSSL_VERSION=3.2.0")
	require.NoError(t, err)

	got, ok := store.Get("OPENSSL_VERSION=latest")

	assert.True(t, ok)
	assert.Equal(t, "OPENSSL_VERSION=3.2.0", got)
}

func TestStore_GetMissingMarker(t *testing.T) {
	store := openTestStore(t, time.Hour)

	got, ok := store.Get("LIBRESSL_VERSION=latest")

	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestStore_GetExpiredEntry(t *testing.T) {
	store := openTestStore(t, time.Hour)

	injectEntry(t, store, Entry{
		Marker:    "OPENSSL_VERSION=latest",
		Value:     "OPENSSL_VERSION=3.2.0",
		FetchedAt: time.Now().Add(-2 * time.Hour),
	})

	_, ok := store.Get("OPENSSL_VERSION=latest")

	assert.False(t, ok)
}

func TestStore_ZeroMaxAgeDisablesExpiry(t *testing.T) {
	store := openTestStore(t, 0)

	injectEntry(t, store, Entry{
		Marker:    "OPENSSL_VERSION=latest",
		Value:     "OPENSSL_VERSION=3.2.0",
		FetchedAt: time.Now().Add(-365 * 24 * time.Hour),
	})

	got, ok := store.Get("OPENSSL_VERSION=latest")

	assert.True(t, ok)
	assert.Equal(t, "OPENSSL_VERSION=3.2.0", got)
}

func TestStore_CorruptEntryIsMiss(t *testing.T) {
	store := openTestStore(t, time.Hour)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte("OPENSSL_VERSION=latest"), []byte("not json"))
	})
	require.NoError(t, err)

	_, ok := store.Get("OPENSSL_VERSION=latest")

	assert.False(t, ok)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir, time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Put("LIBRESSL_VERSION=latest", "LIBRESSL_VERSION=3.8.2"))
	require.NoError(t, store.Close())

	reopened, err := Open(dir, time.Hour)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.Get("LIBRESSL_VERSION=latest")

	assert.True(t, ok)
	assert.Equal(t, "LIBRESSL_VERSION=3.8.2", got)
}

func TestStore_PutOverwrites(t *testing.T) {
	store := openTestStore(t, time.Hour)

	require.NoError(t, store.Put("OPENSSL_VERSION=latest", "OPENSSL_VERSION=3.1.0"))
	require.NoError(t, store.Put("OPENSSL_VERSION=latest", "OPENSSL_VERSION=3.2.0"))

	got, ok := store.Get("OPENSSL_VERSION=latest")

	assert.True(t, ok)
	assert.Equal(t, "OPENSSL_VERSION=3.2.0", got)
}
