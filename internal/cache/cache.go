// Package cache persists resolved TLS library versions between runs.
//
// The generator normally asks the network for the newest OpenSSL and
// LibreSSL releases on every invocation. On shared runners or while
// iterating locally that is wasteful, so the cache stores each successful
// resolution in a small BoltDB database keyed by marker. Entries older
// than the configured maximum age are ignored on read, and failure
// sentinels are never written, so a transient outage cannot poison
// later runs.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const (
	// dbName is the database file created inside the cache directory.
	dbName = "resolutions.db"

	// bucketName is the BoltDB bucket holding resolution entries.
	bucketName = "resolutions"
)

// Store is a persistent marker-to-version store backed by BoltDB.
type Store struct {
	db     *bbolt.DB
	maxAge time.Duration
}

// Open opens (creating if necessary) the resolution database under dir.
// Entries older than maxAge are treated as misses; a maxAge of zero
// disables expiry.
func Open(dir string, maxAge time.Duration) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache directory is required")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbName)
	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache bucket: %w", err)
	}

	return &Store{
		db:     db,
		maxAge: maxAge,
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}

	return nil
}

// Get returns the cached version for a marker. Missing, expired, or
// unreadable entries all report a miss; the caller falls back to the
// network either way.
func (s *Store) Get(marker string) (string, bool) {
	var entry Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		data := b.Get([]byte(marker))
		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &entry)
	})
	if err != nil || entry.Value == "" {
		return "", false
	}

	if s.maxAge > 0 && time.Since(entry.FetchedAt) > s.maxAge {
		return "", false
	}

	return entry.Value, true
}

// Put stores a resolved version for a marker, stamping it with the
// current time.
func (s *Store) Put(marker, value string) error {
	entry := Entry{
		Marker:    marker,
		Value:     value,
		FetchedAt: time.Now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		return b.Put([]byte(marker), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}

	return nil
}
