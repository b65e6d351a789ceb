package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

var bucketFindings = []byte("findings")

// CacheStore remembers the findings of previously scanned file contents.
type CacheStore interface {
	Lookup(key string) ([]m.Finding, bool, error)
	Store(key string, findings []m.Finding) error
	Close() error
}

// BoltCacheStore keeps cached findings in a bbolt database.
type BoltCacheStore struct {
	db *bbolt.DB
}

// OpenBoltCacheStore opens (or creates) the cache database at path.
func OpenBoltCacheStore(path m.Path) (*BoltCacheStore, error) {
	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := bbolt.Open(string(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketFindings); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketFindings, err)
		}

		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltCacheStore{db: db}, nil
}

// Lookup returns the findings cached under key.
func (s *BoltCacheStore) Lookup(key string) ([]m.Finding, bool, error) {
	var (
		findings []m.Finding
		found    bool
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketFindings).Get([]byte(key))
		if data == nil {
			return nil
		}

		found = true

		return json.Unmarshal(data, &findings)
	})
	if err != nil {
		return nil, false, fmt.Errorf("cache lookup: %w", err)
	}

	if findings == nil {
		findings = []m.Finding{}
	}

	return findings, found, nil
}

// Store records findings under key, replacing any earlier entry.
func (s *BoltCacheStore) Store(key string, findings []m.Finding) error {
	data, err := json.Marshal(findings)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFindings).Put([]byte(key), data)
	})
}

// Close releases the database file lock.
func (s *BoltCacheStore) Close() error {
	return s.db.Close()
}

type noopCacheStore struct{}

// NewNoopCacheStore returns a CacheStore that never hits.
func NewNoopCacheStore() CacheStore {
	return noopCacheStore{}
}

func (noopCacheStore) Lookup(string) ([]m.Finding, bool, error) { return nil, false, nil }
func (noopCacheStore) Store(string, []m.Finding) error          { return nil }
func (noopCacheStore) Close() error                             { return nil }
