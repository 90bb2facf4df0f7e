package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// ErrCorrupt marks a collection file that exists but cannot be read or
// decoded. A missing file is not corrupt: it reads as an empty collection.
var ErrCorrupt = errors.New("corrupt collection file")

// Store persists whole collections as JSON files under a single directory.
// Every collection is loaded and saved as a unit; saves replace the file
// atomically via a temp file and rename. A per-collection mutex serializes
// read-modify-write cycles within the process.
type Store struct {
	dir string
	log zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates the data directory if needed and returns a Store rooted there.
func New(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{
		dir:   dir,
		log:   log.With().Str("component", "store").Logger(),
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Lock acquires the single-writer lock for a collection and returns the
// unlock function. Callers hold it across a full load-mutate-save cycle.
func (s *Store) Lock(name string) func() {
	s.mu.Lock()
	m, ok := s.locks[name]
	if !ok {
		m = &sync.Mutex{}
		s.locks[name] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// Load decodes the named collection into dst. If the file does not exist,
// dst is left untouched and Load returns nil. Any other failure wraps
// ErrCorrupt so callers can distinguish "empty" from "unreadable".
func (s *Store) Load(name string, dst any) error {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		s.log.Error().Err(err).Str("collection", name).Msg("Collection unreadable")
		return fmt.Errorf("%w: read %s: %v", ErrCorrupt, name, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Error().Err(err).Str("collection", name).Msg("Collection undecodable")
		return fmt.Errorf("%w: decode %s: %v", ErrCorrupt, name, err)
	}
	return nil
}

// Save replaces the named collection on disk with records.
func (s *Store) Save(name string, records any) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		s.log.Error().Err(err).Str("collection", name).Msg("Save failed")
		return fmt.Errorf("save %s: %w", name, err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		s.log.Error().Err(err).Str("collection", name).Msg("Save failed")
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		s.log.Error().Err(err).Str("collection", name).Msg("Save failed")
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
