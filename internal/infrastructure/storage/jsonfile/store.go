// Package jsonfile implements the collection store: one JSON array file per
// collection under a data directory, replaced atomically on every write.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Outcome tags the result of a Read so callers (and tests) can tell a fresh
// empty collection from a corrupt file that fell back to the default.
type Outcome int

const (
	Found Outcome = iota
	Absent
	Corrupt
)

// Store reads and writes named JSON collections rooted at a data directory.
//
// Writes are atomic: content goes to a uniquely-named temp file in the same
// directory, then a rename replaces the target, so a concurrent reader or a
// crash mid-write observes either the fully-old or fully-new file. Read and
// Write on their own are not mutually exclusive; multi-step
// read-check-write sequences must run inside Mutate, which serializes
// writers per collection name.
type Store struct {
	dir string
	log zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{
		dir:   dir,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Read unmarshals the collection into v. On Absent or Corrupt outcomes v is
// left untouched, so callers pre-fill it with their default value. Corrupt
// files are logged and treated as empty; nothing is overwritten until the
// next successful Write.
func (s *Store) Read(name string, v any) (Outcome, error) {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Absent, nil
		}
		return Absent, fmt.Errorf("read collection %s: %w", name, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		s.log.Warn().Err(err).Str("collection", name).Msg("corrupt collection file, using default")
		return Corrupt, nil
	}
	return Found, nil
}

// Write replaces the collection file with the serialized form of v as a
// single indivisible step.
func (s *Store) Write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", name, err)
	}
	data = append(data, '\n')

	target := s.path(name)
	tmp := fmt.Sprintf("%s.%s.tmp", target, uuid.NewString())

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write temp file for %s: %w", name, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync temp file for %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file for %s: %w", name, err)
	}

	// The rename is the sole mutation of the target path.
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace collection %s: %w", name, err)
	}
	return nil
}

// Mutate runs fn while holding the collection's write lock, serializing
// read-modify-write sequences so concurrent mutations cannot both pass a
// uniqueness scan against the same pre-mutation state.
func (s *Store) Mutate(name string, fn func() error) error {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()
	return fn()
}

func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
