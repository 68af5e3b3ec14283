package prefsfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"codediffdemo/internal/domain"
	"codediffdemo/internal/ports/output"
)

var _ output.PreferenceStore = (*Store)(nil)

// Store keeps preferences as string values of a TOML document. Entries of
// other types are ignored on read and preserved on write.
type Store struct {
	mu     sync.Mutex
	path   string
	rename func(oldpath, newpath string) error
}

func NewStore(path string) *Store {
	return &Store{path: path, rename: os.Rename}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, domain.ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := prefs[key].(string)
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	if key == "" {
		return domain.ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return err
	}
	prefs[key] = value
	return s.save(prefs)
}

func (s *Store) Delete(_ context.Context, key string) error {
	if key == "" {
		return domain.ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := prefs[key]; !ok {
		return nil
	}
	delete(prefs, key)
	return s.save(prefs)
}

// load returns an empty document when the file does not exist yet.
func (s *Store) load() (map[string]any, error) {
	prefs := map[string]any{}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences %s: %w", s.path, err)
	}
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parse preferences %s: %w", s.path, err)
	}
	return prefs, nil
}

func (s *Store) save(prefs map[string]any) error {
	data, err := toml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp preferences %s: %w", tmp, err)
	}
	if err := s.rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace preferences %s: %w", s.path, err)
	}
	return nil
}
