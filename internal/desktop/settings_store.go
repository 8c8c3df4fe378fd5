package desktop

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/bornholm/go-x/slogx"
	"github.com/kirsle/configdir"
	"github.com/pkg/errors"
)

// SettingsStore persists settings as a JSON document. Missing documents
// read as the defaults.
type SettingsStore[T any] struct {
	defaults T
	settings *T
	mutex    sync.RWMutex
	dir      string
}

func (s *SettingsStore[T]) Save(settings T) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.ensureDir(); err != nil {
		return errors.WithStack(err)
	}

	tmp := s.Path() + "-new"

	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(settings); err != nil {
		file.Close()
		return errors.WithStack(err)
	}

	if err := file.Close(); err != nil {
		return errors.WithStack(err)
	}

	if err := os.Rename(tmp, s.Path()); err != nil {
		return errors.Wrap(err, "could not overwrite settings")
	}

	s.settings = &settings

	return nil
}

// Get returns the loaded settings, reading them from disk on first call
// or when reload is true.
func (s *SettingsStore[T]) Get(reload bool) (T, error) {
	if !reload {
		s.mutex.RLock()
		if s.settings != nil {
			defer s.mutex.RUnlock()
			return *s.settings, nil
		}
		s.mutex.RUnlock()
	}

	return s.Reload()
}

func (s *SettingsStore[T]) Reload() (T, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	file, err := os.Open(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.settings = &s.defaults
			return s.defaults, nil
		}

		return s.defaults, errors.WithStack(err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("could not close settings file", slogx.Error(errors.WithStack(err)))
		}
	}()

	settings := s.defaults
	if err := json.NewDecoder(file).Decode(&settings); err != nil {
		return s.defaults, errors.Wrapf(err, "could not decode settings file '%s'", s.Path())
	}

	s.settings = &settings

	return settings, nil
}

// Exists reports whether a settings document was saved.
func (s *SettingsStore[T]) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

func (s *SettingsStore[T]) ensureDir() error {
	if err := configdir.MakePath(s.dir); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *SettingsStore[T]) Path() string {
	return filepath.Join(s.dir, "desktop.json")
}

// NewStore returns a store keeping its document in dir.
func NewStore[T any](dir string, defaults T) *SettingsStore[T] {
	return &SettingsStore[T]{
		defaults: defaults,
		dir:      dir,
	}
}
