// Package journal persists the summary of the last release run.
package journal

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.Journal using a JSON file.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

var _ ports.Journal = (*Store)(nil)

// Load reads the record at path. A missing or empty file yields nil, nil.
func (s *Store) Load(path string) (*domain.RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrJournalReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrJournalReadFailed.Error()), "path", path)
	}
	return &record, nil
}

// Save replaces the record at path, writing through a temporary file.
func (s *Store) Save(path string, record domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = filepath.Clean(path)
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal run journal")
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrJournalWriteFailed.Error()), "path", path)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrJournalWriteFailed.Error()), "path", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrJournalWriteFailed.Error()), "path", path)
	}
	return nil
}
