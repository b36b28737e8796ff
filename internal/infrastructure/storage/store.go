package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store reads and writes whole JSON documents inside a single data
// directory. Loading is tolerant: a missing or corrupt file is logged and
// the destination is left empty, so a fresh install starts with empty
// collections instead of an error. Saving overwrites the whole file via a
// temp file and rename, so a crashed save never truncates the document.
type Store struct {
	dir string
	log *logrus.Logger
}

func NewStore(dir string, log *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Load decodes the named document into v. Missing and malformed files are
// absorbed: v keeps its zero value and a diagnostic is logged.
func (s *Store) Load(name string, v interface{}) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Warnf("File %s not found, starting empty", name)
			return nil
		}
		s.log.Warnf("Failed to read %s, starting empty: %+v", name, err)
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warnf("File %s is corrupt or invalid, starting empty: %+v", name, err)
		return nil
	}
	return nil
}

// Save overwrites the named document with the encoding of v. The write
// goes to a uniquely named temp file first and is renamed into place so a
// failed save leaves the previous document intact.
func (s *Store) Save(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	txID := uuid.NewString()
	tmp := filepath.Join(s.dir, fmt.Sprintf(".%s.%s.tmp", name, txID))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", name, err)
	}

	s.log.WithFields(logrus.Fields{"file": name, "tx": txID, "bytes": len(data)}).
		Debug("Document saved")
	return nil
}
