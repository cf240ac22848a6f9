// Package cas implements the build record store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BuildRecordStore using a file-per-image strategy.
type Store struct {
	dir string
}

// NewStore creates a store keeping records under dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Latest retrieves the last record for the image, or nil when none exists.
func (s *Store) Latest(name, version string) (*domain.BuildRecord, error) {
	filename := s.filename(name, version)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var rec domain.BuildRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}
	return &rec, nil
}

// Put stores the record, replacing the previous one for the same image.
func (s *Store) Put(rec *domain.BuildRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "dir", s.dir)
	}

	filename := s.filename(rec.Name, rec.Version)
	tmp, err := os.CreateTemp(s.dir, ".record-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	return nil
}

func (s *Store) filename(name, version string) string {
	key := domain.Manifest{Name: name, Version: version}.Ref()
	return filepath.Join(s.dir, strconv.FormatUint(xxhash.Sum64String(key), 16)+".json")
}
