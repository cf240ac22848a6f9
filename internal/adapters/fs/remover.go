// Package fs provides local filesystem adapters.
package fs

import (
	"os"

	"go.trai.ch/zerr"
)

// Remover implements ports.DirRemover.
type Remover struct{}

// NewRemover creates a new Remover.
func NewRemover() *Remover {
	return &Remover{}
}

// Remove deletes dir, which must be empty. A missing directory is an error,
// since the caller only removes directories it believes exist.
func (r *Remover) Remove(dir string) error {
	if err := os.Remove(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "rmdir failed"), "dir", dir)
	}
	return nil
}
