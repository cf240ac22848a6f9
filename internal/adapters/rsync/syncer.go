// Package rsync synchronises directory trees with rsync.
package rsync

import (
	"context"
	"strings"

	"go.trai.ch/imgbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Syncer implements ports.FileSyncer.
type Syncer struct {
	cmd   ports.Commander
	rsync string
}

// New creates a Syncer invoking the given rsync binary.
func New(cmd ports.Commander, rsync string) *Syncer {
	return &Syncer{cmd: cmd, rsync: rsync}
}

// Sync copies the contents of src into dst in archive mode. Files already in
// dst that are absent from src are kept.
func (s *Syncer) Sync(ctx context.Context, src, dst string) error {
	if err := s.cmd.Run(ctx, s.rsync, "-a", withSlash(src), withSlash(dst)); err != nil {
		err = zerr.With(zerr.Wrap(err, "rsync failed"), "source", src)
		return zerr.With(err, "destination", dst)
	}
	return nil
}

// withSlash makes rsync copy the directory's contents rather than the directory.
func withSlash(dir string) string {
	if strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}
