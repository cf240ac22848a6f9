// Package mount attaches the read-only bind mounts that make up a chroot.
package mount

import (
	"context"
	"os"

	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Mounter implements ports.Mounter. Each call is independent, so a Mounter
// may be used from several goroutines at once.
type Mounter struct {
	cmd ports.Commander
}

// New creates a Mounter. The commander runs mount(8) on platforms where the
// bind mount is not issued as a system call.
func New(cmd ports.Commander) *Mounter {
	return &Mounter{cmd: cmd}
}

// Mount creates target and binds source onto it read-only.
func (m *Mounter) Mount(ctx context.Context, source, target string) error {
	if err := os.MkdirAll(target, domain.MountDirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to prepare mount target"), "target", target)
	}
	if err := m.bind(ctx, source, target); err != nil {
		err = zerr.With(zerr.Wrap(err, "bind mount failed"), "source", source)
		return zerr.With(err, "target", target)
	}
	return nil
}

// Unmount detaches target.
func (m *Mounter) Unmount(ctx context.Context, target string) error {
	if err := m.unbind(ctx, target); err != nil {
		return zerr.With(zerr.Wrap(err, "unmount failed"), "target", target)
	}
	return nil
}
