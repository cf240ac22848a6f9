//go:build linux

package mount

import (
	"context"

	"golang.org/x/sys/unix"
)

func (m *Mounter) bind(_ context.Context, source, target string) error {
	if err := unix.Mount(source, target, "", unix.MS_BIND|unix.MS_REC, ""); err != nil {
		return err
	}
	// Read-only needs a second pass; the kernel ignores MS_RDONLY on the initial bind.
	flags := uintptr(unix.MS_BIND | unix.MS_REMOUNT | unix.MS_RDONLY)
	if err := unix.Mount("", target, "", flags, ""); err != nil {
		_ = unix.Unmount(target, 0)
		return err
	}
	return nil
}

func (m *Mounter) unbind(_ context.Context, target string) error {
	return unix.Unmount(target, 0)
}
