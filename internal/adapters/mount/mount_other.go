//go:build !linux

package mount

import "context"

// bind uses a loopback mount, the bind mount equivalent on illumos.
func (m *Mounter) bind(ctx context.Context, source, target string) error {
	return m.cmd.Run(ctx, "mount", "-F", "lofs", "-o", "ro", source, target)
}

func (m *Mounter) unbind(ctx context.Context, target string) error {
	return m.cmd.Run(ctx, "umount", target)
}
