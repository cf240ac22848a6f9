// Package zfs drives dataset operations through the zfs command line tool.
package zfs

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.trai.ch/imgbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	stderrKey       = "stderr"
	notExistMessage = "dataset does not exist"
)

// Datasets implements ports.DatasetManager.
type Datasets struct {
	cmd ports.Commander
	zfs string
}

// New creates a Datasets adapter invoking the given zfs binary.
func New(cmd ports.Commander, zfs string) *Datasets {
	return &Datasets{cmd: cmd, zfs: zfs}
}

// Clone creates target from snapshot, mounted at mountpoint.
func (d *Datasets) Clone(ctx context.Context, snapshot, target, mountpoint string) error {
	err := d.cmd.Run(ctx, d.zfs, "clone", "-o", "mountpoint="+mountpoint, snapshot, target)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "zfs clone failed"), "snapshot", snapshot)
		return zerr.With(err, "dataset", target)
	}
	return nil
}

// Destroy removes the dataset recursively.
func (d *Datasets) Destroy(ctx context.Context, dataset string) error {
	if err := d.cmd.Run(ctx, d.zfs, "destroy", "-r", dataset); err != nil {
		return zerr.With(zerr.Wrap(err, "zfs destroy failed"), "dataset", dataset)
	}
	return nil
}

// Snapshot creates dataset@name.
func (d *Datasets) Snapshot(ctx context.Context, dataset, name string) (string, error) {
	snap := dataset + "@" + name
	if err := d.cmd.Run(ctx, d.zfs, "snapshot", snap); err != nil {
		return "", zerr.With(zerr.Wrap(err, "zfs snapshot failed"), "snapshot", snap)
	}
	return snap, nil
}

// SnapshotExists reports whether the snapshot is present in the pool.
// Only a "does not exist" answer from zfs counts as absent.
func (d *Datasets) SnapshotExists(ctx context.Context, snapshot string) (bool, error) {
	out, err := d.cmd.Output(ctx, d.zfs, "list", "-H", "-o", "name", "-t", "snapshot", snapshot)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "zfs list failed"), "snapshot", snapshot)
	}
	return strings.TrimSpace(string(out)) == snapshot, nil
}

// isNotExist reports whether zfs rejected the name because the dataset is absent.
func isNotExist(err error) bool {
	for err != nil {
		var z *zerr.Error
		if !errors.As(err, &z) {
			return false
		}
		if stderr, ok := z.Metadata()[stderrKey].(string); ok && strings.Contains(stderr, notExistMessage) {
			return true
		}
		err = z.Unwrap()
	}
	return false
}

// SendIncremental writes the incremental stream from base to snap into w.
func (d *Datasets) SendIncremental(ctx context.Context, w io.Writer, base, snap string) error {
	if err := d.cmd.Stream(ctx, w, d.zfs, "send", "-i", base, snap); err != nil {
		err = zerr.With(zerr.Wrap(err, "zfs send failed"), "from", base)
		return zerr.With(err, "to", snap)
	}
	return nil
}
