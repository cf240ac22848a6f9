// Package imgadm resolves base images and assembles image artifacts the way
// the SmartOS image tooling lays them out.
package imgadm

import (
	"context"
	"path"

	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.ImageResolver.
type Resolver struct {
	cmd           ports.Commander
	snapshots     ports.Snapshotter
	imgadm        string
	pool          string
	importMissing bool
}

// NewResolver creates a Resolver looking for images in the settings' pool.
func NewResolver(cmd ports.Commander, snapshots ports.Snapshotter, settings *domain.Settings) *Resolver {
	return &Resolver{
		cmd:           cmd,
		snapshots:     snapshots,
		imgadm:        settings.Commands.Imgadm,
		pool:          settings.Pool,
		importMissing: settings.ImportMissing,
	}
}

// Resolve returns the pool and final snapshot of the image, importing it first
// when it is missing and imports are enabled.
func (r *Resolver) Resolve(ctx context.Context, id string) (domain.BaseImage, error) {
	img := domain.BaseImage{
		ID:       id,
		Pool:     r.pool,
		Snapshot: path.Join(r.pool, id) + "@" + domain.FinalSnapshotName,
	}

	present, err := r.snapshots.SnapshotExists(ctx, img.Snapshot)
	if err != nil {
		return domain.BaseImage{}, err
	}
	if present {
		return img, nil
	}
	if !r.importMissing {
		return domain.BaseImage{}, zerr.With(domain.ErrSnapshotNotFound, "snapshot", img.Snapshot)
	}

	if err := r.cmd.Run(ctx, r.imgadm, "import", "-q", "-P", r.pool, id); err != nil {
		return domain.BaseImage{}, zerr.With(zerr.Wrap(err, "imgadm import failed"), "image", id)
	}
	present, err = r.snapshots.SnapshotExists(ctx, img.Snapshot)
	if err != nil {
		return domain.BaseImage{}, err
	}
	if !present {
		return domain.BaseImage{}, zerr.With(domain.ErrSnapshotNotFound, "snapshot", img.Snapshot)
	}
	return img, nil
}
