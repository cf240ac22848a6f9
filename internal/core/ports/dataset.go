package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=dataset.go -destination=mocks/mock_dataset.go -package=mocks

// DatasetManager creates and destroys cloned datasets.
type DatasetManager interface {
	// Clone creates target from snapshot and mounts it at mountpoint.
	// Cloning onto an existing target fails.
	Clone(ctx context.Context, snapshot, target, mountpoint string) error

	// Destroy removes the dataset and its snapshots.
	Destroy(ctx context.Context, dataset string) error
}

// Snapshotter creates and serialises snapshots.
type Snapshotter interface {
	// Snapshot creates dataset@name and returns the full snapshot reference.
	Snapshot(ctx context.Context, dataset, name string) (string, error)

	// SnapshotExists reports whether the snapshot is present. A missing
	// snapshot is not an error; a failure to query the pool is.
	SnapshotExists(ctx context.Context, snapshot string) (bool, error)

	// SendIncremental writes the incremental stream from base to snap into w.
	SendIncremental(ctx context.Context, w io.Writer, base, snap string) error
}
