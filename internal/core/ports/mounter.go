package ports

import "context"

// Mounter attaches and detaches read-only bind mounts.
//
//go:generate mockgen -source=mounter.go -destination=mocks/mock_mounter.go -package=mocks
type Mounter interface {
	// Mount creates target if needed and binds source onto it read-only.
	Mount(ctx context.Context, source, target string) error

	// Unmount detaches target.
	Unmount(ctx context.Context, target string) error
}
