package ports

import "context"

//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks

// FileSyncer mirrors a directory tree with archive semantics.
type FileSyncer interface {
	// Sync copies the contents of src into dst, preserving permissions and timestamps.
	Sync(ctx context.Context, src, dst string) error
}

// DirRemover removes an empty directory.
type DirRemover interface {
	Remove(dir string) error
}
