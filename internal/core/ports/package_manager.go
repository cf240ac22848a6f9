package ports

import (
	"context"

	"go.trai.ch/imgbuild/internal/core/domain"
)

// PackageManager installs and lists packages inside a chroot.
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Install installs all packages in a single invocation.
	Install(ctx context.Context, root string, packages []string) error

	// List returns the packages currently present under root.
	List(ctx context.Context, root string) ([]domain.Package, error)
}
