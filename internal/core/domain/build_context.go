package domain

import "slices"

// BuildContext is the state of one build. It is owned by the pipeline runner
// for the lifetime of the build and is never shared between builds.
type BuildContext struct {
	Config BuildConfig

	// Derived fields, each set once by the stage computing it.
	BuildID       string
	Pool          string
	BaseSnapshot  string
	MountPoint    string
	TargetDataset string

	InstalledPackages []Package
	Artifact          *ImageArtifact
	FailedStage       string

	// Resource-existence flags. A flag is true iff the resource is believed to exist.
	DatasetExists   bool
	MountdirExists  bool
	ChrootIsMounted bool

	mounted map[string]struct{}
}

// NewBuildContext returns a fresh context for cfg with every flag cleared.
func NewBuildContext(cfg BuildConfig) *BuildContext {
	return &BuildContext{
		Config:  cfg,
		mounted: make(map[string]struct{}),
	}
}

// MarkMounted records that dir is bind-mounted under the chroot.
func (bc *BuildContext) MarkMounted(dir string) {
	if bc.mounted == nil {
		bc.mounted = make(map[string]struct{})
	}
	bc.mounted[dir] = struct{}{}
}

// MarkUnmounted records that dir is no longer mounted. The aggregate flag is
// cleared as soon as any directory is released.
func (bc *BuildContext) MarkUnmounted(dir string) {
	delete(bc.mounted, dir)
	bc.ChrootIsMounted = false
}

// IsMounted reports whether dir is recorded as mounted.
func (bc *BuildContext) IsMounted(dir string) bool {
	_, ok := bc.mounted[dir]
	return ok
}

// MountedDirs returns the mounted directories in lexical order.
func (bc *BuildContext) MountedDirs() []string {
	dirs := make([]string, 0, len(bc.mounted))
	for dir := range bc.mounted {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)
	return dirs
}

// HasResources reports whether any resource is still recorded as existing.
func (bc *BuildContext) HasResources() bool {
	return bc.DatasetExists || bc.MountdirExists || bc.ChrootIsMounted || len(bc.mounted) > 0
}
