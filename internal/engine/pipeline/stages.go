package pipeline

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func (p *Pipeline) ensureBaseImage(ctx context.Context, bc *domain.BuildContext) error {
	img, err := p.c.Resolver.Resolve(ctx, bc.Config.BaseImageID)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBaseImageNotFound.Error()), "image", bc.Config.BaseImageID)
	}

	bc.Pool = img.Pool
	bc.BaseSnapshot = img.Snapshot
	p.logger.Debug(fmt.Sprintf("using base snapshot %s", img.Snapshot))
	return nil
}

func (p *Pipeline) createZoneAnalog(ctx context.Context, bc *domain.BuildContext) error {
	buildID := p.newID()
	target := path.Join(bc.Pool, buildID)
	mountPoint := filepath.Join(p.settings.WorkDir, buildID)

	if err := p.c.Datasets.Clone(ctx, bc.BaseSnapshot, target, mountPoint); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCloneFailed.Error()), "dataset", target)
	}

	bc.BuildID = buildID
	bc.TargetDataset = target
	bc.MountPoint = mountPoint
	bc.DatasetExists = true
	bc.MountdirExists = true
	p.logger.Info(fmt.Sprintf("created zone analog %s at %s", target, mountPoint))
	return nil
}

func (p *Pipeline) installFiles(ctx context.Context, bc *domain.BuildContext) error {
	root := chrootRoot(bc)
	err := p.c.Syncer.Sync(ctx, bc.Config.SourceDir, root)
	if err == nil {
		p.logger.Info(fmt.Sprintf("installed files from %s", bc.Config.SourceDir))
		return nil
	}

	err = zerr.With(zerr.Wrap(err, domain.ErrSyncFailed.Error()), "source", bc.Config.SourceDir)
	if p.settings.StrictSync {
		return err
	}
	p.logger.Warn(fmt.Sprintf("file sync reported errors, continuing: %v", err))
	return nil
}

func (p *Pipeline) setupChroot(ctx context.Context, bc *domain.BuildContext) error {
	root := chrootRoot(bc)
	dirs := p.settings.ChrootDirs

	mounted, err := FanOut(ctx, dirs, func(ctx context.Context, dir string) error {
		return p.c.Mounter.Mount(ctx, dir, filepath.Join(root, dir))
	})
	for _, dir := range mounted {
		bc.MarkMounted(dir)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMountFailed.Error()), "root", root)
	}

	bc.ChrootIsMounted = true
	p.logger.Debug(fmt.Sprintf("mounted %s under %s", strings.Join(dirs, ", "), root))
	return nil
}

func (p *Pipeline) installPackages(ctx context.Context, bc *domain.BuildContext) error {
	pkgs := bc.Config.Packages
	if len(pkgs) == 0 {
		p.logger.Debug("no packages to install")
		return nil
	}

	if err := p.c.Packages.Install(ctx, chrootRoot(bc), pkgs); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageInstallFailed.Error()), "packages", strings.Join(pkgs, ","))
	}
	p.logger.Info(fmt.Sprintf("installed %d packages", len(pkgs)))
	return nil
}

func (p *Pipeline) loadPackages(ctx context.Context, bc *domain.BuildContext) error {
	pkgs, err := p.c.Packages.List(ctx, chrootRoot(bc))
	if err != nil {
		return zerr.Wrap(err, domain.ErrPackageListFailed.Error())
	}

	slices.SortFunc(pkgs, func(a, b domain.Package) int {
		return strings.Compare(a.Name, b.Name)
	})
	bc.InstalledPackages = pkgs

	p.logger.Info(fmt.Sprintf("image contains %d packages", len(pkgs)))
	if bc.Config.Verbose {
		for _, pkg := range pkgs {
			p.logger.Info("  " + pkg.String())
		}
	}
	return nil
}

func (p *Pipeline) unsetupChroot(ctx context.Context, bc *domain.BuildContext) error {
	if err := p.unmountAll(ctx, bc); err != nil {
		return zerr.Wrap(err, domain.ErrUnmountFailed.Error())
	}
	return nil
}

func (p *Pipeline) cleanupZoneAnalog(context.Context, *domain.BuildContext) error {
	return nil
}

func (p *Pipeline) createImage(ctx context.Context, bc *domain.BuildContext) error {
	req := domain.AssembleRequest{
		BuildID:  bc.BuildID,
		Dataset:  bc.TargetDataset,
		Manifest: bc.Config.Manifest,
		Zone: domain.ZoneDescriptor{
			UUID:    bc.BuildID,
			State:   domain.ZoneStateInstalled,
			Dataset: bc.TargetDataset,
			Pool:    bc.Pool,
		},
		Base: domain.BaseImage{
			ID:       bc.Config.BaseImageID,
			Pool:     bc.Pool,
			Snapshot: bc.BaseSnapshot,
		},
		OutputDir: p.settings.OutputDir,
	}

	art, err := p.c.Assembler.Assemble(ctx, req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrImageCreateFailed.Error()), "image", bc.Config.Manifest.Ref())
	}

	bc.Artifact = art
	p.logger.Info(fmt.Sprintf("created image %s at %s", bc.Config.Manifest.Ref(), art.FilePath))
	return nil
}

func (p *Pipeline) destroyZoneAnalog(ctx context.Context, bc *domain.BuildContext) error {
	if err := p.c.Datasets.Destroy(ctx, bc.TargetDataset); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatasetDestroyFailed.Error()), "dataset", bc.TargetDataset)
	}
	bc.DatasetExists = false
	return nil
}

func (p *Pipeline) destroyMountDir(_ context.Context, bc *domain.BuildContext) error {
	if err := p.c.Remover.Remove(bc.MountPoint); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMountDirRemoveFailed.Error()), "dir", bc.MountPoint)
	}
	bc.MountdirExists = false
	return nil
}

// unmountAll releases every directory recorded as mounted and clears the
// record of each one that was released.
func (p *Pipeline) unmountAll(ctx context.Context, bc *domain.BuildContext) error {
	root := chrootRoot(bc)
	released, err := FanOut(ctx, bc.MountedDirs(), func(ctx context.Context, dir string) error {
		return p.c.Mounter.Unmount(ctx, filepath.Join(root, dir))
	})
	for _, dir := range released {
		bc.MarkUnmounted(dir)
	}
	if err != nil {
		return zerr.With(err, "root", root)
	}
	bc.ChrootIsMounted = false
	return nil
}

// chrootRoot is the root of the zone analog's filesystem.
func chrootRoot(bc *domain.BuildContext) string {
	return filepath.Join(bc.MountPoint, chrootRootDir)
}
