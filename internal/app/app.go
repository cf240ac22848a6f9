// Package app implements the application layer for imgbuild.
package app

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builder      ports.Builder
	store        ports.BuildRecordStore
	logger       ports.Logger
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	builder ports.Builder,
	store ports.BuildRecordStore,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		builder:      builder,
		store:        store,
		logger:       log,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to timestamp build records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	ManifestPath string
	SourceDir    string
	ImageID      string
	Packages     string
	Verbose      bool
	JSON         bool
}

// Build validates the inputs, runs the build and records its outcome.
// The error of a failed build is returned unchanged.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	a.configureLogger(opts)

	// 1. Validate inputs before anything is provisioned
	packages, err := domain.ParsePackages(opts.Packages)
	if err != nil {
		return err
	}

	manifest, err := a.configLoader.LoadManifest(opts.ManifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	imageID, err := domain.CanonicalImageID(opts.ImageID)
	if err != nil {
		return err
	}

	cfg := domain.BuildConfig{
		SourceDir:   opts.SourceDir,
		BaseImageID: imageID,
		Manifest:    manifest,
		Packages:    packages,
		Verbose:     opts.Verbose,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 2. Run the build
	a.logger.Info(fmt.Sprintf("building %s from base image %s", manifest.Ref(), imageID))
	started := a.now()
	bc, buildErr := a.builder.Build(ctx, cfg)
	finished := a.now()

	// 3. Record the outcome
	if bc != nil {
		a.record(domain.NewBuildRecord(bc, buildErr, started, finished))
	}
	if buildErr != nil {
		return buildErr
	}

	a.logger.Info(fmt.Sprintf("built %s in %s", manifest.Ref(), finished.Sub(started).Round(time.Millisecond)))
	return nil
}

// Status returns the last recorded build of the image name and version.
func (a *App) Status(_ context.Context, name, version string) (*domain.BuildRecord, error) {
	rec, err := a.store.Latest(name, version)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, zerr.With(domain.ErrBuildRecordNotFound, "image", name+"@"+version)
	}
	return rec, nil
}

func (a *App) record(rec *domain.BuildRecord) {
	if err := a.store.Put(rec); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to record build %s: %v", rec.BuildID, err))
	}
}

func (a *App) configureLogger(opts BuildOptions) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.JSON)
	}
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(opts.Verbose)
	}
}
