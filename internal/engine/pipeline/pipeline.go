// Package pipeline sequences the build stages and releases acquired resources on failure.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports"
)

// Stage names in execution order.
const (
	StageEnsureBaseImage   = "ensure-base-image"
	StageCreateZoneAnalog  = "create-zone-analog"
	StageInstallFiles      = "install-files"
	StageSetupChroot       = "setup-chroot"
	StageInstallPackages   = "install-packages"
	StageLoadPackages      = "load-packages"
	StageUnsetupChroot     = "unsetup-chroot"
	StageCleanupZoneAnalog = "cleanup-zone-analog"
	StageCreateImage       = "create-image"
	StageDestroyZoneAnalog = "destroy-zone-analog"
	StageDestroyMountDir   = "destroy-mount-dir"
)

const (
	chrootRootDir        = "root"
	buildSpanName        = "build"
	stageSpanPrefix      = "stage."
	compensateSpanPrefix = "compensate."
)

// Span attributes.
const (
	attrBuildID     = "imgbuild.build_id"
	attrFailedStage = "imgbuild.failed_stage"
	attrImage       = "imgbuild.image"
	attrDataset     = "imgbuild.dataset"
	attrMountPoint  = "imgbuild.mountpoint"
	attrSkipped     = "imgbuild.skipped"
	attrWarnings    = "imgbuild.warnings"
)

// Stage is one step of the forward pipeline.
type Stage struct {
	Name string
	Run  func(ctx context.Context, bc *domain.BuildContext) error
}

// Collaborators groups the external systems the stages drive.
type Collaborators struct {
	Resolver  ports.ImageResolver
	Datasets  ports.DatasetManager
	Mounter   ports.Mounter
	Packages  ports.PackageManager
	Syncer    ports.FileSyncer
	Assembler ports.ImageAssembler
	Remover   ports.DirRemover
}

// Pipeline runs the forward stages of a build and compensates on failure.
type Pipeline struct {
	c        Collaborators
	settings domain.Settings
	logger   ports.Logger
	tracer   ports.Tracer
	newID    func() string
}

// New creates a Pipeline with the given collaborators and settings.
func New(c Collaborators, settings *domain.Settings, logger ports.Logger, tracer ports.Tracer) *Pipeline {
	return &Pipeline{
		c:        c,
		settings: *settings,
		logger:   logger,
		tracer:   tracer,
		newID:    uuid.NewString,
	}
}

// WithIDGenerator replaces the generator of build-instance identifiers.
func (p *Pipeline) WithIDGenerator(fn func() string) *Pipeline {
	p.newID = fn
	return p
}

// Stages returns the forward stages in execution order.
func (p *Pipeline) Stages() []Stage {
	return []Stage{
		{Name: StageEnsureBaseImage, Run: p.ensureBaseImage},
		{Name: StageCreateZoneAnalog, Run: p.createZoneAnalog},
		{Name: StageInstallFiles, Run: p.installFiles},
		{Name: StageSetupChroot, Run: p.setupChroot},
		{Name: StageInstallPackages, Run: p.installPackages},
		{Name: StageLoadPackages, Run: p.loadPackages},
		{Name: StageUnsetupChroot, Run: p.unsetupChroot},
		{Name: StageCleanupZoneAnalog, Run: p.cleanupZoneAnalog},
		{Name: StageCreateImage, Run: p.createImage},
		{Name: StageDestroyZoneAnalog, Run: p.destroyZoneAnalog},
		{Name: StageDestroyMountDir, Run: p.destroyMountDir},
	}
}

// Build runs every stage against a fresh context for cfg. On the first stage
// failure the remaining stages are skipped, the acquired resources are
// released and the stage's error is returned.
func (p *Pipeline) Build(ctx context.Context, cfg domain.BuildConfig) (*domain.BuildContext, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bc := domain.NewBuildContext(cfg)

	ctx, span := p.tracer.Start(ctx, buildSpanName)
	defer span.End()
	span.SetAttribute(attrImage, cfg.Manifest.Ref())

	err := p.run(ctx, bc, p.Stages())
	if bc.BuildID != "" {
		span.SetAttribute(attrBuildID, bc.BuildID)
		span.SetAttribute(attrDataset, bc.TargetDataset)
		span.SetAttribute(attrMountPoint, bc.MountPoint)
	}
	if err != nil {
		span.RecordError(err)
		span.SetAttribute(attrFailedStage, bc.FailedStage)
		warnings := p.Compensate(ctx, bc)
		span.SetAttribute(attrWarnings, len(warnings))
		return bc, err
	}
	return bc, nil
}

func (p *Pipeline) run(ctx context.Context, bc *domain.BuildContext, stages []Stage) error {
	for _, st := range stages {
		if err := p.runStage(ctx, bc, st); err != nil {
			bc.FailedStage = st.Name
			return err
		}
	}
	return nil
}

func (p *Pipeline) runStage(ctx context.Context, bc *domain.BuildContext, st Stage) error {
	ctx, span := p.tracer.Start(ctx, stageSpanPrefix+st.Name)
	defer span.End()

	if err := st.Run(ctx, bc); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
