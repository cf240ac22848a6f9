package pipeline

import (
	"context"
	"fmt"

	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Compensation step names in execution order.
const (
	CompensateUnmount        = "unmount-chroot"
	CompensateDestroyDataset = "destroy-dataset"
	CompensateRemoveMountDir = "remove-mount-dir"
)

type compensation struct {
	name    string
	applies func(bc *domain.BuildContext) bool
	release func(ctx context.Context, bc *domain.BuildContext) error
}

func (p *Pipeline) compensations() []compensation {
	return []compensation{
		{
			name:    CompensateUnmount,
			applies: func(bc *domain.BuildContext) bool { return bc.ChrootIsMounted || len(bc.MountedDirs()) > 0 },
			release: p.unmountAll,
		},
		{
			name:    CompensateDestroyDataset,
			applies: func(bc *domain.BuildContext) bool { return bc.DatasetExists },
			release: func(ctx context.Context, bc *domain.BuildContext) error {
				if err := p.c.Datasets.Destroy(ctx, bc.TargetDataset); err != nil {
					return zerr.With(err, "dataset", bc.TargetDataset)
				}
				bc.DatasetExists = false
				return nil
			},
		},
		{
			name:    CompensateRemoveMountDir,
			applies: func(bc *domain.BuildContext) bool { return bc.MountdirExists },
			release: func(_ context.Context, bc *domain.BuildContext) error {
				if err := p.c.Remover.Remove(bc.MountPoint); err != nil {
					return zerr.With(err, "dir", bc.MountPoint)
				}
				bc.MountdirExists = false
				return nil
			},
		},
	}
}

// Compensate releases, in reverse acquisition order, every resource bc records
// as existing. Every applicable step is attempted regardless of earlier
// failures. Failures are logged as warnings and returned for inspection only.
func (p *Pipeline) Compensate(ctx context.Context, bc *domain.BuildContext) []error {
	var warnings []error
	for _, step := range p.compensations() {
		if err := p.runCompensation(ctx, bc, step); err != nil {
			warnings = append(warnings, err)
			p.logger.Warn(fmt.Sprintf("cleanup step %s failed: %v", step.name, err))
		}
	}
	if len(warnings) > 0 {
		p.logger.Warn(fmt.Sprintf("cleanup finished with %d warnings, resources may need manual removal", len(warnings)))
	}
	return warnings
}

func (p *Pipeline) runCompensation(ctx context.Context, bc *domain.BuildContext, step compensation) error {
	ctx, span := p.tracer.Start(ctx, compensateSpanPrefix+step.name)
	defer span.End()

	if !step.applies(bc) {
		span.SetAttribute(attrSkipped, true)
		return nil
	}

	p.logger.Debug(fmt.Sprintf("cleanup: %s", step.name))
	if err := step.release(ctx, bc); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
