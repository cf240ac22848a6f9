package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imgbuild/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/imgbuild/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/imgbuild/internal/adapters/imgadm"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/imgbuild/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/imgbuild/internal/adapters/mount"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/imgbuild/internal/adapters/pkgsrc"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/imgbuild/internal/adapters/rsync"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/imgbuild/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/imgbuild/internal/adapters/zfs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			imgadm.ResolverNodeID,
			imgadm.AssemblerNodeID,
			zfs.NodeID,
			mount.NodeID,
			pkgsrc.NodeID,
			rsync.NodeID,
			fs.RemoverNodeID,
			config.SettingsNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Pipeline, error) {
	resolver, err := graft.Dep[ports.ImageResolver](ctx)
	if err != nil {
		return nil, err
	}

	assembler, err := graft.Dep[ports.ImageAssembler](ctx)
	if err != nil {
		return nil, err
	}

	datasets, err := graft.Dep[*zfs.Datasets](ctx)
	if err != nil {
		return nil, err
	}

	mounter, err := graft.Dep[ports.Mounter](ctx)
	if err != nil {
		return nil, err
	}

	packages, err := graft.Dep[ports.PackageManager](ctx)
	if err != nil {
		return nil, err
	}

	syncer, err := graft.Dep[ports.FileSyncer](ctx)
	if err != nil {
		return nil, err
	}

	remover, err := graft.Dep[ports.DirRemover](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(Collaborators{
		Resolver:  resolver,
		Datasets:  datasets,
		Mounter:   mounter,
		Packages:  packages,
		Syncer:    syncer,
		Assembler: assembler,
		Remover:   remover,
	}, settings, log, tracer), nil
}
