package imgadm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imgbuild/internal/adapters/config"
	"go.trai.ch/imgbuild/internal/adapters/shell"
	"go.trai.ch/imgbuild/internal/adapters/zfs"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the base image resolver Graft node.
	ResolverNodeID graft.ID = "adapter.image_resolver"
	// AssemblerNodeID is the unique identifier for the image assembler Graft node.
	AssemblerNodeID graft.ID = "adapter.image_assembler"
)

func init() {
	graft.Register(graft.Node[ports.ImageResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, zfs.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ImageResolver, error) {
			cmd, err := graft.Dep[ports.Commander](ctx)
			if err != nil {
				return nil, err
			}
			datasets, err := graft.Dep[*zfs.Datasets](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(cmd, datasets, settings), nil
		},
	})

	graft.Register(graft.Node[ports.ImageAssembler]{
		ID:        AssemblerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{zfs.NodeID},
		Run: func(ctx context.Context) (ports.ImageAssembler, error) {
			datasets, err := graft.Dep[*zfs.Datasets](ctx)
			if err != nil {
				return nil, err
			}
			return NewAssembler(datasets), nil
		},
	})
}
