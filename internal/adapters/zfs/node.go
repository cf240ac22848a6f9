package zfs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imgbuild/internal/adapters/config"
	"go.trai.ch/imgbuild/internal/adapters/shell"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports"
)

// NodeID is the unique identifier for the zfs Graft node.
const NodeID graft.ID = "adapter.zfs"

func init() {
	graft.Register(graft.Node[*Datasets]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (*Datasets, error) {
			cmd, err := graft.Dep[ports.Commander](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(cmd, settings.Commands.ZFS), nil
		},
	})
}
