package rsync

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imgbuild/internal/adapters/config"
	"go.trai.ch/imgbuild/internal/adapters/shell"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports"
)

// NodeID is the unique identifier for the file syncer Graft node.
const NodeID graft.ID = "adapter.file_syncer"

func init() {
	graft.Register(graft.Node[ports.FileSyncer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.FileSyncer, error) {
			cmd, err := graft.Dep[ports.Commander](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(cmd, settings.Commands.Rsync), nil
		},
	})
}
