package mount

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imgbuild/internal/adapters/shell"
	"go.trai.ch/imgbuild/internal/core/ports"
)

// NodeID is the unique identifier for the mounter Graft node.
const NodeID graft.ID = "adapter.mounter"

func init() {
	graft.Register(graft.Node[ports.Mounter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Mounter, error) {
			cmd, err := graft.Dep[ports.Commander](ctx)
			if err != nil {
				return nil, err
			}
			return New(cmd), nil
		},
	})
}
