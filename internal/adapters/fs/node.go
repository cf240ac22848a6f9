package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imgbuild/internal/core/ports"
)

// RemoverNodeID is the unique identifier for the directory remover Graft node.
const RemoverNodeID graft.ID = "adapter.dir_remover"

func init() {
	graft.Register(graft.Node[ports.DirRemover]{
		ID:        RemoverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DirRemover, error) {
			return NewRemover(), nil
		},
	})
}
