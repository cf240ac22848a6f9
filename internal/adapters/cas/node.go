package cas

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/imgbuild/internal/adapters/config"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports"
)

// NodeID is the unique identifier for the build record store Graft node.
const NodeID graft.ID = "adapter.build_record_store"

func init() {
	graft.Register(graft.Node[ports.BuildRecordStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.BuildRecordStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(filepath.Join(settings.StateDir, domain.RecordsDirName)), nil
		},
	})
}
