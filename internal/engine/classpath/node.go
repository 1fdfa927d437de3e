package classpath

import (
	"context"

	"github.com/chiselbuild/chiselc/internal/adapters/logger"
	"github.com/chiselbuild/chiselc/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the Merger Graft node.
const NodeID graft.ID = "engine.classpath"

func init() {
	graft.Register(graft.Node[*Merger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Merger, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewMerger(log), nil
		},
	})
}
