package state

import (
	"context"

	"github.com/chiselbuild/chiselc/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the Store Graft node.
const NodeID graft.ID = "adapter.state.store"

func init() {
	graft.Register(graft.Node[ports.BuildStateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.BuildStateStore, error) {
			return NewStore(), nil
		},
	})
}
