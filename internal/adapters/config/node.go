package config

import (
	"context"

	"github.com/chiselbuild/chiselc/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the ConfigLoader Graft node.
const NodeID graft.ID = "adapter.config.loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})
}
