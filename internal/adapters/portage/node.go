package portage

import (
	"context"

	"github.com/chiselbuild/chiselc/internal/core/ports"
	"github.com/grindlemire/graft"
)

// FactoryNodeID is the unique identifier for the Factory Graft node.
const FactoryNodeID graft.ID = "adapter.portage.factory"

func init() {
	graft.Register(graft.Node[ports.PackageStoreFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PackageStoreFactory, error) {
			return NewFactory(), nil
		},
	})
}
