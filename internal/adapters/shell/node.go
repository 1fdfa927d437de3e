package shell

import (
	"context"

	"github.com/chiselbuild/chiselc/internal/adapters/logger"
	"github.com/chiselbuild/chiselc/internal/core/ports"
	"github.com/grindlemire/graft"
)

// RunnerNodeID is the unique identifier for the Runner Graft node.
const RunnerNodeID graft.ID = "adapter.shell.runner"

func init() {
	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProcessRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
