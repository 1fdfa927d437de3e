package pipeline

import (
	"context"

	"github.com/chiselbuild/chiselc/internal/adapters/fs"
	"github.com/chiselbuild/chiselc/internal/adapters/logger"
	"github.com/chiselbuild/chiselc/internal/adapters/shell"
	"github.com/chiselbuild/chiselc/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the Pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.RunnerNodeID,
			fs.WalkerNodeID,
			fs.CopierNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[ports.SourceWalker](ctx)
			if err != nil {
				return nil, err
			}
			copier, err := graft.Dep[ports.TreeCopier](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, walker, copier, log), nil
		},
	})
}
