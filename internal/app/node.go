package app

import (
	"context"

	"github.com/chiselbuild/chiselc/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"github.com/chiselbuild/chiselc/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"github.com/chiselbuild/chiselc/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/chiselbuild/chiselc/internal/adapters/portage" //nolint:depguard // Wired in app layer
	"github.com/chiselbuild/chiselc/internal/adapters/state"   //nolint:depguard // Wired in app layer
	"github.com/chiselbuild/chiselc/internal/core/ports"
	"github.com/chiselbuild/chiselc/internal/engine/classpath"
	"github.com/chiselbuild/chiselc/internal/engine/pipeline"
	"github.com/chiselbuild/chiselc/internal/engine/resolver"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the top-level objects main needs after wiring.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			portage.FactoryNodeID,
			resolver.NodeID,
			classpath.NodeID,
			pipeline.NodeID,
			fs.WalkerNodeID,
			fs.FingerprinterNodeID,
			state.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	stores, err := graft.Dep[ports.PackageStoreFactory](ctx)
	if err != nil {
		return nil, err
	}
	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	merger, err := graft.Dep[*classpath.Merger](ctx)
	if err != nil {
		return nil, err
	}
	pipe, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}
	walker, err := graft.Dep[ports.SourceWalker](ctx)
	if err != nil {
		return nil, err
	}
	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}
	stateStore, err := graft.Dep[ports.BuildStateStore](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, stores, res, merger, pipe, walker, fingerprinter, stateStore, log), nil
}
