// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/chiselbuild/chiselc/internal/adapters/config"
	_ "github.com/chiselbuild/chiselc/internal/adapters/fs"
	_ "github.com/chiselbuild/chiselc/internal/adapters/logger"
	_ "github.com/chiselbuild/chiselc/internal/adapters/portage"
	_ "github.com/chiselbuild/chiselc/internal/adapters/shell"
	_ "github.com/chiselbuild/chiselc/internal/adapters/state"
	// Register app and engine nodes.
	_ "github.com/chiselbuild/chiselc/internal/app"
	_ "github.com/chiselbuild/chiselc/internal/engine/classpath"
	_ "github.com/chiselbuild/chiselc/internal/engine/pipeline"
	_ "github.com/chiselbuild/chiselc/internal/engine/resolver"
)
