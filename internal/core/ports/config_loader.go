package ports

import "github.com/chiselbuild/chiselc/internal/core/domain"

// ConfigLoader loads a build file into a BuildConfig.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the build file at path. A missing file is not an error;
	// it returns (nil, nil) so flag-only invocations work.
	Load(path string) (*domain.BuildConfig, error)
}
