package ports

import "context"

// ProcessRunner runs an external command to completion, blocking until its
// exit code is observed.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Run executes name with args in dir (the current directory when dir is
	// empty). A nonzero exit is returned as an error carrying the command
	// name and exit code.
	Run(ctx context.Context, dir, name string, args ...string) error
}
