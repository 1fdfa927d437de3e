// Package shell provides the external process runner adapter.
package shell

import (
	"context"
	"os/exec"
	"strings"

	"github.com/chiselbuild/chiselc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command and blocks until it exits. Stdout and stderr are
// streamed line by line through the logger. A nonzero exit is returned with
// the command name and exit code attached.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // command is assembled by the pipeline
	cmd.Dir = dir
	cmd.Stdout = &logWriter{logger: r.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		ferr := zerr.Wrap(err, "command exited with nonzero status")
		ferr = zerr.With(ferr, "command", name)
		return zerr.With(ferr, "exit_code", exitCode)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

// Write splits output into lines and forwards them to the logger. Partial
// lines at buffer boundaries are forwarded as-is.
func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
