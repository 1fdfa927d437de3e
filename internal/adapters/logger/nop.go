package logger

import "github.com/chiselbuild/chiselc/internal/core/ports"

// Nop returns a Logger that discards everything. Useful in tests.
func Nop() ports.Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(error)  {}
