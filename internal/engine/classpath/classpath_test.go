package classpath_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/chiselbuild/chiselc/internal/engine/classpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures info messages so tests can count override
// diagnostics.
type recordingLogger struct {
	infos []string
}

func (l *recordingLogger) Debug(string)    {}
func (l *recordingLogger) Info(msg string) { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warn(string)     {}
func (l *recordingLogger) Error(error)     {}

func TestMerge_CallerOverridesMatchingBase(t *testing.T) {
	log := &recordingLogger{}
	m := classpath.NewMerger(log)

	merged, err := m.Merge(
		[]string{"/pkg/a.jar", "/pkg/b.jar"},
		[]string{"./override/a.jar"},
	)
	require.NoError(t, err)

	absA, err := filepath.Abs("./override/a.jar")
	require.NoError(t, err)
	assert.Equal(t, []string{"/pkg/b.jar", absA}, merged)

	require.Len(t, log.infos, 1)
	assert.True(t, strings.Contains(log.infos[0], "/pkg/a.jar"), "diagnostic should name the dropped entry: %s", log.infos[0])
}

func TestMerge_NoOverrides(t *testing.T) {
	m := classpath.NewMerger(&recordingLogger{})

	merged, err := m.Merge([]string{"/pkg/a.jar", "/pkg/b.jar"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/pkg/a.jar", "/pkg/b.jar"}, merged)
}

func TestMerge_OnlyCallerEntries(t *testing.T) {
	m := classpath.NewMerger(&recordingLogger{})

	merged, err := m.Merge(nil, []string{"x.jar"})
	require.NoError(t, err)

	absX, err := filepath.Abs("x.jar")
	require.NoError(t, err)
	assert.Equal(t, []string{absX}, merged)
}

func TestMerge_Empty(t *testing.T) {
	m := classpath.NewMerger(&recordingLogger{})

	merged, err := m.Merge(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, merged)
}

func TestMerge_OrderPreserved(t *testing.T) {
	log := &recordingLogger{}
	m := classpath.NewMerger(log)

	merged, err := m.Merge(
		[]string{"/pkg/a.jar", "/pkg/b.jar", "/pkg/c.jar"},
		[]string{"/caller/b.jar", "/caller/d.jar"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"/pkg/a.jar", "/pkg/c.jar", "/caller/b.jar", "/caller/d.jar"}, merged)
	assert.Len(t, log.infos, 1)
}
