// Package testutil provides shared helpers for exercising the app against
// real files on disk.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/slnkit/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	// Dir is the temporary directory the files were materialized into.
	Dir string
	// Output is what the app wrote to its output writer.
	Output string
	// LogOutput is the captured log stream.
	LogOutput string
	// Err is the error returned by App.Run.
	Err error
}

// WriteFiles materializes the given filename->contents map into a fresh
// temporary directory and returns its path. Nested paths are created.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	}
	return dir
}

// RunApp materializes files, lets the caller finalize the config against the
// temp dir, and runs the app to completion.
func RunApp(t *testing.T, files map[string]string, configure func(dir string) app.Config) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)

	cfg, err := app.NewConfig(configure(dir))
	require.NoError(t, err)

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	application := app.NewApp(out, logs, cfg)
	runErr := application.Run(context.Background())

	return &HarnessResult{
		Dir:       dir,
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
	}
}
