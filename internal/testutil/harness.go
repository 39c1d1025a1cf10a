// Package testutil provides shared fixtures and test doubles for the hurlfmt
// packages.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/hurlfmt/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
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

// WriteFiles creates files under a fresh temporary directory and returns the
// directory. Names are slash separated paths relative to it.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// HarnessResult holds the observable effects of a pipeline run.
type HarnessResult struct {
	Outcome   app.Outcome
	Stdout    string
	Stderr    string
	LogOutput string
}

// RunPipeline runs the production pipeline for cfg with stdin as standard
// input and captures everything it prints.
func RunPipeline(t *testing.T, cfg app.Config, stdin string) *HarnessResult {
	t.Helper()

	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	config, err := app.NewConfig(cfg)
	require.NoError(t, err)

	stdout, stderr, logs := &SafeBuffer{}, &SafeBuffer{}, &SafeBuffer{}
	deps := app.DefaultDeps(strings.NewReader(stdin), stdout, stderr, config.Color)
	outcome := app.New(config, deps, logs).Run(context.Background())

	if os.Getenv("HURLFMT_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Outcome:   outcome,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		LogOutput: logs.String(),
	}
}
