// Package testutil provides shared helpers for end-to-end tests: a
// thread-safe log capture buffer and a harness that runs the app over
// fixture plan files.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/taskrank/internal/app"
	"github.com/vk/taskrank/internal/hcl"
	"github.com/vk/taskrank/internal/yaml"
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

// HarnessResult holds the outcomes of an app test run.
type HarnessResult struct {
	Stdout    string
	LogOutput string
	Err       error
}

// RunAppTest writes the given plan files into a temporary directory, points
// a fully wired app at it, and runs the requested view. Keys of files are
// paths relative to the plan directory, so nested names create
// subdirectories.
func RunAppTest(t *testing.T, files map[string]string, view, output string) *HarnessResult {
	t.Helper()

	planDir := filepath.Join(t.TempDir(), "plan")
	require.NoError(t, os.Mkdir(planDir, 0755))

	for name, content := range files {
		path := filepath.Join(planDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	cfg, err := app.NewConfig(app.Config{
		PlanPath:  planDir,
		View:      view,
		Output:    output,
		LogLevel:  "debug",
		LogFormat: "text",
	})
	require.NoError(t, err)

	var stdout bytes.Buffer
	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(&stdout, logBuffer, cfg, hcl.NewLoader(), yaml.NewLoader())

	runErr := testApp.Run(context.Background())

	if os.Getenv("TASKRANK_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Stdout:    stdout.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
	}
}
