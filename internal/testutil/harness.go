package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/componeer/internal/app"
	"github.com/specialistvlad/componeer/internal/catalog"
)

// DocumentFile is the file name the harness passes as the document.
const DocumentFile = "index.html"

// ManifestDir is the directory the harness passes as the manifest path.
const ManifestDir = "manifests"

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

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Dir    string
	Output string
	Err    error
	App    *app.App
}

// WriteFiles writes files, keyed by slash-separated relative path, under a
// fresh temporary directory and returns it.
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

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, modules ...catalog.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, nil, modules...)
}

// RunIntegrationTestWithContext writes files, builds an App reading
// ManifestDir and DocumentFile from them and runs it with ctx. configure, if
// given, adjusts the app config before the app is built.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, configure func(*app.Config), modules ...catalog.Module) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)
	cfg := &app.Config{
		ManifestPath: filepath.Join(dir, ManifestDir),
		DocumentPath: filepath.Join(dir, DocumentFile),
		LogLevel:     "debug",
		LogFormat:    "text",
	}
	if configure != nil {
		configure(cfg)
	}

	out := &SafeBuffer{}
	result := &HarnessResult{Dir: dir}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		result.App, result.Err = app.NewApp(out, cfg, nil, modules...)
	}()

	if result.Err == nil {
		result.Err = result.App.Run(ctx)
	}

	if os.Getenv("COMPONEER_TEST_LOGS") == "true" {
		t.Logf("--- Full Output for %s ---\n%s", t.Name(), out.String())
	}
	result.Output = out.String()
	return result
}
