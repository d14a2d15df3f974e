package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/componeer/internal/watcher"
)

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(docPath, []byte("<p>"), 0644))

	w, err := watcher.New(watcher.Config{
		Paths:       []string{docPath},
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Rapid writes should coalesce into single notification
	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(docPath, []byte(fmt.Sprintf("<p>%d", i)), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_IgnoresIrrelevantFiles(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "index.html")
	otherPath := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(docPath, []byte("<p>"), 0644))
	require.NoError(t, os.WriteFile(otherPath, []byte("initial"), 0644))

	w, err := watcher.New(watcher.Config{
		Paths:       []string{docPath},
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(otherPath, []byte("other content"), 0644))

	select {
	case <-onChange:
		t.Fatal("should not notify for unrelated files")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_Stop(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(docPath, []byte("<p>"), 0644))

	w, err := watcher.New(watcher.DefaultConfig(docPath))
	require.NoError(t, err)

	_, err = w.Start()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		assert.NoError(t, w.Stop(), "Stop returned error")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop() timed out - possible deadlock")
	}
}

func TestNew_RequiresPaths(t *testing.T) {
	_, err := watcher.New(watcher.Config{})
	assert.Error(t, err)
}
