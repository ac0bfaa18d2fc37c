package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/arbor/internal/watcher"
)

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	// Create temp manifest dir with one manifest
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "pages.yaml")
	err := os.WriteFile(manifestPath, []byte("kind: page"), 0644)
	require.NoError(t, err, "failed to create test file")

	// Create watcher with short debounce
	w, err := watcher.New(watcher.Config{
		Dir:         dir,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Rapid writes should coalesce into single notification
	for i := 0; i < 10; i++ {
		err := os.WriteFile(manifestPath, []byte(fmt.Sprintf("kind: page # %d", i)), 0644)
		require.NoError(t, err, "failed to write file")
		time.Sleep(10 * time.Millisecond)
	}

	// Should receive exactly one notification
	select {
	case <-onChange:
		// Expected
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected notification but got timeout")
	}

	// No second notification should come quickly
	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
		// Expected - no second notification
	}
}

func TestWatcher_IgnoresIrrelevantFiles(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "pages.yaml")
	otherPath := filepath.Join(dir, "notes.txt")
	err := os.WriteFile(manifestPath, []byte("kind: page"), 0644)
	require.NoError(t, err, "failed to create manifest file")
	// Pre-create the other file so writes to it are just Write events
	err = os.WriteFile(otherPath, []byte("initial"), 0644)
	require.NoError(t, err, "failed to create other file")

	w, err := watcher.New(watcher.Config{
		Dir:         dir,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Write to unrelated file (not Create, since it already exists)
	err = os.WriteFile(otherPath, []byte("other content"), 0644)
	require.NoError(t, err, "failed to write other file")

	select {
	case <-onChange:
		t.Fatal("should not notify for non-manifest files")
	case <-time.After(100 * time.Millisecond):
		// Expected - no notification for unrelated file
	}
}

func TestWatcher_NotifiesOnRemove(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "pages.yml")
	err := os.WriteFile(manifestPath, []byte("kind: page"), 0644)
	require.NoError(t, err, "failed to create manifest file")

	w, err := watcher.New(watcher.Config{
		Dir:         dir,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Deleting a manifest should trigger a reload
	err = os.Remove(manifestPath)
	require.NoError(t, err, "failed to remove manifest")

	select {
	case <-onChange:
		// Expected - removed manifests change the catalog
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected notification for manifest removal")
	}
}

func TestWatcher_WatchesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	subDir := filepath.Join(dir, "pages")
	require.NoError(t, os.MkdirAll(subDir, 0755), "failed to create subdirectory")

	w, err := watcher.New(watcher.Config{
		Dir:         dir,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Write inside the subdirectory should trigger notification
	err = os.WriteFile(filepath.Join(subDir, "home.yaml"), []byte("kind: page"), 0644)
	require.NoError(t, err, "failed to write manifest in subdirectory")

	select {
	case <-onChange:
		// Expected - subdirectory writes should trigger notification
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected notification for subdirectory manifest write")
	}
}

func TestWatcher_PicksUpNewSubdirectories(t *testing.T) {
	dir := t.TempDir()

	w, err := watcher.New(watcher.Config{
		Dir:         dir,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Create a subdirectory after the watch started
	subDir := filepath.Join(dir, "actions")
	require.NoError(t, os.MkdirAll(subDir, 0755), "failed to create subdirectory")

	// Give the watcher time to register the new directory
	time.Sleep(100 * time.Millisecond)

	err = os.WriteFile(filepath.Join(subDir, "logout.yaml"), []byte("kind: action"), 0644)
	require.NoError(t, err, "failed to write manifest in new subdirectory")

	select {
	case <-onChange:
		// Expected - the new directory joined the watch
	case <-time.After(300 * time.Millisecond):
		t.Fatal("expected notification for manifest in new subdirectory")
	}
}

func TestWatcher_Stop(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "pages.yaml")
	err := os.WriteFile(manifestPath, []byte("kind: page"), 0644)
	require.NoError(t, err, "failed to create test file")

	w, err := watcher.New(watcher.Config{
		Dir:         dir,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")

	_, err = w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Stop should not hang or panic
	done := make(chan struct{})
	go func() {
		err := w.Stop()
		assert.NoError(t, err, "Stop returned error")
		close(done)
	}()

	select {
	case <-done:
		// Expected - stop completed successfully
	case <-time.After(1 * time.Second):
		t.Fatal("Stop() timed out - possible deadlock")
	}
}

func TestDefaultConfig(t *testing.T) {
	dir := "/test/manifests"
	cfg := watcher.DefaultConfig(dir)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, 1*time.Second, cfg.DebounceDur)
}
