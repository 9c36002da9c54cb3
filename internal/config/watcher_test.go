package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := SaveTo(Default(), path); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, testLogger())
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	cfg := Default()
	cfg.Render.MaxFPS = 30
	if err := SaveTo(cfg, path); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Reloads():
		if got.Render.MaxFPS != 30 {
			t.Errorf("reloaded maxFps = %v, want 30", got.Render.MaxFPS)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	w, err := Watch(path, testLogger())
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Reloads():
		t.Error("reload delivered for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	w, err := Watch(path, testLogger())
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
