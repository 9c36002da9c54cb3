package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Canvas.Width != 64 || cfg.Canvas.Height != 64 {
		t.Errorf("default canvas = %dx%d, want 64x64", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Render.MaxFPS != 320 {
		t.Errorf("default maxFps = %v, want 320", cfg.Render.MaxFPS)
	}
	if !cfg.Render.FPSLimit {
		t.Error("fps limit should default on")
	}
	if !cfg.UI.ShowStatusBar {
		t.Error("status bar should default on")
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := &Config{
		Canvas: CanvasConfig{Width: -5, Height: 9999},
		Render: RenderConfig{MaxFPS: -1},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Canvas.Width != 64 || cfg.Canvas.Height != 64 {
		t.Errorf("canvas after clamp = %dx%d, want 64x64", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Render.MaxFPS != 320 {
		t.Errorf("maxFps after clamp = %v, want 320", cfg.Render.MaxFPS)
	}

	cfg.Render.MaxFPS = 5000
	_ = cfg.Validate()
	if cfg.Render.MaxFPS != 1000 {
		t.Errorf("maxFps ceiling = %v, want 1000", cfg.Render.MaxFPS)
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Canvas.Width != 64 {
		t.Error("missing config file should yield defaults")
	}
}

func TestLoadFromPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"render":{"maxFps":60,"fpsLimit":true}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Render.MaxFPS != 60 {
		t.Errorf("maxFps = %v, want 60", cfg.Render.MaxFPS)
	}
	if cfg.Canvas.Width != 64 {
		t.Error("unset canvas width should keep default")
	}
}

func TestLoadFromBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("malformed config should error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Render.MaxFPS = 120
	cfg.Canvas.Width = 32

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.Render.MaxFPS != 120 || got.Canvas.Width != 32 {
		t.Errorf("round trip = %+v", got)
	}
}
