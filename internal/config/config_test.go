package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Graphics defaults match the reference render mode
	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.MSAASamples != 4 {
		t.Errorf("expected 4 MSAA samples, got %d", cfg.Graphics.MSAASamples)
	}
	if !cfg.Graphics.Tonemapping {
		t.Error("expected tonemapping to be true by default")
	}
	if !cfg.Graphics.DepthFail {
		t.Error("expected the depth-fail convention by default")
	}
	if cfg.Graphics.Wireframe {
		t.Error("expected wireframe to be false by default")
	}

	// Scene defaults
	if cfg.Scene.NumCubes != 5 {
		t.Errorf("expected 5 cubes, got %d", cfg.Scene.NumCubes)
	}
	if cfg.Scene.NumLights != 1 {
		t.Errorf("expected 1 light, got %d", cfg.Scene.NumLights)
	}
	if cfg.Scene.ShadowMapResolution != 2048 {
		t.Errorf("expected shadow map resolution 2048, got %d", cfg.Scene.ShadowMapResolution)
	}
	if cfg.Scene.Spotlight {
		t.Error("expected the classic stencil pipeline by default")
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  msaa_samples: 8
  wireframe: true
  tonemapping: false
  depth_fail: false

scene:
  num_cubes: 10
  num_lights: 23
  seed: 42
  spotlight: true
  shadow_map_resolution: 1024
  animate: true

logging:
  level: "debug"
  log_file: "render.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.MSAASamples != 8 {
		t.Errorf("expected 8 MSAA samples, got %d", cfg.Graphics.MSAASamples)
	}
	if !cfg.Graphics.Wireframe {
		t.Error("expected wireframe to be true")
	}
	if cfg.Graphics.Tonemapping {
		t.Error("expected tonemapping to be false")
	}
	if cfg.Graphics.DepthFail {
		t.Error("expected the depth-pass convention")
	}

	if cfg.Scene.NumCubes != 10 {
		t.Errorf("expected 10 cubes, got %d", cfg.Scene.NumCubes)
	}
	if cfg.Scene.NumLights != 23 {
		t.Errorf("expected 23 lights, got %d", cfg.Scene.NumLights)
	}
	if cfg.Scene.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Scene.Seed)
	}
	if !cfg.Scene.Spotlight {
		t.Error("expected the spotlight pipeline")
	}
	if cfg.Scene.ShadowMapResolution != 1024 {
		t.Errorf("expected shadow map resolution 1024, got %d", cfg.Scene.ShadowMapResolution)
	}
	if !cfg.Scene.Animate {
		t.Error("expected animation to be enabled")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "render.log" {
		t.Errorf("expected log file 'render.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only override one section; everything else keeps defaults.
	yamlContent := `
scene:
  num_lights: 8
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Scene.NumLights != 8 {
		t.Errorf("expected 8 lights, got %d", cfg.Scene.NumLights)
	}
	if cfg.Scene.NumCubes != 5 {
		t.Errorf("expected default cube count to survive, got %d", cfg.Scene.NumCubes)
	}
	if cfg.Graphics.Width != 800 {
		t.Errorf("expected default width to survive, got %d", cfg.Graphics.Width)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1024
	cfg.Scene.NumLights = 12
	cfg.Scene.Seed = 7

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round-trip mismatch:\nsaved:  %+v\nloaded: %+v", *cfg, *loaded)
	}
}
