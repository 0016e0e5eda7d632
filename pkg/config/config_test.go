package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/renderer"
)

func TestLoadConfig_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	data := []byte(`
scene: earth
seed: 99
camera:
  samples_per_pixel: 16
assets:
  earth_texture: textures/earth.png
  noise: value
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Scene != "earth" || cfg.Seed != 99 {
		t.Errorf("Scene/Seed = %q/%d, want earth/99", cfg.Scene, cfg.Seed)
	}
	if cfg.Camera.SamplesPerPixel != 16 {
		t.Errorf("SamplesPerPixel = %d, want 16", cfg.Camera.SamplesPerPixel)
	}
	if cfg.Assets.EarthTexture != "textures/earth.png" || cfg.Assets.Noise != "value" {
		t.Errorf("Assets = %+v", cfg.Assets)
	}
	if cfg.Output != defaults.Output || cfg.LogLevel != defaults.LogLevel {
		t.Errorf("Unset keys should keep defaults, got output=%q log=%q", cfg.Output, cfg.LogLevel)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err == nil {
		t.Error("Expected error for a missing file")
	}
	if cfg == nil || cfg.Scene != DefaultConfig().Scene {
		t.Error("Missing file should still return defaults")
	}

	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "scene: [unclosed"},
		{"unknown key", "scnee: quads\n"},
		{"wrong type", "workers: many\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("Expected parse error")
			}
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Scene = "quads"
	cfg.Workers = 3
	cfg.Camera.MaxDepth = 7

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}

	if err := SaveConfig(cfg, filepath.Join(t.TempDir(), "missing", "out.yaml")); err == nil {
		t.Error("Expected error writing into a missing directory")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"empty scene", func(c *Config) { c.Scene = "" }, false},
		{"empty output", func(c *Config) { c.Output = "" }, false},
		{"negative workers", func(c *Config) { c.Workers = -1 }, false},
		{"negative width", func(c *Config) { c.Camera.ImageWidth = -10 }, false},
		{"negative samples", func(c *Config) { c.Camera.SamplesPerPixel = -1 }, false},
		{"negative depth", func(c *Config) { c.Camera.MaxDepth = -1 }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"debug level", func(c *Config) { c.LogLevel = "debug" }, true},
		{"value noise", func(c *Config) { c.Assets.Noise = "value" }, true},
		{"empty noise", func(c *Config) { c.Assets.Noise = "" }, true},
		{"unknown noise", func(c *Config) { c.Assets.Noise = "simplex" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestCameraConfig_Apply(t *testing.T) {
	preset := renderer.CameraConfig{ImageWidth: 400, SamplesPerPixel: 100, MaxDepth: 50, VFov: 20}

	kept := CameraConfig{}.Apply(preset)
	if kept != preset {
		t.Errorf("Zero overrides changed the preset: %+v", kept)
	}

	got := CameraConfig{ImageWidth: 64, MaxDepth: 3}.Apply(preset)
	if got.ImageWidth != 64 || got.MaxDepth != 3 || got.SamplesPerPixel != 100 || got.VFov != 20 {
		t.Errorf("Apply = %+v", got)
	}
}
