package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/config"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/scene"
)

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "frames", "quads.png")
	saved := filepath.Join(dir, "effective.yaml")

	err := newApp().Run([]string{
		"raytracer", "render",
		"--scene", "quads",
		"--width", "16",
		"--spp", "1",
		"--depth", "2",
		"--workers", "2",
		"--seed", "5",
		"-o", out,
		"--save-config", saved,
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Output image missing: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	// quads preset is square
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("Image size %v, want 16x16", img.Bounds())
	}

	cfg, err := config.LoadConfig(saved)
	if err != nil {
		t.Fatalf("Saved config unreadable: %v", err)
	}
	if cfg.Scene != "quads" || cfg.Seed != 5 || cfg.Workers != 2 || cfg.Camera.ImageWidth != 16 || cfg.Output != out {
		t.Errorf("Saved config does not reflect flags: %+v", cfg)
	}
}

func TestRenderCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "checker.bmp")

	cfg := config.DefaultConfig()
	cfg.Scene = "checkered-spheres"
	cfg.Output = out
	cfg.Camera = config.CameraConfig{ImageWidth: 12, SamplesPerPixel: 1, MaxDepth: 2}
	cfgPath := filepath.Join(dir, "render.yaml")
	if err := config.SaveConfig(cfg, cfgPath); err != nil {
		t.Fatal(err)
	}

	if err := newApp().Run([]string{"raytracer", "render", "--config", cfgPath}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected output at %s: %v", out, err)
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	err := newApp().Run([]string{"raytracer", "render", "--scene", "teapot", "--width", "8", "-o", filepath.Join(dir, "x.png")})
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}

	err = newApp().Run([]string{"raytracer", "render", "--workers", "-3"})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}

	err = newApp().Run([]string{"raytracer", "render", "--config", filepath.Join(dir, "missing.yaml")})
	if err == nil {
		t.Error("Expected error for a missing config file")
	}
}

func TestRenderCommand_ValueNoise(t *testing.T) {
	out := filepath.Join(t.TempDir(), "marble.png")
	err := newApp().Run([]string{
		"raytracer", "render", "--scene", "noise-spheres", "--noise", "value",
		"--width", "16", "--spp", "1", "--depth", "2", "-o", out,
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected output at %s: %v", out, err)
	}

	err = newApp().Run([]string{"raytracer", "render", "--noise", "simplex"})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid for an unknown noise, got %v", err)
	}
}

func TestListScenesCommand(t *testing.T) {
	if err := newApp().Run([]string{"raytracer", "list-scenes"}); err != nil {
		t.Fatalf("list-scenes failed: %v", err)
	}
}
