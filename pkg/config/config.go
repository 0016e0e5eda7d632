package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/log"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/noise"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/renderer"
)

// ErrInvalid is returned by Validate for out-of-range settings
var ErrInvalid = errors.New("invalid configuration")

// Config represents the render configuration
type Config struct {
	Scene    string       `yaml:"scene"`
	Output   string       `yaml:"output"`
	Seed     int64        `yaml:"seed"`
	Workers  int          `yaml:"workers"`   // 0 means one per CPU
	LogLevel string       `yaml:"log_level"` // debug, info, notice, warning, error
	Camera   CameraConfig `yaml:"camera"`
	Assets   AssetsConfig `yaml:"assets"`
}

// CameraConfig overrides preset camera settings. Zero keeps the preset value.
type CameraConfig struct {
	ImageWidth      int `yaml:"image_width"`
	SamplesPerPixel int `yaml:"samples_per_pixel"`
	MaxDepth        int `yaml:"max_depth"`
}

// AssetsConfig locates files used by scenes and selects procedural inputs
type AssetsConfig struct {
	EarthTexture string `yaml:"earth_texture"`
	Noise        string `yaml:"noise"` // perlin or value
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Scene:    "cornell-box",
		Output:   "render.png",
		Seed:     1,
		Workers:  0,
		LogLevel: "notice",
		Assets: AssetsConfig{
			EarthTexture: "assets/earthmap.jpg",
			Noise:        noise.KindPerlin,
		},
	}
}

// LoadConfig loads the configuration from a file. Keys missing from the
// file keep their default values.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return config, fmt.Errorf("error parsing config %s: %w", filePath, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate reports the first setting that cannot be rendered
func (c *Config) Validate() error {
	switch {
	case c.Scene == "":
		return fmt.Errorf("%w: scene is required", ErrInvalid)
	case c.Output == "":
		return fmt.Errorf("%w: output path is required", ErrInvalid)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	case c.Camera.ImageWidth < 0:
		return fmt.Errorf("%w: image_width must be >= 0, got %d", ErrInvalid, c.Camera.ImageWidth)
	case c.Camera.SamplesPerPixel < 0:
		return fmt.Errorf("%w: samples_per_pixel must be >= 0, got %d", ErrInvalid, c.Camera.SamplesPerPixel)
	case c.Camera.MaxDepth < 0:
		return fmt.Errorf("%w: max_depth must be >= 0, got %d", ErrInvalid, c.Camera.MaxDepth)
	}

	if !noise.ValidKind(c.Assets.Noise) {
		return fmt.Errorf("%w: unknown noise %q", ErrInvalid, c.Assets.Noise)
	}
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// Apply returns camera with the non-zero overrides of c applied
func (c CameraConfig) Apply(camera renderer.CameraConfig) renderer.CameraConfig {
	if c.ImageWidth > 0 {
		camera.ImageWidth = c.ImageWidth
	}
	if c.SamplesPerPixel > 0 {
		camera.SamplesPerPixel = c.SamplesPerPixel
	}
	if c.MaxDepth > 0 {
		camera.MaxDepth = c.MaxDepth
	}
	return camera
}
