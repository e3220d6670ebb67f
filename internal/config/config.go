package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/spincube/internal/scene"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFOV        = 75.0
	DefaultNear       = 0.1
	DefaultFar        = 100.0
	DefaultCameraZ    = 2.0
	DefaultIntensity  = 1.0
	DefaultPixelRatio = 1.0
	DefaultFPS        = 60
	DefaultTheme      = "cyberpunk"

	DefaultLightColor = "0xffffff"
	// DefaultCubeColor keeps the five-digit literal as written; see
	// Scene.ColorWarnings.
	DefaultCubeColor = "0x44a88"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Scene  Scene        `yaml:"scene"`
	Loop   LoopConfig   `yaml:"loop"`
	Theme  string       `yaml:"theme"`
	Render RenderConfig `yaml:"render"`
}

// Scene holds everything the driver needs to build its objects.
type Scene struct {
	Camera     CameraConfig `yaml:"camera"`
	Light      LightConfig  `yaml:"light"`
	Cube       CubeConfig   `yaml:"cube"`
	PixelRatio float64      `yaml:"pixel_ratio"`
	Antialias  bool         `yaml:"antialias"`
}

type CameraConfig struct {
	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
	Z    float64 `yaml:"z"`
}

type LightConfig struct {
	Color     string     `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Position  [3]float64 `yaml:"position,flow"`
}

type CubeConfig struct {
	Size     [3]float64 `yaml:"size,flow"`
	Color    string     `yaml:"color"`
	Position [3]float64 `yaml:"position,flow"`
}

type LoopConfig struct {
	FPS int `yaml:"fps"`
}

// RenderConfig drives headless rendering.
type RenderConfig struct {
	Frames int    `yaml:"frames"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Out    string `yaml:"out"`
	GIF    string `yaml:"gif"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene: Scene{
			Camera: CameraConfig{FOV: DefaultFOV, Near: DefaultNear, Far: DefaultFar, Z: DefaultCameraZ},
			Light: LightConfig{
				Color:     DefaultLightColor,
				Intensity: DefaultIntensity,
				Position:  [3]float64{-1, 2, 4},
			},
			Cube: CubeConfig{
				Size:  [3]float64{1, 1, 1},
				Color: DefaultCubeColor,
			},
			PixelRatio: DefaultPixelRatio,
			Antialias:  true,
		},
		Loop:  LoopConfig{FPS: DefaultFPS},
		Theme: DefaultTheme,
		Render: RenderConfig{
			Frames: 120,
			Width:  640,
			Height: 480,
		},
	}
}

// LoadInto decodes the file at path over cfg. Keys absent from the file
// keep their current values, so a preset can be refined by a file.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges that would otherwise produce a degenerate
// projection or an unusable loop.
func (c *Config) Validate() error {
	cam := c.Scene.Camera
	switch {
	case cam.FOV <= 0 || cam.FOV >= 180:
		return fmt.Errorf("%w: fov %v must be in (0, 180)", ErrInvalid, cam.FOV)
	case cam.Near <= 0 || cam.Far <= cam.Near:
		return fmt.Errorf("%w: depth range [%v, %v]", ErrInvalid, cam.Near, cam.Far)
	case c.Scene.PixelRatio <= 0:
		return fmt.Errorf("%w: pixel_ratio %v", ErrInvalid, c.Scene.PixelRatio)
	case c.Loop.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.Loop.FPS)
	}
	for _, v := range c.Scene.Cube.Size {
		if v <= 0 {
			return fmt.Errorf("%w: cube size %v", ErrInvalid, c.Scene.Cube.Size)
		}
	}
	if _, err := c.Scene.LightColor(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Scene.CubeColor(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func (s *Scene) LightColor() (scene.Color, error) {
	c, _, err := scene.ParseColor(s.Light.Color)
	return c, err
}

func (s *Scene) CubeColor() (scene.Color, error) {
	c, _, err := scene.ParseColor(s.Cube.Color)
	return c, err
}

// ColorWarnings reports color literals that do not have exactly six hex
// digits. Such values are used as parsed (left zero-extended) but are
// likely truncated.
func (s *Scene) ColorWarnings() []string {
	var out []string
	for _, f := range []struct{ name, value string }{
		{"light.color", s.Light.Color},
		{"cube.color", s.Cube.Color},
	} {
		if _, digits, err := scene.ParseColor(f.value); err == nil && digits != 6 {
			out = append(out, fmt.Sprintf("%s %q has %d hex digits", f.name, f.value, digits))
		}
	}
	return out
}

// Write encodes cfg as YAML to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
