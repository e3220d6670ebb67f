package config

import "sort"

// Presets are partial overlays applied to DefaultConfig by GetPreset.
var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	"closeup": func(c *Config) {
		c.Scene.Camera.Z = 1.4
		c.Scene.Camera.FOV = 60
	},
	"wide": func(c *Config) {
		c.Scene.Camera.Z = 4
		c.Scene.Camera.FOV = 90
	},
	"dusk": func(c *Config) {
		c.Scene.Light.Color = "0xffaa66"
		c.Scene.Light.Intensity = 0.7
		c.Scene.Light.Position = [3]float64{3, 1, 2}
		c.Theme = "sunset"
	},
	"retina": func(c *Config) {
		c.Scene.PixelRatio = 2
	},
	"slab": func(c *Config) {
		c.Scene.Cube.Size = [3]float64{1.6, 0.4, 1}
		c.Scene.Cube.Color = "0x44aa88"
	},
}

// GetPreset returns a fresh config with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for k := range Presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
