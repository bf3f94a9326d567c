package config

import "sort"

// Presets hold overrides applied on top of DefaultConfig.
var Presets = map[string]func(*Config){
	"gravity": func(c *Config) {},
	"drag": func(c *Config) {
		c.Force.Drag = true
	},
	"magnus": func(c *Config) {
		c.Force.Magnus = true
	},
	"drag_magnus": func(c *Config) {
		c.Force.Drag = true
		c.Force.Magnus = true
	},
	"chip": func(c *Config) {
		c.Shot.Speed = 16
		c.Shot.Elevation = 45
		c.Shot.Distance = 25
		c.Shot.OffsetY = 0
		c.Force.Drag = true
	},
	"curler": func(c *Config) {
		c.Shot.Speed = 27
		c.Shot.Elevation = 12
		c.Shot.Distance = 22
		c.Shot.OffsetY = 8
		c.Force.Drag = true
		c.Force.Magnus = true
		c.Force.Spin = [3]float64{0, 0, 12}
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
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
