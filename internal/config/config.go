// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Picking  PickingConfig  `yaml:"picking"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// PickingConfig holds mesh-picking settings.
type PickingConfig struct {
	// HitResolution is the screen-space radius, in pixels, within which a
	// vertex or edge counts as picked.
	HitResolution float32 `yaml:"hit_resolution"`
	// UseGPU selects color-coded GPU picking; the picker falls back to the
	// CPU strategy when shader setup fails.
	UseGPU bool `yaml:"use_gpu"`
}

// ViewerConfig holds viewer content settings.
type ViewerConfig struct {
	MeshPath string  `yaml:"mesh_path"` // OBJ file to load; empty shows a unit cube
	FOV      float32 `yaml:"fov"`       // vertical field of view, degrees
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1024,
			Height: 768,
			VSync:  true,
		},
		Picking: PickingConfig{
			HitResolution: 15,
			UseGPU:        true,
		},
		Viewer: ViewerConfig{
			FOV: 45,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
