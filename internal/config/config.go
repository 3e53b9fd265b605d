// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and render-mode settings.
type GraphicsConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	Fullscreen  bool `yaml:"fullscreen"`
	VSync       bool `yaml:"vsync"`
	MSAASamples int  `yaml:"msaa_samples"`
	Wireframe   bool `yaml:"wireframe"`
	Tonemapping bool `yaml:"tonemapping"`
	// DepthFail selects the depth-fail (Carmack's reverse) stencil convention
	// instead of the depth-pass one.
	DepthFail bool `yaml:"depth_fail"`
}

// SceneConfig holds test scene parameters.
type SceneConfig struct {
	NumCubes  int   `yaml:"num_cubes"`
	NumLights int   `yaml:"num_lights"`
	Seed      int64 `yaml:"seed"`
	// Spotlight switches the pipeline to the shadow-map spotlight variant.
	Spotlight bool `yaml:"spotlight"`
	// ShadowMapResolution is the side length of the spotlight depth map.
	ShadowMapResolution int  `yaml:"shadow_map_resolution"`
	Animate             bool `yaml:"animate"`
	// MaterialDir points at the albedo/normal/roughness/occlusion JPEGs.
	// Flat placeholder textures are used when empty or missing.
	MaterialDir string `yaml:"material_dir"`
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
			Width:       800,
			Height:      600,
			Fullscreen:  false,
			VSync:       true,
			MSAASamples: 4,
			Wireframe:   false,
			Tonemapping: true,
			DepthFail:   true,
		},
		Scene: SceneConfig{
			NumCubes:            5,
			NumLights:           1,
			Seed:                1,
			Spotlight:           false,
			ShadowMapResolution: 2048,
			Animate:             false,
			MaterialDir:         "data",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
