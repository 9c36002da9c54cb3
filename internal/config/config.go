package config

// Config is the root configuration structure.
type Config struct {
	Canvas CanvasConfig `json:"canvas"`
	Render RenderConfig `json:"render"`
	UI     UIConfig     `json:"ui"`
}

// CanvasConfig sets the logical pixel grid dimensions.
type CanvasConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RenderConfig configures frame pacing.
type RenderConfig struct {
	// MaxFPS caps the frame rate when FPSLimit is true.
	MaxFPS float64 `json:"maxFps"`
	// FPSLimit toggles the cap. With it off the loop runs at the tick floor.
	FPSLimit bool `json:"fpsLimit"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowStatusBar bool `json:"showStatusBar"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  64,
			Height: 64,
		},
		Render: RenderConfig{
			MaxFPS:   320,
			FPSLimit: true,
		},
		UI: UIConfig{
			ShowStatusBar: true,
		},
	}
}

// Validate clamps out-of-range values back to defaults rather than failing.
func (c *Config) Validate() error {
	if c.Canvas.Width < 1 || c.Canvas.Width > 1024 {
		c.Canvas.Width = 64
	}
	if c.Canvas.Height < 1 || c.Canvas.Height > 1024 {
		c.Canvas.Height = 64
	}
	if c.Render.MaxFPS <= 0 {
		c.Render.MaxFPS = 320
	}
	if c.Render.MaxFPS > 1000 {
		c.Render.MaxFPS = 1000
	}
	return nil
}
