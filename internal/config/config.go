// Package config handles engine configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/midgard-engine/internal/engine/input"
)

// Config holds all engine settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Input    InputConfig    `yaml:"input"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// InputConfig holds keyboard and mouse settings.
type InputConfig struct {
	DoubleClickThreshold       time.Duration `yaml:"double_click_threshold"`
	RejectSameFrameDoubleClick bool          `yaml:"reject_same_frame_double_click"`
	LockSettleFrames           int           `yaml:"lock_settle_frames"`
	WheelScale                 float32       `yaml:"wheel_scale"`
	MouseSensitivity           float32       `yaml:"mouse_sensitivity"`
	LockMouse                  bool          `yaml:"lock_mouse"`
	WrapMouse                  bool          `yaml:"wrap_mouse"`
}

// AudioConfig holds feedback sound settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
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
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Input: InputConfig{
			DoubleClickThreshold:       300 * time.Millisecond,
			RejectSameFrameDoubleClick: true,
			LockSettleFrames:           3,
			WheelScale:                 1.0 / 3.0,
			MouseSensitivity:           2.5,
			LockMouse:                  false,
			WrapMouse:                  false,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// FrameBudget is the shortest time a frame may take under FPSLimit.
// Zero means uncapped.
func (g GraphicsConfig) FrameBudget() time.Duration {
	if g.FPSLimit <= 0 {
		return 0
	}
	return time.Second / time.Duration(g.FPSLimit)
}

// Tracker converts the settings into input tracker settings. Zero values
// fall back to the tracker defaults where zero is not meaningful.
func (c InputConfig) Tracker() input.Config {
	cfg := input.DefaultConfig()
	cfg.DoubleClickThreshold = c.DoubleClickThreshold
	cfg.RejectSameFrameDoubleClick = c.RejectSameFrameDoubleClick
	cfg.LockSettleFrames = c.LockSettleFrames
	if c.WheelScale != 0 {
		cfg.WheelScale = c.WheelScale
	}
	return cfg
}
