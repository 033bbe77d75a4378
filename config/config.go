// Package config loads the optional TOML settings file. Every field has a
// playable default; a missing file is not an error, a malformed one is.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/echo-ring/constants"
	"github.com/lixenwraith/echo-ring/engine"
)

// Config holds all user-tunable settings
type Config struct {
	Timing TimingConfig `toml:"timing"`
	Board  BoardConfig  `toml:"board"`
	Audio  AudioConfig  `toml:"audio"`
	Log    LogConfig    `toml:"log"`
}

// TimingConfig tunes reveal and round timing, all values in milliseconds
// except RoundSeconds
type TimingConfig struct {
	ShowDurationMs int `toml:"show_duration_ms"`
	ShowGapMs      int `toml:"show_gap_ms"`
	ClickFlashMs   int `toml:"click_flash_ms"`
	RoundSeconds   int `toml:"round_seconds"`
}

// BoardConfig tunes board geometry
type BoardConfig struct {
	GapDegrees float64 `toml:"gap_degrees"`
}

// AudioConfig tunes sound feedback
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// LogConfig tunes the rolling log file
type LogConfig struct {
	Path string `toml:"path"`
}

// Default returns the playable baseline configuration
func Default() *Config {
	return &Config{
		Timing: TimingConfig{
			ShowDurationMs: int(constants.ShowDuration / time.Millisecond),
			ShowGapMs:      int(constants.ShowGap / time.Millisecond),
			ClickFlashMs:   int(constants.ClickFlashDuration / time.Millisecond),
			RoundSeconds:   constants.RoundSeconds,
		},
		Board: BoardConfig{
			GapDegrees: constants.BoardGapDegrees,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Path: "echo-ring.log",
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file
// yields the defaults; unparseable TOML or unplayable values are errors.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Timing.ShowDurationMs <= 0 || c.Timing.ShowGapMs <= 0 {
		return fmt.Errorf("reveal timing must be positive")
	}
	if c.Timing.ClickFlashMs <= 0 || c.Timing.ClickFlashMs >= c.Timing.ShowDurationMs {
		return fmt.Errorf("click flash must be positive and shorter than the reveal highlight")
	}
	if c.Timing.RoundSeconds <= 0 {
		return fmt.Errorf("round_seconds must be positive")
	}
	if c.Board.GapDegrees < 0 || c.Board.GapDegrees >= 90 {
		return fmt.Errorf("gap_degrees must be in [0, 90)")
	}
	return nil
}

// EngineTiming converts the config into the coordinator's timing parameters
func (c *Config) EngineTiming() engine.Timing {
	return engine.Timing{
		ShowDuration: time.Duration(c.Timing.ShowDurationMs) * time.Millisecond,
		ShowGap:      time.Duration(c.Timing.ShowGapMs) * time.Millisecond,
		ClickFlash:   time.Duration(c.Timing.ClickFlashMs) * time.Millisecond,
	}
}
