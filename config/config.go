// Package config loads the game's YAML configuration.
package config

import (
	"os"

	"github.com/milk9111/boy/boy"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window WindowSpec `yaml:"window"`
	Sheet  string     `yaml:"sheet"`
	Script string     `yaml:"script"`
	Boy    BoySpec    `yaml:"boy"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type BoySpec struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	FrameSize      int     `yaml:"frame_size"`
	FrameCount     int     `yaml:"frame_count"`
	RunSpeed       float64 `yaml:"run_speed"`
	AutoRunSpeed   float64 `yaml:"auto_run_speed"`
	IdleTimeout    float64 `yaml:"idle_timeout"`
	AutoRunTimeout float64 `yaml:"auto_run_timeout"`
	LeftBound      float64 `yaml:"left_bound"`
	RightBound     float64 `yaml:"right_bound"`
}

func Default() Config {
	t := boy.DefaultTuning()
	return Config{
		Window: WindowSpec{Width: 800, Height: 600, Title: "boy", TPS: 20},
		Boy: BoySpec{
			StartX:         400,
			StartY:         90,
			FrameSize:      t.FrameSize,
			FrameCount:     t.FrameCount,
			RunSpeed:       t.RunSpeed,
			AutoRunSpeed:   t.AutoRunSpeed,
			IdleTimeout:    t.IdleTimeout,
			AutoRunTimeout: t.AutoRunTimeout,
			LeftBound:      t.LeftBound,
			RightBound:     t.RightBound,
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: load %s", path)
	}
	cfg, err = Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return errors.Errorf("window tps %d must be positive", c.Window.TPS)
	}
	return c.Tuning().Validate()
}

func (c Config) Tuning() boy.Tuning {
	return boy.Tuning{
		FrameSize:      c.Boy.FrameSize,
		FrameCount:     c.Boy.FrameCount,
		RunSpeed:       c.Boy.RunSpeed,
		AutoRunSpeed:   c.Boy.AutoRunSpeed,
		IdleTimeout:    c.Boy.IdleTimeout,
		AutoRunTimeout: c.Boy.AutoRunTimeout,
		LeftBound:      c.Boy.LeftBound,
		RightBound:     c.Boy.RightBound,
	}
}
