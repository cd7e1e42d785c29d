// Package config loads run parameters from TOML files and flags.
package config

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/olivierh59500/particle-network/network"
)

// Config holds everything needed to run a particle network.
type Config struct {
	// Terminal selects the tcell renderer instead of a desktop window.
	Terminal bool

	Width, Height int   // window size in pixels (window only)
	FPS           int   // frames per second
	Seed          int64 // 0 picks a time-based seed

	// Terminal cell size in simulated pixels.
	CellWidth, CellHeight float64

	// Particle field parameters
	ParticleCount      int
	ConnectionDistance float64
	MouseRepelRadius   float64
	ParticleColor      string
	LineColor          string

	Twinkle bool // noise-driven shimmer of the dots (window only)
	Cursor  bool // spring-follow custom cursor (window only)
	Vision  bool // start with the vision overlay on
}

// DefaultConf returns the default parameters.
func DefaultConf() *Config {
	nc := network.DefaultConfig()
	return &Config{
		Width:              800,
		Height:             600,
		FPS:                60,
		CellWidth:          8,
		CellHeight:         16,
		ParticleCount:      nc.ParticleCount,
		ConnectionDistance: nc.ConnectionDistance,
		MouseRepelRadius:   nc.MouseRepelRadius,
		ParticleColor:      nc.ParticleColor,
		LineColor:          nc.LineColor,
		Twinkle:            true,
		Cursor:             true,
	}
}

// ParseConfig decodes the TOML file at path over the default parameters.
func ParseConfig(path string) (*Config, error) {
	conf := DefaultConf()
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return conf, nil
}

// Validate checks host-level parameters. Field parameters are checked by
// network.New.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", network.ErrInvalidConfig, c.FPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", network.ErrInvalidConfig, c.Width, c.Height)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size %vx%v", network.ErrInvalidConfig, c.CellWidth, c.CellHeight)
	}
	return nil
}

// ResolveSeed replaces a zero Seed with fallback, typically the current
// time, and returns the seed in effect. Every seeded component reads
// Seed afterwards so one run shares one seed.
func (c *Config) ResolveSeed(fallback int64) int64 {
	if c.Seed == 0 {
		c.Seed = fallback
	}
	return c.Seed
}

// Network returns the particle field part of the configuration.
func (c *Config) Network() network.Config {
	return network.Config{
		ParticleCount:      c.ParticleCount,
		ConnectionDistance: c.ConnectionDistance,
		MouseRepelRadius:   c.MouseRepelRadius,
		ParticleColor:      c.ParticleColor,
		LineColor:          c.LineColor,
	}
}

// Load builds a Config from command-line arguments. A -config file is
// decoded first and flags given explicitly on the command line win over it.
func Load(name string, args []string) (*Config, error) {
	def := DefaultConf()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "path to a TOML config file")
	term := fs.Bool("term", def.Terminal, "render in the terminal instead of a window")
	width := fs.Int("width", def.Width, "window width in pixels")
	height := fs.Int("height", def.Height, "window height in pixels")
	fps := fs.Int("fps", def.FPS, "frames per second")
	seed := fs.Int64("seed", def.Seed, "random seed, 0 for time-based")
	count := fs.Int("particles", def.ParticleCount, "number of particles")
	dist := fs.Float64("connect", def.ConnectionDistance, "max distance of a connecting line")
	repel := fs.Float64("repel", def.MouseRepelRadius, "pointer repel radius")
	vision := fs.Bool("vision", def.Vision, "start with the vision overlay on")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	conf := def
	if *path != "" {
		var err error
		if conf, err = ParseConfig(*path); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "term":
			conf.Terminal = *term
		case "width":
			conf.Width = *width
		case "height":
			conf.Height = *height
		case "fps":
			conf.FPS = *fps
		case "seed":
			conf.Seed = *seed
		case "particles":
			conf.ParticleCount = *count
		case "connect":
			conf.ConnectionDistance = *dist
		case "repel":
			conf.MouseRepelRadius = *repel
		case "vision":
			conf.Vision = *vision
		}
	})

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}
