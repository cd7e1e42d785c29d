package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/olivierh59500/particle-network/network"
)

func TestParseConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.toml")
	data := `
Terminal = true
FPS = 30
ParticleCount = 12
ConnectionDistance = 90.5
LineColor = "rgba(255, 0, 0, 0.3)"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	conf, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if !conf.Terminal || conf.FPS != 30 || conf.ParticleCount != 12 || conf.ConnectionDistance != 90.5 {
		t.Errorf("Expected file values applied, got %+v", conf)
	}
	if conf.MouseRepelRadius != 100 || conf.ParticleColor != "#00f3ff" || conf.Width != 800 {
		t.Errorf("Expected defaults kept for unset keys, got %+v", conf)
	}

	nc := conf.Network()
	if nc.LineColor != "rgba(255, 0, 0, 0.3)" || nc.ParticleCount != 12 {
		t.Errorf("Expected network config to mirror file, got %+v", nc)
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := ParseConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("FPS = \"fast\""), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseConfig(path); err == nil {
		t.Errorf("Expected error for mistyped key")
	}
}

func TestDefaultConfDoesNotAlias(t *testing.T) {
	a := DefaultConf()
	a.ParticleCount = 1
	if b := DefaultConf(); b.ParticleCount != network.DefaultConfig().ParticleCount {
		t.Errorf("Expected fresh defaults, got %d", b.ParticleCount)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"Defaults", func(*Config) {}, true},
		{"Zero fps", func(c *Config) { c.FPS = 0 }, false},
		{"Negative width", func(c *Config) { c.Width = -1 }, false},
		{"Zero cell", func(c *Config) { c.CellHeight = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConf()
			tt.mutate(c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.ok && !errors.Is(err, network.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.toml")
	if err := os.WriteFile(path, []byte("ParticleCount = 20\nFPS = 24\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		args      []string
		wantCount int
		wantFPS   int
		wantTerm  bool
	}{
		{"No args", nil, 40, 60, false},
		{"Flags only", []string{"-particles", "5", "-term"}, 5, 60, true},
		{"File only", []string{"-config", path}, 20, 24, false},
		{"Flag beats file", []string{"-config", path, "-particles", "7"}, 7, 24, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := Load("test", tt.args)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if conf.ParticleCount != tt.wantCount {
				t.Errorf("Expected %d particles, got %d", tt.wantCount, conf.ParticleCount)
			}
			if conf.FPS != tt.wantFPS {
				t.Errorf("Expected fps %d, got %d", tt.wantFPS, conf.FPS)
			}
			if conf.Terminal != tt.wantTerm {
				t.Errorf("Expected terminal %v, got %v", tt.wantTerm, conf.Terminal)
			}
		})
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	if _, err := Load("test", []string{"-fps", "0"}); !errors.Is(err, network.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if _, err := Load("test", []string{"-nope"}); err == nil {
		t.Errorf("Expected error for unknown flag")
	}
}

func TestResolveSeed(t *testing.T) {
	c := DefaultConf()
	if got := c.ResolveSeed(1234); got != 1234 || c.Seed != 1234 {
		t.Errorf("Expected zero seed resolved to 1234, got %d (Seed %d)", got, c.Seed)
	}
	if got := c.ResolveSeed(99); got != 1234 {
		t.Errorf("Expected resolved seed kept, got %d", got)
	}

	c = DefaultConf()
	c.Seed = 7
	if got := c.ResolveSeed(1234); got != 7 {
		t.Errorf("Expected explicit seed 7 kept, got %d", got)
	}
}
