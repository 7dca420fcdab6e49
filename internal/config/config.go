// Package config loads simulation settings from HCL files.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete simulation configuration
type Config struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Log        LogSettings        `hcl:"log,block"`
}

// SimulationSettings controls how many games are played and how
type SimulationSettings struct {
	Games   int    `hcl:"games,optional"`
	Players int    `hcl:"players,optional"`
	Seed    int64  `hcl:"seed,optional"`
	Workers int    `hcl:"workers,optional"`
	Timeout string `hcl:"timeout,optional"` // per game, e.g. "2s"
}

// LogSettings contains logging configuration
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Games:   1000,
			Players: 4,
			Seed:    451,
			Workers: 4,
			Timeout: "1s",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Parse decodes configuration from HCL source held in memory
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Simulation.Games == 0 {
		c.Simulation.Games = def.Simulation.Games
	}
	if c.Simulation.Players == 0 {
		c.Simulation.Players = def.Simulation.Players
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = def.Simulation.Workers
	}
	if c.Simulation.Timeout == "" {
		c.Simulation.Timeout = def.Simulation.Timeout
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Simulation.Games)
	}
	if c.Simulation.Players < 2 || c.Simulation.Players > 4 {
		return fmt.Errorf("players must be between 2 and 4, got %d", c.Simulation.Players)
	}
	if c.Simulation.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Simulation.Workers)
	}
	if _, err := c.GameTimeout(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// GameTimeout returns the per-game timeout
func (c *Config) GameTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Simulation.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Simulation.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", d)
	}
	return d, nil
}

// LogLevel returns the configured log level
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
