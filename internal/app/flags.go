package app

import (
	"flag"

	"torus-life/internal/config"
)

// Config represents the command-line parameters for the application.
type Config struct {
	config.Settings

	// File is the optional HCL settings file the flags override.
	File string
}

// NewConfig returns a Config populated with the built-in defaults.
func NewConfig() *Config {
	return &Config{Settings: config.Default()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "path to an HCL settings file")
	fs.IntVar(&c.Resolution, "resolution", c.Resolution, "cells per board side")
	fs.IntVar(&c.BoardSize, "board", c.BoardSize, "board size in pixels")
	fs.IntVar(&c.StepsPerSecond, "sps", c.StepsPerSecond, "generations per second while running")
	fs.IntVar(&c.FramesPerSecond, "fps", c.FramesPerSecond, "frames per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Running, "run", c.Running, "start stepping immediately")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "fill the board with a random soup from this seed (0 leaves it empty)")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of live cells in a random soup")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}
