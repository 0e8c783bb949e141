// Package config provides configuration for rookworks.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/rookworks-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Workers is the number of goroutines used to replay games.
	Workers int

	// Grouped settings.
	Output *OutputConfig
	Filter *FilterConfig
	Engine *EngineSettings

	// File handling
	CurrentInputFile string
	OutputFilename   string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    runtime.NumCPU(),
		Output:     NewOutputConfig(),
		Filter:     NewFilterConfig(),
		Engine:     NewEngineSettings(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration and its groups.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d not in 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Filter.Validate(); err != nil {
		return err
	}
	return c.Engine.Validate()
}
