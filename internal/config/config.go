// Package config provides YAML-based configuration loading for the
// gridtable demo sources.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for the gridtable CLI.
type Config struct {
	Demo Demo `yaml:"demo"`
}

// Demo defines the parameters of the generated demonstration grids.
type Demo struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	TupleSize    int     `yaml:"tuple_size"`    // Elements per multi-line cell
	Low          int     `yaml:"low"`           // Smallest random value (inclusive)
	High         int     `yaml:"high"`          // Largest random value (exclusive)
	Seed         int64   `yaml:"seed"`          // 0 = random based on time
	RandomColors bool    `yaml:"random_colors"` // Draw a random color for every cell
	Paint        []Paint `yaml:"paint"`
}

// Paint overrides the color of a single cell after the grid is built.
type Paint struct {
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Color string `yaml:"color"`
}

// Validate checks that the demo parameters describe a buildable grid.
func (d Demo) Validate() error {
	var errs []error
	if d.Rows <= 0 {
		errs = append(errs, fmt.Errorf("rows must be positive, got %d", d.Rows))
	}
	if d.Cols <= 0 {
		errs = append(errs, fmt.Errorf("cols must be positive, got %d", d.Cols))
	}
	if d.TupleSize < 0 {
		errs = append(errs, fmt.Errorf("tuple_size must not be negative, got %d", d.TupleSize))
	}
	if d.High <= d.Low {
		errs = append(errs, fmt.Errorf("value range [%d, %d) is empty", d.Low, d.High))
	} else if d.High-d.Low <= 0 {
		errs = append(errs, fmt.Errorf("value range [%d, %d) is too wide", d.Low, d.High))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid demo settings: %w", errors.Join(errs...))
	}
	return nil
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	return c.Demo.Validate()
}
