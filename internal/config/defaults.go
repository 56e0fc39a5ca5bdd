package config

import (
	_ "embed"
)

//go:embed defaults/gridtable.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Demo: Demo{
			Rows:      3,
			Cols:      11,
			TupleSize: 2,
			Low:       -10,
			High:      10,
			Seed:      0, // 0 means use current time
			Paint: []Paint{
				{Row: 1, Col: 3, Color: "dark_yellow"},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
