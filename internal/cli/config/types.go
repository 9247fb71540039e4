// Package config loads linter settings from the rc file, environment
// variables, and command-line flags, in that precedence order.
package config

// Config holds all tunable linter settings.
type Config struct {
	// Filter is the rc-file filter spec (comma-separated
	// +category/-category tokens). CLI filters are layered on top by
	// the caller, they do not replace this value.
	Filter     string `koanf:"filter"`
	Spaces     int    `koanf:"spaces"`
	LineLength int    `koanf:"linelength"`
	Quiet      bool   `koanf:"quiet"`
}

// Default configuration values.
const (
	DefaultSpaces     = 2
	DefaultLineLength = 80
)
