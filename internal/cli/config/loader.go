package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// NoConfigFile disables rc file loading when passed as the config
// path ("./None" still names a literal file called None).
const NoConfigFile = "None"

const envPrefix = "CMAKELINT_"

// DefaultRCPath returns the first rc file found in the search order:
// $PWD/.cmakelintrc, $XDG_CONFIG_HOME/cmakelintrc (~/.config by
// default), ~/.cmakelintrc. Empty means none exists.
func DefaultRCPath() string {
	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, ".cmakelintrc")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	xdg := filepath.Join(home, ".config")
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		xdg = dir
	}
	candidate := filepath.Join(xdg, "cmakelintrc")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	candidate = filepath.Join(home, ".cmakelintrc")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

// Load builds the configuration from layered sources.
// Precedence (highest to lowest): flags > env vars > rc file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"filter":     "",
		"spaces":     DefaultSpaces,
		"linelength": DefaultLineLength,
		"quiet":      false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. rc file. An explicit path must load; the searched default may
	// be absent.
	switch cfgFile {
	case NoConfigFile:
		// explicitly disabled
	case "":
		cfgFile = DefaultRCPath()
	}
	if cfgFile != "" && cfgFile != NoConfigFile {
		if err := k.Load(file.Provider(cfgFile), parserFor(cfgFile)); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Environment variables: CMAKELINT_LINELENGTH -> linelength.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, highest priority. Only explicitly set flags count, and
	// the filter flag stays out: CLI filters are a separate override
	// layer on top of the rc filter, not a replacement for it.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "filter" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.Spaces < 1 {
		return nil, fmt.Errorf("spaces must be positive, got %d", cfg.Spaces)
	}
	if cfg.LineLength < 1 {
		return nil, fmt.Errorf("linelength must be positive, got %d", cfg.LineLength)
	}
	return &cfg, nil
}

// parserFor picks the rc parser by extension: YAML for .yaml/.yml,
// the classic key=value format otherwise.
func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return NewRCParser()
	}
}
