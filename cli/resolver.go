package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] that reads flag defaults from a
// YAML file in the configuration directory.
//
// Top-level keys map to flag names; hyphens in flag names (e.g.
// "log-level") may be written with underscores in the file (e.g.
// "log_level"). Command-line flags override config file values.
//
// Example config file:
//
//	log_level: debug
//	log_format: json
//	target: wp76xx
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var values map[string]any

	if err := yaml.Unmarshal(data, &values); err != nil {
		// A malformed config file falls back to flag defaults.
		return config{}, nil
	}

	return config(values), nil
}

// config is a flat flag-name to value map implementing [kong.Resolver].
type config map[string]any

func (config) Validate(*kong.Application) error { return nil }

func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	// Underscore variant
	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - let Kong use defaults
	return nil, nil
}
