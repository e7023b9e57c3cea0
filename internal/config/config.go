// Package config implements the ambient configuration layer (spec_full
// §10.2): the handful of boolean switches that change what the
// importer, emitter, and rewriter produce, loaded from a YAML file the
// way the teacher's runtime configuration files are, via
// github.com/goccy/go-yaml.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Options are the compiler-wide switches spec §4.1/§4.2 name: Minify
// drives the importer's anonymous-name allocation, OmitDowncastChecks
// and OmitNullableChecks drive the emitter's elision rules.
type Options struct {
	Minify              bool `yaml:"minify"`
	OmitDowncastChecks  bool `yaml:"omitDowncastChecks"`
	OmitNullableChecks  bool `yaml:"omitNullableChecks"`
}

// Default returns the conservative, checks-on, unminified configuration.
func Default() *Options {
	return &Options{}
}

// Load reads and parses a YAML options file at path. A missing or
// malformed file is always an error — there is no silent fallback to
// Default, since a caller that asked for a specific config file wants
// to know when it could not be honored.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return opts, nil
}
