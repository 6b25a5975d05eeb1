// Package config loads flattice settings from a TOML file.
//
// Every key is optional; a key present in the file overrides the matching
// field of Default(). Example:
//
//	radius = 2
//	ball_radius = 3
//	log_level = "debug"
//
//	[search]
//	max_subset = 4
//	workers = 2
//
//	[export]
//	format = "dot"
//	output = "lattice.dot"
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/flattice/export"
	"github.com/katalvlaran/flattice/lattice"
	"github.com/katalvlaran/flattice/matrix"
	"github.com/katalvlaran/flattice/search"
)

// ErrUnknownKey indicates a key the loader does not recognise.
var ErrUnknownKey = fmt.Errorf("config: unknown key: %w", matrix.ErrBadValue)

// Config holds the resolved settings.
type Config struct {
	Radius     int
	BallRadius int
	LogLevel   zerolog.Level
	Search     search.Options
	Export     ExportConfig
}

// ExportConfig selects the export encoding and destination. An empty
// Output means standard output.
type ExportConfig struct {
	Format export.Format
	Output string
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Radius:     1,
		BallRadius: 1,
		LogLevel:   zerolog.InfoLevel,
		Export:     ExportConfig{Format: export.FormatJSON},
	}
}

// fileConfig mirrors the TOML layout. Numbers for the radii decode as int64
// or float64 and are coerced afterwards so that 1.5 is reported, not
// truncated.
type fileConfig struct {
	Radius     any    `toml:"radius"`
	BallRadius any    `toml:"ball_radius"`
	LogLevel   string `toml:"log_level"`
	Search     struct {
		MaxSubset int `toml:"max_subset"`
		Workers   int `toml:"workers"`
	} `toml:"search"`
	Export struct {
		Format string `toml:"format"`
		Output string `toml:"output"`
	} `toml:"export"`
}

// Load reads path on top of Default(). An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: %q: %w", path, undecoded[0].String(), ErrUnknownKey)
	}

	if meta.IsDefined("radius") {
		r, err := lattice.RadiusValue(raw.Radius)
		if err != nil {
			return Config{}, fmt.Errorf("parse radius: %w", err)
		}
		cfg.Radius = r
	}

	if meta.IsDefined("ball_radius") {
		k, err := lattice.BallRadiusValue(raw.BallRadius)
		if err != nil {
			return Config{}, fmt.Errorf("parse ball_radius: %w", err)
		}
		cfg.BallRadius = k
	}

	if meta.IsDefined("log_level") {
		lvl, err := ParseLevel(raw.LogLevel)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = lvl
	}

	if meta.IsDefined("search", "max_subset") {
		if raw.Search.MaxSubset < 0 {
			return Config{}, fmt.Errorf("parse search.max_subset %d: %w", raw.Search.MaxSubset, search.ErrNegativeMaxSubset)
		}
		cfg.Search.MaxSubset = raw.Search.MaxSubset
	}

	if meta.IsDefined("search", "workers") {
		cfg.Search.Workers = raw.Search.Workers
	}

	if meta.IsDefined("export", "format") {
		f, err := export.ParseFormat(raw.Export.Format)
		if err != nil {
			return Config{}, fmt.Errorf("parse export.format: %w", err)
		}
		cfg.Export.Format = f
	}

	if meta.IsDefined("export", "output") {
		cfg.Export.Output = strings.TrimSpace(raw.Export.Output)
	}

	return cfg, nil
}

// ParseLevel maps a zerolog level name ("debug", "info", ...) to a level.
func ParseLevel(s string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return zerolog.NoLevel, fmt.Errorf("parse log_level %q: %w", s, matrix.ErrBadValue)
	}

	return lvl, nil
}
