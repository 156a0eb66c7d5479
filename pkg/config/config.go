// Package config loads dot2pst settings from an optional TOML or YAML file.
//
// Example file:
//
//	scale = 0.05
//	strict = false
//	fit_width = false
//
//	[pstricks]
//	node_sep = "3pt"
//	arrows = "-"
//
//	[label.replace]
//	"*" = '\StarGame'
//
// Files ending in .yaml or .yml are read as YAML with the same keys:
//
//	scale: 0.05
//	pstricks:
//	  arrows: "->"
//
// Keys that are not set keep their defaults. Unknown keys are rejected.
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/dot2pst/pkg/errors"
	"github.com/matzehuels/dot2pst/pkg/render/pstricks"
)

// Config holds every setting a conversion run reads.
type Config struct {
	Scale    float64 `toml:"scale" yaml:"scale"`
	Strict   bool    `toml:"strict" yaml:"strict"`
	FitWidth bool    `toml:"fit_width" yaml:"fit_width"`

	PSTricks struct {
		NodeSep string `toml:"node_sep" yaml:"node_sep"`
		Arrows  string `toml:"arrows" yaml:"arrows"`
	} `toml:"pstricks" yaml:"pstricks"`

	Label struct {
		Replace map[string]string `toml:"replace" yaml:"replace"`
	} `toml:"label" yaml:"label"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Scale = pstricks.DefaultScale
	c.PSTricks.NodeSep = pstricks.DefaultNodeSep
	c.PSTricks.Arrows = pstricks.DefaultArrows
	return c
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(path, &cfg)
	default:
		err = decodeTOML(path, &cfg)
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func decodeTOML(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %v", c.Scale)
	}
	if strings.TrimSpace(c.PSTricks.NodeSep) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "pstricks.node_sep must not be empty")
	}
	if strings.TrimSpace(c.PSTricks.Arrows) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "pstricks.arrows must not be empty")
	}
	return nil
}

// PSTricksOptions returns the emitter options described by c.
func (c Config) PSTricksOptions() pstricks.Options {
	return pstricks.Options{
		Scale:   c.Scale,
		NodeSep: c.PSTricks.NodeSep,
		Arrows:  c.PSTricks.Arrows,
	}
}
