// Package config loads locstostms settings from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutputFile is written when no output file is configured.
const DefaultOutputFile = "locstostms.txt"

// Config holds settings that may come from a file or from flags.
type Config struct {
	SrcDirs    []string `yaml:"srcDirs"`
	OutputFile string   `yaml:"outputFile"`
	Language   string   `yaml:"language"`
	Format     string   `yaml:"format"`
}

// Parse decodes a YAML document. Unknown keys are rejected so typos do not
// silently fall back to defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

// Load reads and decodes the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Merge returns base with every non-empty field of override applied.
func Merge(base, override Config) Config {
	if len(override.SrcDirs) > 0 {
		base.SrcDirs = override.SrcDirs
	}
	if override.OutputFile != "" {
		base.OutputFile = override.OutputFile
	}
	if override.Language != "" {
		base.Language = override.Language
	}
	if override.Format != "" {
		base.Format = override.Format
	}
	return base
}

// WithDefaults fills empty fields with the given language and format and
// the default output file.
func (c Config) WithDefaults(language, format string) Config {
	return Merge(Config{
		OutputFile: DefaultOutputFile,
		Language:   language,
		Format:     format,
	}, c)
}
