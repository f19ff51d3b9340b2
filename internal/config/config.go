// Package config loads the optional YAML settings file of the minpath
// command. Precedence is defaults, then file, then command line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minpath/minpath"
)

// Output formats understood by the solve command.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalidConfig indicates a setting failed validation.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config is the resolved configuration of a solve run.
type Config struct {
	Input     string `yaml:"input"`
	Separator string `yaml:"separator"`
	Sweep     string `yaml:"sweep"`
	LongNames bool   `yaml:"longNames"`
	Format    string `yaml:"format"`
	LogLevel  string `yaml:"logLevel"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() Config {
	return Config{
		Input:     "matrix.txt",
		Separator: ",",
		Sweep:     minpath.RowMajor.String(),
		Format:    FormatText,
		LogLevel:  "warn",
	}
}

// Load reads path and overlays its non-empty fields on Default().
// Unknown keys and multiple documents are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return cfg, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read file: %w", err)
	}

	var file Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("strict config parse error: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	cfg.merge(file)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// merge copies every set field of src into c.
func (c *Config) merge(src Config) {
	if src.Input != "" {
		c.Input = src.Input
	}
	if src.Separator != "" {
		c.Separator = src.Separator
	}
	if src.Sweep != "" {
		c.Sweep = src.Sweep
	}
	if src.LongNames {
		c.LongNames = true
	}
	if src.Format != "" {
		c.Format = src.Format
	}
	if src.LogLevel != "" {
		c.LogLevel = src.LogLevel
	}
}

// Validate checks the separator, sweep and format values.
func (c Config) Validate() error {
	if _, err := c.SeparatorRune(); err != nil {
		return err
	}
	if _, err := minpath.ParseSweep(c.Sweep); err != nil {
		return fmt.Errorf("sweep: %w: %w", ErrInvalidConfig, err)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}

	return nil
}

// SeparatorRune returns the separator as a single rune. "\t" and "tab" mean a tab.
func (c Config) SeparatorRune() (rune, error) {
	switch c.Separator {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(c.Separator) != 1 {
		return 0, fmt.Errorf("separator %q must be one character: %w", c.Separator, ErrInvalidConfig)
	}
	r, _ := utf8.DecodeRuneInString(c.Separator)

	return r, nil
}
