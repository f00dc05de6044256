package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const DefaultFilename = "filesize.yaml"

type Config struct {
	Log    Log    `yaml:"log"`
	Output Output `yaml:"output"`
}

func (c *Config) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Dict("log", c.Log.ToDict()).
		Dict("output", c.Output.ToDict())
}

func (c *Config) setDefaults() {
	c.Log.setDefaults()
	c.Output.setDefaults()
}

func (c *Config) validate() error {
	if err := c.Log.validate(); nil != err {
		return fmt.Errorf("log config validation failed: %v", err)
	}

	if err := c.Output.validate(); nil != err {
		return fmt.Errorf("output config validation failed: %v", err)
	}

	return nil
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Log) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Str("level", c.Level).
		Str("format", c.Format)
}

func (c *Log) setDefaults() {
	if c.Level == "" {
		c.Level = "warn"
	}

	if c.Format == "" {
		c.Format = "pretty"
	}
}

func (c *Log) validate() error {
	if !slices.Contains([]string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}, c.Level) {
		return fmt.Errorf(
			"level must be one of: trace, debug, info, warn, error, fatal, panic, got: %s",
			c.Level,
		)
	}

	if !slices.Contains([]string{"json", "pretty"}, c.Format) {
		return fmt.Errorf("format must be 'json' or 'pretty', got: %s", c.Format)
	}

	return nil
}

type Output struct {
	Format string `yaml:"format"`
	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

func (c *Output) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Str("format", c.Format).
		Str("color", c.Color)
}

func (c *Output) setDefaults() {
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = "text"
	}

	if c.Color == "" {
		c.Color = "auto"
	}
}

func (c *Output) validate() error {
	if !slices.Contains([]string{"text", "json", "table"}, c.Format) {
		return fmt.Errorf("format must be one of: text, json, table, got: %s", c.Format)
	}

	if !slices.Contains([]string{"auto", "always", "never"}, c.Color) {
		return fmt.Errorf("color must be one of: auto, always, never, got: %s", c.Color)
	}

	return nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var conf Config
	conf.setDefaults()
	return &conf
}

// Load reads filename, or DefaultFilename if filename is empty. A missing
// default file yields Default(); a missing explicit file is an error.
func Load(filename string) (*Config, error) {
	path := lo.Ternary(len(filename) > 0, filename, DefaultFilename)

	data, err := os.ReadFile(path)
	if nil != err {
		if errors.Is(err, os.ErrNotExist) && len(filename) == 0 {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var conf Config
	if err := yaml.Unmarshal(data, &conf); nil != err {
		return nil, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}

	conf.setDefaults()

	if err := conf.validate(); nil != err {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return &conf, nil
}

// Override replaces the fields of c that have a non-empty counterpart in o
// and validates the result.
func (c *Config) Override(o Config) error {
	c.Log.Level = lo.Ternary(o.Log.Level != "", o.Log.Level, c.Log.Level)
	c.Log.Format = lo.Ternary(o.Log.Format != "", o.Log.Format, c.Log.Format)
	c.Output.Format = lo.Ternary(o.Output.Format != "", strings.ToLower(o.Output.Format), c.Output.Format)
	c.Output.Color = lo.Ternary(o.Output.Color != "", o.Output.Color, c.Output.Color)

	return c.validate()
}
