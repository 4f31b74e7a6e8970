package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/vfsim/pkg/vfsim"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Config holds the settings read from vfsim.yaml. Fields absent from the
// file keep their Default values.
type Config struct {
	LineNumbers bool     `yaml:"line_numbers"`
	Prompt      string   `yaml:"prompt"`
	Color       bool     `yaml:"color"`
	Seed        []string `yaml:"seed,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LineNumbers: true,
		Prompt:      vfsim.DefaultPrompt,
		Color:       true,
	}
}

// Load reads vfsim.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, vfsim.ConfigFileName))
}

// LoadFile reads a config file from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", vfsim.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Resolve picks the config for a run: the explicit path if given, else
// $VFSIM_CONFIG, else vfsim.yaml in dir. A missing file in dir yields the
// defaults; a missing explicit file is an error.
func Resolve(explicit, dir string) (*Config, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(vfsim.ConfigEnvVar)
	}
	if path != "" {
		cfg, err := LoadFile(path)
		if errors.Is(err, ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s: %v", vfsim.ErrInvalidConfig, path, err)
		}
		return cfg, err
	}

	cfg, err := Load(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Validate reports every problem in the config at once. checkLine is
// applied to each seed line and should reject lines that do not parse.
func (c *Config) Validate(checkLine func(line string) error) error {
	var errs *multierror.Error

	if c.Prompt == "" {
		errs = multierror.Append(errs, errors.New("prompt must not be empty"))
	}
	for i, line := range c.Seed {
		if checkLine == nil {
			break
		}
		if err := checkLine(line); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("seed[%d] %q: %w", i, line, err))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", vfsim.ErrInvalidConfig, err)
	}
	return nil
}
