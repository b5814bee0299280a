// Package config loads the optional multijob.yaml job description used by the
// multijob tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/multijob/pkg/multijob"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "multijob.yaml"

// Environment variables that override the special argument keys.
const (
	EnvJobIDKey        = "MULTIJOB_JOB_ID_KEY"
	EnvRepetitionIDKey = "MULTIJOB_REPETITION_ID_KEY"
)

// JobConfig describes how a job's command line is named and typed.
type JobConfig struct {
	JobIDKey        string            `yaml:"job_id_key,omitempty"`
	RepetitionIDKey string            `yaml:"repetition_id_key,omitempty"`
	DefaultCoercion string            `yaml:"default_coercion,omitempty"`
	Types           map[string]string `yaml:"types,omitempty"`
}

func Load(dir string) (*JobConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg JobConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, multijob.ErrInvalidConfig)
	}
	return &cfg, nil
}

// LoadOrDefault is Load, but a missing file yields an empty JobConfig.
func LoadOrDefault(dir string) (*JobConfig, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return &JobConfig{}, nil
	}
	return cfg, err
}

// ApplyEnv overrides the special argument keys from the environment.
// lookup has the signature of os.LookupEnv.
func (c *JobConfig) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvJobIDKey); ok && v != "" {
		c.JobIDKey = v
	}
	if v, ok := lookup(EnvRepetitionIDKey); ok && v != "" {
		c.RepetitionIDKey = v
	}
}

// Validate checks key names and coercion names.
func (c *JobConfig) Validate() error {
	cl := c.Commandline()
	for _, key := range []string{cl.JobIDKey, cl.RepetitionIDKey} {
		if strings.Contains(key, "=") {
			return fmt.Errorf("special key %q must not contain \"=\": %w", key, multijob.ErrInvalidConfig)
		}
		if key == multijob.Separator {
			return fmt.Errorf("special key must not be the %q separator: %w", multijob.Separator, multijob.ErrInvalidConfig)
		}
	}
	if cl.JobIDKey == cl.RepetitionIDKey {
		return fmt.Errorf("job_id_key and repetition_id_key are both %q: %w", cl.JobIDKey, multijob.ErrInvalidConfig)
	}

	if c.DefaultCoercion != "" && !multijob.Coercion(c.DefaultCoercion).Valid() {
		return fmt.Errorf("default_coercion %q is not one of %s: %w", c.DefaultCoercion, coercionNames(), multijob.ErrInvalidConfig)
	}

	names := make([]string, 0, len(c.Types))
	for name := range c.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !multijob.Coercion(c.Types[name]).Valid() {
			return fmt.Errorf("type of %q: %q is not one of %s: %w", name, c.Types[name], coercionNames(), multijob.ErrInvalidConfig)
		}
	}

	return nil
}

// Commandline returns the parser configuration, defaults filled in.
func (c *JobConfig) Commandline() *multijob.Config {
	cfg := multijob.DefaultConfig()
	if c.JobIDKey != "" {
		cfg.JobIDKey = c.JobIDKey
	}
	if c.RepetitionIDKey != "" {
		cfg.RepetitionIDKey = c.RepetitionIDKey
	}
	return &cfg
}

// Typemap converts Types into coercions. Call Validate first.
func (c *JobConfig) Typemap() multijob.Typemap {
	tm := make(multijob.Typemap, len(c.Types))
	for name, coercion := range c.Types {
		tm[name] = multijob.Coercion(coercion)
	}
	return tm
}

func coercionNames() string {
	names := make([]string, len(multijob.Coercions))
	for i, c := range multijob.Coercions {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
