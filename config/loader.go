package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WAYPATH_"

// ErrEnv wraps an unparsable environment override.
var ErrEnv = errors.New("config: bad environment override")

// Load reads path (if non-empty) over Default, applies WAYPATH_* overrides
// from the process environment and validates the result.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := Decode(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if lookup != nil {
		if err := applyEnv(cfg, lookup); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode strictly decodes YAML into cfg; unknown keys are errors and keys
// absent from raw keep their current values. Empty input is not an error.
func Decode(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnv overrides engine, logging and metrics settings.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	durations := map[string]*time.Duration{
		"PACING_DELAY":    &cfg.Engine.PacingDelay,
		"REVEAL_INTERVAL": &cfg.Engine.RevealInterval,
		"PAUSE_QUANTUM":   &cfg.Engine.PauseQuantum,
	}
	for key, dst := range durations {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s: %w", ErrEnv, EnvPrefix, key, err)
		}
		*dst = d
	}

	strs := map[string]*string{
		"LOG_LEVEL":         &cfg.Logging.Level,
		"LOG_FORMAT":        &cfg.Logging.Format,
		"LOG_OUTPUT":        &cfg.Logging.Output,
		"METRICS_NAMESPACE": &cfg.Metrics.Namespace,
		"METRICS_ADDR":      &cfg.Metrics.Addr,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup(EnvPrefix + "METRICS_ENABLED"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sMETRICS_ENABLED: %w", ErrEnv, EnvPrefix, err)
		}
		cfg.Metrics.Enabled = b
	}

	return nil
}
