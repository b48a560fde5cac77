package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/waypath/pathfinder"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Engine   Engine   `yaml:"engine"`
	Logging  Logging  `yaml:"logging"`
	Metrics  Metrics  `yaml:"metrics"`
	Scenario Scenario `yaml:"scenario"`
}

// Engine holds session timings.
type Engine struct {
	PacingDelay    time.Duration `yaml:"pacing_delay" validate:"gte=0"`
	RevealInterval time.Duration `yaml:"reveal_interval" validate:"gt=0"`
	PauseQuantum   time.Duration `yaml:"pause_quantum" validate:"gt=0"`
}

// Logging selects the zap level and encoding.
type Logging struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
	Output string `yaml:"output" validate:"required"`
}

// Metrics configures the Prometheus collector.
type Metrics struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"required_if=Enabled true,omitempty,metricname"`
	Addr      string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Point is a grid cell coordinate.
type Point struct {
	X int `yaml:"x" validate:"gte=0"`
	Y int `yaml:"y" validate:"gte=0"`
}

// String formats p as (x,y).
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Default returns the built-in configuration. It has no scenario grid.
func Default() *Config {
	return &Config{
		Engine: Engine{
			PacingDelay:    pathfinder.DefaultPacingDelay,
			RevealInterval: pathfinder.DefaultRevealInterval,
			PauseQuantum:   pathfinder.DefaultPauseQuantum,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		Metrics: Metrics{
			Namespace: "waypath",
		},
		Scenario: Scenario{
			Connectivity:  "conn4",
			CellSize:      1,
			LandThreshold: 1,
		},
	}
}

// Validate checks struct tags, then the scenario as a whole.
// Every failure wraps ErrInvalid.
func (c *Config) Validate() error {
	v, err := newValidator()
	if err != nil {
		return err
	}
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}

			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}

		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Scenario.validate(); err != nil {
		return fmt.Errorf("%w: scenario: %w", ErrInvalid, err)
	}

	return nil
}

// PathfinderOptions maps the engine settings onto pathfinder options.
func (c *Config) PathfinderOptions(log *zap.Logger, m *pathfinder.Metrics) []pathfinder.Option {
	opts := []pathfinder.Option{
		pathfinder.WithPacingDelay(c.Engine.PacingDelay),
		pathfinder.WithRevealInterval(c.Engine.RevealInterval),
		pathfinder.WithPauseQuantum(c.Engine.PauseQuantum),
		pathfinder.WithLogger(log),
	}
	if m != nil {
		opts = append(opts, pathfinder.WithMetrics(m))
	}

	return opts
}

// metricName matches a valid Prometheus metric name prefix.
var metricName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// customTags are the validation tags the config structs use beyond the
// validator built-ins.
var customTags = map[string]validator.Func{
	"metricname": func(fl validator.FieldLevel) bool {
		return metricName.MatchString(fl.Field().String())
	},
}

// newValidator reports field names by their yaml keys and knows customTags.
func newValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := registerTags(v, customTags); err != nil {
		return nil, err
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v, nil
}

// registerTags registers every tag in tags on v.
func registerTags(v *validator.Validate, tags map[string]validator.Func) error {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validator: %w", tag, err)
		}
	}

	return nil
}
