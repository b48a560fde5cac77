// Package config loads waypath configuration.
//
// Configuration is layered, lowest priority first:
//
//  1. Defaults in code (Default).
//  2. A YAML file (Load path); unknown keys are rejected.
//  3. WAYPATH_* environment variables.
//
// The merged Config is validated with struct tags (go-playground/validator)
// plus scenario checks that need the whole grid, such as points in bounds.
//
// A Config carries:
//
//   - Engine:   pacing delay, reveal interval and pause poll quantum.
//   - Logging:  zap level and encoding (NewLogger).
//   - Metrics:  Prometheus namespace and listen address.
//   - Scenario: a grid board, its connectivity, and start/goal/waypoint cells.
package config
