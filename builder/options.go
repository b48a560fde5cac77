// SPDX-License-Identifier: MIT
// Package: waypath/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand/v2"

// Default cell values; they match gridgraph's default LandThreshold of 1.
const (
	DefaultWall  = 0
	DefaultFloor = 1
)

// Corners selects where Start and Goal are placed.
type Corners int

const (
	// Diagonal puts Start top-left and Goal bottom-right (default).
	Diagonal Corners = iota
	// AntiDiagonal puts Start top-right and Goal bottom-left.
	AntiDiagonal
)

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per Build call.
type builderConfig struct {
	rng     *rand.Rand
	wall    int
	floor   int
	corners Corners
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{wall: DefaultWall, floor: DefaultFloor}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic PCG source from seed.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithValues sets the wall and floor cell values. Panics unless wall < floor,
// since gridgraph treats values below the threshold as walls.
func WithValues(wall, floor int) BuilderOption {
	if wall >= floor {
		panic("builder: WithValues(wall>=floor)")
	}

	return func(c *builderConfig) { c.wall, c.floor = wall, floor }
}

// WithCorners selects the Start/Goal placement.
func WithCorners(k Corners) BuilderOption {
	return func(c *builderConfig) { c.corners = k }
}
