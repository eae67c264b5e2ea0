// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: builder configuration and functional options.
// Defaults:
//   - idFn     = DefaultIDFn ("0", "1", ...)
//   - rng      = nil (stochastic constructors fail with ErrNeedRandSource)
//   - weightFn = DefaultWeightFn (constant 1)
//   - prefixes = "L" / "R" for bipartite sides

package builder

import (
	"math/rand"
)

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig is resolved once per BuildGraph call and passed by value
// to every constructor.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	leftPrefix  string
	rightPrefix string
}

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts in order over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }

// WithIDScheme sets the index-to-ID function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand shares r across constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh generator seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithPartitionPrefix sets the ID prefixes of the two CompleteBipartite
// sides. Empty strings keep the defaults "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}
