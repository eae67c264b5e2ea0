// SPDX-License-Identifier: MIT
//
// File: policy.go
// Role: optimization policy deciding whether a graph is read through its
// mutable adjacency or through a CSR snapshot.
// Policy:
//   - Pure advice. Routing changes the execution path, never a result.
//   - No global state: a Policy value is passed explicitly.

package policy

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/csr"
)

// Sentinel errors for policy construction.
var (
	// ErrUnknownPreset indicates a preset name outside Presets().
	ErrUnknownPreset = errors.New("policy: unknown preset")

	// ErrInvalidThreshold indicates a negative threshold.
	ErrInvalidThreshold = fmt.Errorf("policy: %w", core.ErrInvalidParameter)

	// ErrUnknownRepresentation indicates a forced representation name that is not recognized.
	ErrUnknownRepresentation = errors.New("policy: unknown representation")
)

// Representation is the storage an algorithm should read.
type Representation int

const (
	// Adjacency reads the mutable core.Graph directly.
	Adjacency Representation = iota
	// CSR reads an immutable compressed-sparse-row snapshot.
	CSR
)

// String returns the representation name used in policy documents.
func (r Representation) String() string {
	if r == CSR {
		return "csr"
	}

	return "adjacency"
}

// Preset names.
const (
	PresetDefault     = "default"
	PresetPerformance = "performance"
	PresetBalanced    = "balanced"
	PresetMemory      = "memory"
)

// Policy holds the thresholds at which CSR becomes the recommended
// representation. A zero threshold disables that criterion.
type Policy struct {
	// Preset names the preset this policy started from.
	Preset string `yaml:"preset" json:"preset"`

	// CSRNodeThreshold recommends CSR once NodeCount >= this value.
	CSRNodeThreshold int `yaml:"csr_node_threshold" json:"csr_node_threshold"`

	// CSREdgeThreshold recommends CSR once EdgeCount >= this value.
	CSREdgeThreshold int `yaml:"csr_edge_threshold" json:"csr_edge_threshold"`

	// Force, when "csr" or "adjacency", overrides the thresholds.
	Force string `yaml:"force,omitempty" json:"force,omitempty"`
}

var presets = map[string]Policy{
	PresetDefault:     {Preset: PresetDefault, CSRNodeThreshold: 10_000, CSREdgeThreshold: 50_000},
	PresetPerformance: {Preset: PresetPerformance, CSRNodeThreshold: 1_000, CSREdgeThreshold: 5_000},
	PresetBalanced:    {Preset: PresetBalanced, CSRNodeThreshold: 5_000, CSREdgeThreshold: 25_000},
	PresetMemory:      {Preset: PresetMemory, CSRNodeThreshold: 100_000, CSREdgeThreshold: 500_000},
}

// Presets returns the known preset names, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Default returns the "default" preset.
func Default() Policy { return presets[PresetDefault] }

// Option overrides a field of a Policy.
type Option func(*Policy)

// WithCSRNodeThreshold overrides the node threshold.
func WithCSRNodeThreshold(n int) Option {
	return func(p *Policy) { p.CSRNodeThreshold = n }
}

// WithCSREdgeThreshold overrides the edge threshold.
func WithCSREdgeThreshold(n int) Option {
	return func(p *Policy) { p.CSREdgeThreshold = n }
}

// WithForce pins the recommendation to r regardless of size.
func WithForce(r Representation) Option {
	return func(p *Policy) { p.Force = r.String() }
}

// New starts from the named preset ("" means default), applies opts and
// validates the result.
func New(preset string, opts ...Option) (Policy, error) {
	if preset == "" {
		preset = PresetDefault
	}
	p, ok := presets[strings.ToLower(preset)]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPreset, preset, strings.Join(Presets(), ", "))
	}
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}

// Validate checks thresholds and the forced representation.
func (p Policy) Validate() error {
	if p.CSRNodeThreshold < 0 || p.CSREdgeThreshold < 0 {
		return fmt.Errorf("%w: thresholds must be >= 0 (nodes=%d, edges=%d)",
			ErrInvalidThreshold, p.CSRNodeThreshold, p.CSREdgeThreshold)
	}
	switch strings.ToLower(p.Force) {
	case "", "csr", "adjacency":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRepresentation, p.Force)
	}
}

// Recommend returns the representation advised for a graph of the given size.
func (p Policy) Recommend(nodes, edges int) Representation {
	switch strings.ToLower(p.Force) {
	case "csr":
		return CSR
	case "adjacency":
		return Adjacency
	}
	if p.CSRNodeThreshold > 0 && nodes >= p.CSRNodeThreshold {
		return CSR
	}
	if p.CSREdgeThreshold > 0 && edges >= p.CSREdgeThreshold {
		return CSR
	}

	return Adjacency
}

// RouteOption configures Route.
type RouteOption func(*routeConfig)

type routeConfig struct {
	logger zerolog.Logger
}

// WithLogger records routing decisions on logger (default zerolog.Nop()).
func WithLogger(logger zerolog.Logger) RouteOption {
	return func(c *routeConfig) { c.logger = logger }
}

// Route returns g itself when p recommends Adjacency, otherwise a csr.Adapter
// over g. Either way the returned Reader exposes the same nodes, neighbors
// and order, so algorithm results do not depend on the route.
func Route[K comparable](g core.Reader[K], p Policy, opts ...RouteOption) core.Reader[K] {
	cfg := routeConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes, edges := g.NodeCount(), g.EdgeCount()
	rep := p.Recommend(nodes, edges)
	cfg.logger.Debug().
		Str("preset", p.Preset).
		Int("nodes", nodes).
		Int("edges", edges).
		Stringer("representation", rep).
		Msg("graph routed")
	if rep == Adjacency {
		return g
	}

	return csr.NewAdapter(g, csr.WithLogger(cfg.logger))
}
