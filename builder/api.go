// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: BuildGraph orchestrator and the Constructor contract.
// Determinism:
//   - Same graph options, builder options (seed included) and constructor
//     order produce identical graphs: same node order, same edge IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// Constructor mutates g using the resolved configuration. Implementations
// validate parameters before touching g, add vertices through cfg.idFn in
// ascending index order and emit edges in a documented stable order.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts, and applies cons
// in order. The first constructor error is returned wrapped; no partial
// graph is returned.
//
// Errors: ErrConstructFailed for a nil constructor, otherwise whatever the
// failing constructor reports (ErrTooFewVertices, ErrNeedRandSource, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph, for composing fixtures onto
// a graph built elsewhere.
func Apply(g *core.Graph[string], bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs.
func addVertices(g *core.Graph[string], cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		g.AddNode(ids[i])
	}

	return ids
}

// link adds u-v with the next configured weight.
func link(g *core.Graph[string], cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, core.WithWeight(w)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s->%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
