// SPDX-License-Identifier: MIT
//
// File: adapter.go
// Role: read-only bridge that materializes a CSRGraph from any Reader on
// first use and serves the Reader surface from it.

package csr

import (
	"iter"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphengine/core"
)

// compile-time check
var _ core.Reader[string] = (*Adapter[string])(nil)

// AdapterOption configures an Adapter.
type AdapterOption func(*adapterConfig)

type adapterConfig struct {
	logger zerolog.Logger
}

// WithLogger routes conversion diagnostics to logger (default zerolog.Nop()).
func WithLogger(logger zerolog.Logger) AdapterOption {
	return func(c *adapterConfig) { c.logger = logger }
}

// Adapter wraps a source Reader and converts it to CSR exactly once, on the
// first read. Later source mutations are invisible until Rebuild.
//
// A conversion error (an inconsistent source) is sticky: the adapter then
// behaves as an empty graph and Snapshot reports the error.
type Adapter[K comparable] struct {
	src    core.Reader[K]
	logger zerolog.Logger

	once sync.Once
	mu   sync.Mutex
	snap *CSRGraph[K]
	err  error
}

// NewAdapter returns an Adapter over src. No conversion happens yet.
func NewAdapter[K comparable](src core.Reader[K], opts ...AdapterOption) *Adapter[K] {
	cfg := adapterConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Adapter[K]{src: src, logger: cfg.logger}
}

func (a *Adapter[K]) convert() {
	start := time.Now()
	snap, err := FromReader(a.src)
	if err != nil {
		a.logger.Error().Err(err).Msg("csr conversion failed")
		snap = &CSRGraph[K]{directed: a.src.Directed(), index: map[K]int{}, out: rows{offsets: []int{0}}}
		snap.in = snap.out
	} else {
		a.logger.Debug().
			Int("nodes", snap.NodeCount()).
			Int("edges", snap.EdgeCount()).
			Bool("weighted", snap.Weighted()).
			Dur("elapsed", time.Since(start)).
			Msg("csr snapshot built")
	}
	a.mu.Lock()
	a.snap, a.err = snap, err
	a.mu.Unlock()
}

func (a *Adapter[K]) current() *CSRGraph[K] {
	a.once.Do(a.convert)
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.snap
}

// Snapshot returns the materialized CSRGraph, converting on first call.
func (a *Adapter[K]) Snapshot() (*CSRGraph[K], error) {
	snap := a.current()
	a.mu.Lock()
	defer a.mu.Unlock()

	return snap, a.err
}

// Rebuild discards the current snapshot and converts the source again.
func (a *Adapter[K]) Rebuild() (*CSRGraph[K], error) {
	a.once.Do(func() {})
	a.convert()

	return a.Snapshot()
}

// Directed reports whether the source is directed.
func (a *Adapter[K]) Directed() bool { return a.current().Directed() }

// NodeCount returns the snapshot node count.
func (a *Adapter[K]) NodeCount() int { return a.current().NodeCount() }

// EdgeCount returns the snapshot logical edge count.
func (a *Adapter[K]) EdgeCount() int { return a.current().EdgeCount() }

// HasNode reports snapshot membership.
func (a *Adapter[K]) HasNode(id K) bool { return a.current().HasNode(id) }

// HasEdge reports snapshot adjacency.
func (a *Adapter[K]) HasEdge(from, to K) bool { return a.current().HasEdge(from, to) }

// Nodes yields snapshot nodes.
func (a *Adapter[K]) Nodes() iter.Seq[K] { return a.current().Nodes() }

// Neighbors yields snapshot neighbors.
func (a *Adapter[K]) Neighbors(id K) iter.Seq2[K, float64] { return a.current().Neighbors(id) }

// InNeighbors yields snapshot in-neighbors.
func (a *Adapter[K]) InNeighbors(id K) iter.Seq2[K, float64] { return a.current().InNeighbors(id) }

// OutDegree returns snapshot out-degree.
func (a *Adapter[K]) OutDegree(id K) (int, error) { return a.current().OutDegree(id) }

// InDegree returns snapshot in-degree.
func (a *Adapter[K]) InDegree(id K) (int, error) { return a.current().InDegree(id) }
