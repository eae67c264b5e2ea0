// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Edge and Config types and the
// Reader capability set shared by every algorithm package.
//
// This file declares sentinel errors, configuration options, edge/node
// options and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when parallel edges are disabled.
//	ErrInvalidTopology     - an algorithm precondition on the graph shape is violated.
//	ErrInvalidParameter    - an algorithm parameter is out of its legal domain.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations. Algorithm packages wrap these
// with %w so callers can branch with errors.Is across the whole engine.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when parallel edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: parallel edges not allowed")

	// ErrInvalidTopology indicates an algorithm precondition on the graph was violated
	// (directed input to an undirected-only algorithm, disconnected input, ...).
	ErrInvalidTopology = errors.New("core: invalid topology")

	// ErrInvalidParameter indicates an algorithm parameter outside its domain
	// (non-positive k, damping outside [0,1], ...). It is a kind of ErrInvalidTopology.
	ErrInvalidParameter = fmt.Errorf("%w: invalid parameter", ErrInvalidTopology)
)

// DefaultEdgeWeight is the weight assigned by AddEdge when WithWeight is not supplied.
const DefaultEdgeWeight = 1.0

// ViolationPolicy decides what AddEdge does with an insertion that breaks
// the graph's self-loop or parallel-edge policy.
type ViolationPolicy int

const (
	// ViolationError rejects the insertion with ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
	ViolationError ViolationPolicy = iota

	// ViolationIgnore rejects the insertion silently; AddEdge returns "", nil.
	ViolationIgnore

	// ViolationMerge dedupes parallel edges: the existing edge takes the new
	// weight and data, and its ID is returned. Self-loops behave as ViolationIgnore.
	ViolationMerge
)

// String returns the policy name.
func (p ViolationPolicy) String() string {
	switch p {
	case ViolationError:
		return "error"
	case ViolationIgnore:
		return "ignore"
	case ViolationMerge:
		return "merge"
	default:
		return fmt.Sprintf("ViolationPolicy(%d)", int(p))
	}
}

// Config holds the construction-time policy of a Graph. It is immutable
// once the graph exists.
type Config struct {
	// Directed selects directed edges; otherwise every edge is an unordered pair.
	Directed bool

	// AllowSelfLoops permits edges whose endpoints coincide.
	AllowSelfLoops bool

	// AllowParallelEdges permits several edges between the same ordered
	// (directed) or unordered (undirected) endpoint pair.
	AllowParallelEdges bool

	// OnViolation decides how policy-violating insertions are handled.
	OnViolation ViolationPolicy
}

// GraphOption configures a Graph before creation.
type GraphOption func(*Config)

// WithDirected sets whether edges are directed.
func WithDirected(directed bool) GraphOption {
	return func(c *Config) { c.Directed = directed }
}

// WithSelfLoops permits self-loops.
func WithSelfLoops() GraphOption {
	return func(c *Config) { c.AllowSelfLoops = true }
}

// WithParallelEdges permits parallel edges.
func WithParallelEdges() GraphOption {
	return func(c *Config) { c.AllowParallelEdges = true }
}

// WithViolationPolicy selects how policy-violating insertions are handled.
func WithViolationPolicy(p ViolationPolicy) GraphOption {
	return func(c *Config) { c.OnViolation = p }
}

// WithConfig copies an entire Config; later options still override it.
func WithConfig(cfg Config) GraphOption {
	return func(c *Config) { *c = cfg }
}

// Edge is a value copy of a stored edge. For undirected graphs From/To keep
// the orientation used at insertion time; it carries no meaning.
type Edge[K comparable] struct {
	// ID uniquely identifies this edge in its Graph ("e1", "e2", ... unless supplied).
	ID string

	// From is the source node ID.
	From K

	// To is the target node ID.
	To K

	// Weight is the edge cost/capacity; DefaultEdgeWeight unless supplied.
	Weight float64

	// Data is an arbitrary caller payload. It is not deep-copied.
	Data any
}

// IsLoop reports whether the edge is a self-loop.
func (e Edge[K]) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint opposite to id.
func (e Edge[K]) Other(id K) K {
	if e.From == id {
		return e.To
	}

	return e.From
}

// edgeSpec collects AddEdge options before the edge is materialized.
type edgeSpec struct {
	weight float64
	id     string
	data   any
}

// EdgeOption configures an edge passed to AddEdge.
type EdgeOption func(*edgeSpec)

// WithWeight sets the edge weight (default DefaultEdgeWeight).
func WithWeight(w float64) EdgeOption {
	return func(s *edgeSpec) { s.weight = w }
}

// WithEdgeID sets an explicit edge ID instead of the generated "eN".
func WithEdgeID(id string) EdgeOption {
	return func(s *edgeSpec) { s.id = id }
}

// WithEdgeData attaches a payload to the edge.
func WithEdgeData(data any) EdgeOption {
	return func(s *edgeSpec) { s.data = data }
}

// nodeSpec collects AddNode options.
type nodeSpec struct {
	data    any
	hasData bool
}

// NodeOption configures a node passed to AddNode.
type NodeOption func(*nodeSpec)

// WithNodeData attaches a payload to the node. Supplying data for an
// existing node replaces its payload (merge semantics).
func WithNodeData(data any) NodeOption {
	return func(s *nodeSpec) {
		s.data = data
		s.hasData = true
	}
}

// edgeRecord is the stored form of an edge. Records are shared by the
// adjacency lists of both endpoints.
type edgeRecord[K comparable] struct {
	id     string
	from   K
	to     K
	weight float64
	data   any
}

func (r *edgeRecord[K]) value() Edge[K] {
	return Edge[K]{ID: r.id, From: r.from, To: r.to, Weight: r.weight, Data: r.data}
}

func (r *edgeRecord[K]) other(id K) K {
	if r.from == id {
		return r.to
	}

	return r.from
}

// nodeRecord is the stored form of a node.
//
// For directed graphs out holds outgoing records and in holds incoming ones.
// For undirected graphs out holds every incident record (a self-loop once)
// and in stays empty.
type nodeRecord[K comparable] struct {
	id   K
	data any
	out  []*edgeRecord[K]
	in   []*edgeRecord[K]
}

// Graph is a mutable adjacency-list graph keyed by node IDs of type K.
//
// Nodes iterate in insertion order and each node's neighbors iterate in edge
// insertion order; both orders survive CSR conversion unchanged.
// mu guards every field below it. Readers take the read lock and copy what
// they need before yielding to callers.
type Graph[K comparable] struct {
	mu sync.RWMutex

	cfg Config

	nextEdgeID uint64
	order      []K
	nodes      map[K]*nodeRecord[K]
	edges      []*edgeRecord[K]
	edgeByID   map[string]*edgeRecord[K]

	// multiplicity[from][to] counts stored edges between the pair; undirected
	// edges are counted in both directions so HasEdge stays symmetric.
	multiplicity map[K]map[K]int
}

// NewGraph creates an empty Graph. By default the graph is undirected, has
// no self-loops, no parallel edges, and rejects violations with an error.
// Complexity: O(len(opts)).
func NewGraph[K comparable](opts ...GraphOption) *Graph[K] {
	g := &Graph[K]{
		nodes:        make(map[K]*nodeRecord[K]),
		edgeByID:     make(map[string]*edgeRecord[K]),
		multiplicity: make(map[K]map[K]int),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}
