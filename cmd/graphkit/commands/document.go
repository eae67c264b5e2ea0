// SPDX-License-Identifier: MIT
//
// File: document.go
// Role: YAML graph documents, the CLI's only input format.
//
//	directed: true
//	nodes:
//	  - id: a
//	    data: {label: start}
//	edges:
//	  - {source: a, target: b, weight: 2.5}
//
// Nodes listed under nodes are added first, in document order; edge
// endpoints not listed there are created on first use.

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/graphengine/core"
)

// ErrBadDocument indicates a graph document that parses as YAML but does
// not describe a valid graph.
var ErrBadDocument = errors.New("graphkit: invalid graph document")

// NodeID accepts scalar YAML ids (strings or numbers) and keeps their text.
type NodeID string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (id *NodeID) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		return fmt.Errorf("%w: empty node id", ErrBadDocument)
	case string:
		*id = NodeID(x)
	case map[string]any, []any:
		return fmt.Errorf("%w: node id must be a scalar, got %T", ErrBadDocument, v)
	default:
		*id = NodeID(fmt.Sprint(x))
	}

	return nil
}

// NodeDoc is one entry of the nodes list.
type NodeDoc struct {
	ID   NodeID         `yaml:"id" json:"id"`
	Data map[string]any `yaml:"data,omitempty" json:"data,omitempty"`
}

// EdgeDoc is one entry of the edges list. A missing weight means 1.
type EdgeDoc struct {
	ID     string         `yaml:"id,omitempty" json:"id,omitempty"`
	Source NodeID         `yaml:"source" json:"source"`
	Target NodeID         `yaml:"target" json:"target"`
	Weight *float64       `yaml:"weight,omitempty" json:"weight,omitempty"`
	Data   map[string]any `yaml:"data,omitempty" json:"data,omitempty"`
}

// Document is a whole graph file.
type Document struct {
	Directed      bool      `yaml:"directed" json:"directed"`
	SelfLoops     bool      `yaml:"self_loops,omitempty" json:"self_loops,omitempty"`
	ParallelEdges bool      `yaml:"parallel_edges,omitempty" json:"parallel_edges,omitempty"`
	Nodes         []NodeDoc `yaml:"nodes,omitempty" json:"nodes,omitempty"`
	Edges         []EdgeDoc `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// ParseDocument decodes a YAML (or JSON) graph document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("graphkit: failed to parse graph document: %w", err)
	}

	return &doc, nil
}

// LoadDocument reads and parses path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphkit: failed to read graph file %s: %w", path, err)
	}

	return ParseDocument(data)
}

// Graph materializes the document.
func (d *Document) Graph() (*core.Graph[string], error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.SelfLoops {
		opts = append(opts, core.WithSelfLoops())
	}
	if d.ParallelEdges {
		opts = append(opts, core.WithParallelEdges())
	}
	g := core.NewGraph[string](opts...)

	for i, n := range d.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: nodes[%d] has no id", ErrBadDocument, i)
		}
		if n.Data != nil {
			g.AddNode(string(n.ID), core.WithNodeData(n.Data))
		} else {
			g.AddNode(string(n.ID))
		}
	}
	for i, e := range d.Edges {
		if e.Source == "" || e.Target == "" {
			return nil, fmt.Errorf("%w: edges[%d] needs source and target", ErrBadDocument, i)
		}
		var eopts []core.EdgeOption
		if e.Weight != nil {
			eopts = append(eopts, core.WithWeight(*e.Weight))
		}
		if e.ID != "" {
			eopts = append(eopts, core.WithEdgeID(e.ID))
		}
		if e.Data != nil {
			eopts = append(eopts, core.WithEdgeData(e.Data))
		}
		if _, err := g.AddEdge(string(e.Source), string(e.Target), eopts...); err != nil {
			return nil, fmt.Errorf("%w: edges[%d] %s->%s: %w", ErrBadDocument, i, e.Source, e.Target, err)
		}
	}

	return g, nil
}

// DocumentOf renders g back into a Document. Edge IDs are kept so a
// round trip reproduces the graph exactly.
func DocumentOf(g *core.Graph[string]) *Document {
	cfg := g.Config()
	doc := &Document{Directed: cfg.Directed, SelfLoops: cfg.AllowSelfLoops, ParallelEdges: cfg.AllowParallelEdges}
	for _, id := range g.NodeIDs() {
		n := NodeDoc{ID: NodeID(id)}
		if data, err := g.NodeData(id); err == nil {
			if m, ok := data.(map[string]any); ok {
				n.Data = m
			}
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	for _, e := range g.Edges() {
		w := e.Weight
		ed := EdgeDoc{ID: e.ID, Source: NodeID(e.From), Target: NodeID(e.To), Weight: &w}
		if m, ok := e.Data.(map[string]any); ok {
			ed.Data = m
		}
		doc.Edges = append(doc.Edges, ed)
	}

	return doc
}
