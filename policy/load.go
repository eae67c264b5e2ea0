// SPDX-License-Identifier: MIT

package policy

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// document mirrors the YAML policy file. Pointer fields distinguish an
// explicit 0 (criterion disabled) from an omitted key.
type document struct {
	Preset           string `yaml:"preset"`
	CSRNodeThreshold *int   `yaml:"csr_node_threshold"`
	CSREdgeThreshold *int   `yaml:"csr_edge_threshold"`
	Force            string `yaml:"force"`
}

// Parse decodes a YAML policy document: the named preset (default when
// omitted) with any thresholds present in the document overriding it.
//
//	preset: balanced
//	csr_node_threshold: 2000
func Parse(data []byte) (Policy, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Policy{}, fmt.Errorf("policy: failed to parse YAML: %w", err)
	}

	var opts []Option
	if doc.CSRNodeThreshold != nil {
		opts = append(opts, WithCSRNodeThreshold(*doc.CSRNodeThreshold))
	}
	if doc.CSREdgeThreshold != nil {
		opts = append(opts, WithCSREdgeThreshold(*doc.CSREdgeThreshold))
	}
	if doc.Force != "" {
		force := doc.Force
		opts = append(opts, func(p *Policy) { p.Force = force })
	}

	return New(doc.Preset, opts...)
}

// Load reads and parses a YAML policy file.
func Load(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("policy: failed to read file %s: %w", path, err)
	}

	return Parse(data)
}

// Marshal renders p as a YAML document Parse accepts.
func Marshal(p Policy) ([]byte, error) {
	return yaml.Marshal(p)
}
