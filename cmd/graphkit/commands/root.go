// SPDX-License-Identifier: MIT

// Package commands implements the graphkit command tree.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/policy"
)

// settings holds the persistent flags shared by every subcommand.
type settings struct {
	file       string
	verbose    bool
	preset     string
	policyFile string
	compact    bool

	log zerolog.Logger
}

// NewRootCmd assembles the command tree. Output goes to cmd.OutOrStdout,
// logs to cmd.ErrOrStderr, so tests can capture both.
func NewRootCmd() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:   "graphkit",
		Short: "Run graph algorithms over YAML graph documents",
		Long: `graphkit loads a graph document, runs one algorithm of the
graphengine library over it and prints the result as JSON.

Example graph document (graph.yaml):
  directed: false
  nodes:
    - id: a
  edges:
    - {source: a, target: b, weight: 2}
    - {source: b, target: c}

Examples:
  graphkit run dijkstra -f graph.yaml --source a
  graphkit run louvain -f graph.yaml --policy performance -v
  graphkit stats -f graph.yaml
  graphkit generate grid --rows 3 --cols 3 > grid.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			s.log = newLogger(cmd.ErrOrStderr(), s.verbose)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&s.file, "file", "f", "", "graph document (YAML or JSON)")
	pf.BoolVarP(&s.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVar(&s.preset, "policy", "", "optimization policy preset ("+joinPresets()+")")
	pf.StringVar(&s.policyFile, "policy-file", "", "YAML policy document; overrides --policy")
	pf.BoolVar(&s.compact, "compact", false, "print single-line JSON")

	root.AddCommand(newRunCmd(s), newStatsCmd(s), newGenerateCmd(s), newAlgorithmsCmd())

	return root
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
}

func joinPresets() string { return strings.Join(policy.Presets(), ", ") }

// loadGraph reads --file.
func (s *settings) loadGraph() (*core.Graph[string], error) {
	if s.file == "" {
		return nil, fmt.Errorf("%w: --file is required", errMissingFlag)
	}
	doc, err := LoadDocument(s.file)
	if err != nil {
		return nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("file", s.file).Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("graph loaded")

	return g, nil
}

// loadPolicy resolves --policy-file, then --policy, then the default preset.
func (s *settings) loadPolicy() (policy.Policy, error) {
	if s.policyFile != "" {
		return policy.Load(s.policyFile)
	}

	return policy.New(s.preset)
}

// routed is a loaded graph, the policy in force, and the reader the
// policy selected for it.
type routed struct {
	graph  *core.Graph[string]
	policy policy.Policy
	reader core.Reader[string]
}

// load reads --file and routes it through the policy.
func (s *settings) load() (*routed, error) {
	g, err := s.loadGraph()
	if err != nil {
		return nil, err
	}
	p, err := s.loadPolicy()
	if err != nil {
		return nil, err
	}

	return &routed{graph: g, policy: p, reader: policy.Route[string](g, p, policy.WithLogger(s.log))}, nil
}

// print writes v as JSON.
func (s *settings) print(cmd *cobra.Command, v any) error {
	var (
		out []byte
		err error
	)
	if s.compact {
		out, err = json.Marshal(v)
	} else {
		out, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("graphkit: failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return err
}
