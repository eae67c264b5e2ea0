// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newRunCmd(s *settings) *cobra.Command {
	p := &params{}
	cmd := &cobra.Command{
		Use:   "run ALGORITHM",
		Short: "Run one algorithm and print its result",
		Long: `Run one algorithm over the graph in --file and print the result as JSON.

Algorithms:
  ` + strings.Join(algorithmNames(), "\n  ") + `

Examples:
  graphkit run dijkstra -f roads.yaml --source A --target E
  graphkit run maxflow -f pipes.yaml --source s --target t --method dinic
  graphkit run linkpred -f friends.yaml --method adamic_adar --top 5`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return algorithmNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			alg, ok := registry[name]
			if !ok {
				return fmt.Errorf("%w: %q (see 'graphkit algorithms')", errUnknownAlgorithm, name)
			}
			in, err := s.load()
			if err != nil {
				return err
			}
			p.log = s.log

			start := time.Now()
			out, err := alg.run(in.reader, p)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			s.log.Debug().Str("algorithm", name).Dur("elapsed", time.Since(start)).Msg("algorithm finished")

			return s.print(cmd, out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&p.source, "source", "", "source node")
	f.StringVar(&p.target, "target", "", "target (or sink) node")
	f.IntVarP(&p.k, "k", "k", 0, "cluster or community count")
	f.StringVar(&p.method, "method", "", "variant: mst kruskal|prim, maxflow solver, strongly-connected tarjan|gonum, linkpred score")
	f.IntVar(&p.top, "top", 10, "number of link predictions to keep (0 keeps all)")
	f.Float64Var(&p.resolution, "resolution", 0, "modularity resolution (0 means 1)")
	f.StringVar(&p.linkage, "linkage", "", "hierarchical linkage: single|complete|average")
	f.BoolVar(&p.weighted, "weighted", false, "use edge weights as distances where supported")
	f.Int64Var(&p.seed, "seed", 1, "seed for randomized steps (spectral k-means)")

	return cmd
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the algorithms accepted by run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, name := range algorithmNames() {
				if _, err := fmt.Fprintf(w, "%-24s %s\n", name, registry[name].summary); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
