// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphengine/clustering"
	"github.com/katalvlaran/graphengine/components"
	"github.com/katalvlaran/graphengine/matching"
)

// Stats is the report printed by "graphkit stats".
type Stats struct {
	Directed       bool    `json:"directed"`
	Nodes          int     `json:"nodes"`
	Edges          int     `json:"edges"`
	SelfLoops      int     `json:"self_loops"`
	Isolated       int     `json:"isolated"`
	MaxDegree      int     `json:"max_degree"`
	Density        float64 `json:"density"`
	Components     int     `json:"components"`
	Largest        int     `json:"largest_component"`
	Degeneracy     int     `json:"degeneracy"`
	AvgClustering  float64 `json:"average_clustering"`
	Bipartite      bool    `json:"bipartite"`
	Representation string  `json:"representation"`
	Preset         string  `json:"policy_preset"`
}

func newStatsCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the graph in --file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := s.load()
			if err != nil {
				return err
			}
			gs := in.graph.Stats()
			st := Stats{
				Directed:       gs.Directed,
				Nodes:          gs.NodeCount,
				Edges:          gs.EdgeCount,
				SelfLoops:      gs.SelfLoopCount,
				Isolated:       gs.IsolatedNodeCount,
				MaxDegree:      gs.MaxDegree,
				Density:        gs.Density,
				Bipartite:      matching.IsBipartite(in.reader),
				Representation: in.policy.Recommend(gs.NodeCount, gs.EdgeCount).String(),
				Preset:         in.policy.Preset,
			}

			cc, err := components.Connected(in.reader)
			if err != nil {
				return err
			}
			st.Components, st.Largest = cc.Count(), len(cc.Largest())
			kc, err := clustering.KCore(in.reader)
			if err != nil {
				return err
			}
			st.Degeneracy = kc.Degeneracy
			if st.AvgClustering, err = clustering.AverageClusteringCoefficient(in.reader); err != nil {
				return err
			}

			return s.print(cmd, st)
		},
	}
}
