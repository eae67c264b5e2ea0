// SPDX-License-Identifier: MIT

// Package csr provides the compressed-sparse-row form of a graph and the
// Adapter that produces it on demand.
//
// A CSRGraph stores, for nodes indexed 0..n-1 in captured order:
//
//	offsets[i]..offsets[i+1]   the slice of cols/weights holding node i's row
//	cols[k]                    dense index of the k-th neighbor entry
//	weights[k]                 its weight (array omitted when every weight is 1)
//
// Directed snapshots also carry the transposed rows for InNeighbors.
//
// Both CSRGraph and Adapter implement core.Reader, so every algorithm in
// the engine runs on them unchanged and yields the same result as on the
// originating core.Graph: node order and neighbor order are preserved.
//
// A snapshot is frozen. Mutating the source graph afterwards has no effect
// until Adapter.Rebuild (or a fresh FromReader) is called.
package csr
