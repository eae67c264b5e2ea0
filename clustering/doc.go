// SPDX-License-Identifier: MIT

// Package clustering groups nodes by structure rather than by modularity.
//
//	Spectral       - normalized-Laplacian embedding + k-means (gonum mat.EigenSym).
//	Hierarchical   - agglomerative single/complete/average linkage over
//	                 shortest-path distances; Dendrogram.Cut and CutHeight
//	                 flatten the result.
//	KCore          - core numbers by bucket peeling.
//	ClusteringCoefficient, AverageClusteringCoefficient - local triangle density.
//
// Every function reads the undirected projection of the graph. A non-positive
// cluster count yields ErrBadOption, which wraps core.ErrInvalidParameter.
package clustering
