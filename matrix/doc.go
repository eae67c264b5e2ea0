// SPDX-License-Identifier: MIT

// Package matrix exposes dense linear-algebra views of a graph: the
// weighted adjacency matrix, the combinatorial Laplacian L = D - A and the
// symmetric normalized Laplacian I - D^-1/2 A D^-1/2.
//
// Matrices are gonum mat types indexed by graph node order, so row i of
// every view belongs to Adjacency.Nodes()[i]. Spectrum and Decompose wrap
// mat.EigenSym; spectral clustering builds its embedding on top of them.
//
// Laplacians are only defined for symmetric adjacency. A directed graph
// needs Options.Symmetrize, otherwise the call fails with ErrNotSymmetric.
package matrix
