// SPDX-License-Identifier: MIT

package clustering

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// kmeans runs Lloyd's algorithm with k-means++ seeding and returns the
// cluster of every point and the number of iterations. Ties go to the lower
// centroid; an emptied cluster keeps its previous centroid.
func kmeans(points [][]float64, k, maxIter int, rng *rand.Rand) ([]int, int) {
	n := len(points)
	assign := make([]int, n)
	if n == 0 {
		return assign, 0
	}
	for i := range assign {
		assign[i] = -1
	}
	centers := seedCenters(points, k, rng)

	iter := 0
	for iter < maxIter {
		iter++
		changed := false
		for i, p := range points {
			if c := nearest(centers, p); c != assign[i] {
				assign[i] = c
				changed = true
			}
		}
		if !changed {
			break
		}

		dim := len(points[0])
		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, p := range points {
			floats.Add(sums[assign[i]], p)
			counts[assign[i]]++
		}
		for c := range centers {
			if counts[c] > 0 {
				floats.Scale(1/float64(counts[c]), sums[c])
				centers[c] = sums[c]
			}
		}
	}

	return assign, iter
}

// seedCenters picks k initial centers with k-means++: each next center is
// drawn with probability proportional to its squared distance from the
// nearest chosen one. When every remaining distance is zero the first
// unchosen point is taken.
func seedCenters(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	chosen := make([]bool, n)
	first := rng.Intn(n)
	chosen[first] = true
	centers := [][]float64{append([]float64(nil), points[first]...)}

	d2 := make([]float64, n)
	for i := range d2 {
		d2[i] = math.Inf(1)
	}
	for len(centers) < k {
		last := centers[len(centers)-1]
		total := 0.0
		for i, p := range points {
			d := floats.Distance(p, last, 2)
			d2[i] = min(d2[i], d*d)
			if !chosen[i] {
				total += d2[i]
			}
		}

		pick := -1
		if total > 0 {
			r := rng.Float64() * total
			for i := range points {
				if chosen[i] {
					continue
				}
				pick = i
				if r -= d2[i]; r <= 0 {
					break
				}
			}
		} else {
			for i := range points {
				if !chosen[i] {
					pick = i
					break
				}
			}
		}
		chosen[pick] = true
		centers = append(centers, append([]float64(nil), points[pick]...))
	}

	return centers
}

func nearest(centers [][]float64, p []float64) int {
	best, bestD := 0, math.Inf(1)
	for c, ctr := range centers {
		if d := floats.Distance(p, ctr, 2); d < bestD {
			best, bestD = c, d
		}
	}

	return best
}
