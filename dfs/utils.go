// SPDX-License-Identifier: MIT
// Helper functions shared by cycle detection.
package dfs

import (
	"strconv"
	"strings"
)

// indexOf returns the first index of val in s, or -1 if not found.
func indexOf[K comparable](s []K, val K) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// minIndex returns the index of the smallest value in s.
func minIndex(s []int) int {
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] < s[best] {
			best = i
		}
	}

	return best
}

// rotate returns a copy of s starting at index k.
func rotate[K any](s []K, k int) []K {
	out := make([]K, 0, len(s))
	out = append(out, s[k:]...)

	return append(out, s[:k]...)
}

// signature joins positions with commas for deduplication.
func signature(pos []int) string {
	var b strings.Builder
	for i, p := range pos {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p))
	}

	return b.String()
}
