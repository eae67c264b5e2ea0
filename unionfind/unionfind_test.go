// SPDX-License-Identifier: MIT
package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/unionfind"
)

func TestSingletons(t *testing.T) {
	uf := unionfind.New("a", "b", "c", "a")
	assert.Equal(t, 3, uf.Count())
	assert.Equal(t, 3, uf.Len())
	assert.False(t, uf.Add("b"))
	assert.True(t, uf.Add("d"))
	assert.Equal(t, 4, uf.Count())
}

func TestUnionAndCount(t *testing.T) {
	uf := unionfind.New(1, 2, 3, 4, 5)
	merged, err := uf.Union(1, 2)
	require.NoError(t, err)
	assert.True(t, merged)
	merged, _ = uf.Union(2, 1)
	assert.False(t, merged, "no-op union")
	assert.Equal(t, 4, uf.Count())

	_, _ = uf.Union(3, 4)
	_, _ = uf.Union(4, 1)
	assert.Equal(t, 2, uf.Count())

	size, err := uf.SetSize(3)
	require.NoError(t, err)
	assert.Equal(t, 4, size)
	assert.Equal(t, [][]int{{1, 2, 3, 4}, {5}}, uf.Sets())
}

func TestUnknownElement(t *testing.T) {
	uf := unionfind.New("a")
	_, err := uf.Find("x")
	assert.ErrorIs(t, err, unionfind.ErrElementNotFound)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = uf.Union("a", "x")
	assert.ErrorIs(t, err, unionfind.ErrElementNotFound)
	_, err = uf.Connected("x", "a")
	assert.ErrorIs(t, err, unionfind.ErrElementNotFound)
}

// TestEquivalenceLaws checks reflexivity, symmetry and transitivity of
// Connected, and that Count equals the number of distinct roots, after a
// random union sequence.
func TestEquivalenceLaws(t *testing.T) {
	const n = 60
	rng := rand.New(rand.NewSource(42))
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	uf := unionfind.New(elems...)
	for i := 0; i < 40; i++ {
		_, err := uf.Union(rng.Intn(n), rng.Intn(n))
		require.NoError(t, err)
	}

	conn := func(a, b int) bool {
		ok, err := uf.Connected(a, b)
		require.NoError(t, err)
		return ok
	}
	roots := map[int]struct{}{}
	for a := 0; a < n; a++ {
		assert.True(t, conn(a, a))
		r, _ := uf.Find(a)
		roots[r] = struct{}{}
		for b := 0; b < n; b++ {
			assert.Equal(t, conn(a, b), conn(b, a))
			if !conn(a, b) {
				continue
			}
			for c := 0; c < n; c += 7 {
				if conn(b, c) {
					assert.True(t, conn(a, c))
				}
			}
		}
	}
	assert.Equal(t, len(roots), uf.Count())
	assert.Len(t, uf.Sets(), uf.Count())
}

func TestLongChainDoesNotRecurse(t *testing.T) {
	const n = 200000
	uf := unionfind.New[int]()
	for i := 0; i < n; i++ {
		uf.Add(i)
	}
	for i := 1; i < n; i++ {
		_, _ = uf.Union(i-1, i)
	}
	ok, err := uf.Connected(0, n-1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, uf.Count())
}
