// SPDX-License-Identifier: MIT
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphengine/core"
)

const roads = `directed: false
nodes:
  - id: A
    data: {city: true}
edges:
  - {source: A, target: B, weight: 4}
  - {source: A, target: C, weight: 1}
  - {source: C, target: B, weight: 2}
  - {source: B, target: D, weight: 1}
`

const square = `edges:
  - {source: A, target: B}
  - {source: B, target: C}
  - {source: C, target: D}
  - {source: D, target: A}
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// execute runs the CLI and returns stdout, stderr and the error.
func execute(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestRunDijkstra(t *testing.T) {
	path := writeFile(t, "roads.yaml", roads)
	stdout, _, err := execute("run", "dijkstra", "-f", path, "--source", "A", "--target", "D")
	require.NoError(t, err)

	var res struct {
		Source   string              `json:"source"`
		Distance map[string]*float64 `json:"distance"`
		Path     []string            `json:"path"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, "A", res.Source)
	require.NotNil(t, res.Distance["D"])
	assert.Equal(t, 4.0, *res.Distance["D"])
	assert.Equal(t, []string{"A", "C", "B", "D"}, res.Path)
}

func TestUnreachableDistanceIsNull(t *testing.T) {
	path := writeFile(t, "split.yaml", "nodes: [{id: Z}]\nedges: [{source: A, target: B}]\n")
	stdout, _, err := execute("run", "bfs", "-f", path, "--source", "A", "--compact")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"order":["A","B"]`)

	stdout, _, err = execute("run", "dijkstra", "-f", path, "--source", "A", "--compact")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"Z":null`)
}

func TestPolicyRoutingDoesNotChangeResults(t *testing.T) {
	path := writeFile(t, "roads.yaml", roads)
	pol := writeFile(t, "policy.yaml", "preset: memory\nforce: csr\n")

	plain, _, err := execute("run", "pagerank", "-f", path)
	require.NoError(t, err)
	routed, logs, err := execute("run", "pagerank", "-f", path, "--policy-file", pol, "-v")
	require.NoError(t, err)
	assert.JSONEq(t, plain, routed)
	assert.Contains(t, logs, "graph routed")
	assert.Contains(t, logs, "csr snapshot built")

	_, _, err = execute("run", "pagerank", "-f", path, "--policy", "turbo")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	path := writeFile(t, "roads.yaml", roads)
	stdout, _, err := execute("stats", "-f", path, "--policy", "performance")
	require.NoError(t, err)

	var st Stats
	require.NoError(t, json.Unmarshal([]byte(stdout), &st))
	assert.Equal(t, 4, st.Nodes)
	assert.Equal(t, 4, st.Edges)
	assert.Equal(t, 1, st.Components)
	assert.Equal(t, 4, st.Largest)
	assert.Equal(t, 2, st.Degeneracy)
	assert.False(t, st.Bipartite)
	assert.Equal(t, "adjacency", st.Representation)
	assert.Equal(t, "performance", st.Preset)
}

func TestRunErrors(t *testing.T) {
	path := writeFile(t, "roads.yaml", roads)

	_, _, err := execute("run", "teleport", "-f", path)
	assert.ErrorIs(t, err, errUnknownAlgorithm)

	_, _, err = execute("run", "dijkstra", "-f", path)
	assert.ErrorIs(t, err, errMissingFlag)

	_, _, err = execute("run", "bfs", "--source", "A")
	assert.ErrorIs(t, err, errMissingFlag)

	_, _, err = execute("run", "dijkstra", "-f", path, "--source", "Q")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, _, err = execute("run", "maxflow", "-f", path, "--source", "A", "--target", "D", "--method", "push-relabel")
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, _, err = execute("run", "bfs", "-f", filepath.Join(t.TempDir(), "missing.yaml"), "--source", "A")
	assert.Error(t, err)
}

func TestAlgorithmsOnSquare(t *testing.T) {
	path := writeFile(t, "square.yaml", square)
	cases := [][]string{
		{"bfs", "--source", "A"},
		{"dfs", "--source", "A"},
		{"cycles"},
		{"components"},
		{"strongly-connected"},
		{"strongly-connected", "--method", "gonum"},
		{"bellman-ford", "--source", "A"},
		{"floyd-warshall"},
		{"astar", "--source", "A", "--target", "C"},
		{"degree"},
		{"closeness"},
		{"betweenness"},
		{"eigenvector"},
		{"katz"},
		{"hits"},
		{"mst", "--method", "prim", "--source", "B"},
		{"louvain"},
		{"leiden"},
		{"girvan-newman", "-k", "2"},
		{"label-propagation"},
		{"kcore"},
		{"spectral", "-k", "2"},
		{"laplacian-spectrum", "--method", "normalized"},
		{"hierarchical", "-k", "2", "--linkage", "average"},
		{"clustering-coefficient"},
		{"maxflow", "--source", "A", "--target", "C", "--method", "dinic"},
		{"matching"},
		{"linkpred", "--method", "common_neighbors", "--top", "0"},
	}
	for _, c := range cases {
		t.Run(c[0], func(t *testing.T) {
			args := append([]string{"run", c[0], "-f", path, "--compact"}, c[1:]...)
			stdout, _, err := execute(args...)
			require.NoError(t, err)
			var v map[string]any
			require.NoError(t, json.Unmarshal([]byte(stdout), &v))
			assert.NotEmpty(t, v)
		})
	}

	stdout, _, err := execute("run", "maxflow", "-f", path, "--source", "A", "--target", "C", "--compact")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"max_flow":2`)

	stdout, _, err = execute("run", "linkpred", "-f", path, "--method", "common_neighbors", "--compact")
	require.NoError(t, err)
	assert.Contains(t, stdout, `{"score":2,"u":"A","v":"C"}`)
}

func TestAlgorithmsList(t *testing.T) {
	stdout, _, err := execute("algorithms")
	require.NoError(t, err)
	for _, name := range algorithmNames() {
		assert.Contains(t, stdout, name)
	}
}

func TestGenerateRoundTrip(t *testing.T) {
	stdout, _, err := execute("generate", "grid", "--rows", "2", "--cols", "3")
	require.NoError(t, err)

	doc, err := ParseDocument([]byte(stdout))
	require.NoError(t, err)
	g, err := doc.Graph()
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 7, g.EdgeCount())
	assert.True(t, g.HasEdge("1,1", "1,2"))

	again, err := DocumentOf(g).Graph()
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), again.Edges())

	_, _, err = execute("generate", "moebius")
	assert.ErrorIs(t, err, errUnknownAlgorithm)
	_, _, err = execute("generate", "path", "--min-weight", "5", "--max-weight", "2")
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestDocumentParsing(t *testing.T) {
	doc, err := ParseDocument([]byte("directed: true\nnodes: [{id: 1}]\nedges: [{source: 1, target: 2, weight: 3, id: road}]\n"))
	require.NoError(t, err)
	g, err := doc.Graph()
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, []string{"1", "2"}, g.NodeIDs())
	e, err := g.EdgeByID("road")
	require.NoError(t, err)
	assert.Equal(t, 3.0, e.Weight)

	doc, err = ParseDocument([]byte("edges: [{source: a}]\n"))
	require.NoError(t, err)
	_, err = doc.Graph()
	assert.ErrorIs(t, err, ErrBadDocument)

	doc, err = ParseDocument([]byte("edges: [{source: a, target: a}]\n"))
	require.NoError(t, err)
	_, err = doc.Graph()
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = ParseDocument([]byte("nodes: [{id: [1, 2]}]\n"))
	assert.Error(t, err)
}

func TestLaplacianSpectrum(t *testing.T) {
	path := writeFile(t, "square.yaml", square)
	stdout, _, err := execute("run", "laplacian-spectrum", "-f", path, "--compact")
	require.NoError(t, err)
	var v struct {
		Eigenvalues []float64 `json:"eigenvalues"`
		Zeros       int       `json:"zero_eigenvalues"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &v))
	assert.InDeltaSlice(t, []float64{0, 2, 2, 4}, v.Eigenvalues, 1e-9)
	assert.Equal(t, 1, v.Zeros)

	_, _, err = execute("run", "laplacian-spectrum", "-f", path, "--method", "signless")
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestStronglyConnectedViaGonum(t *testing.T) {
	path := writeFile(t, "loops.yaml", `directed: true
edges:
  - {source: A, target: B}
  - {source: B, target: A}
  - {source: B, target: C}
  - {source: C, target: D}
  - {source: D, target: E}
  - {source: E, target: C}
  - {source: E, target: F}
`)
	type out struct {
		Count      int        `json:"count"`
		Components [][]string `json:"components"`
	}
	decode := func(method string) out {
		stdout, _, err := execute("run", "strongly-connected", "-f", path, "--method", method, "--compact")
		require.NoError(t, err)
		var v out
		require.NoError(t, json.Unmarshal([]byte(stdout), &v))
		for _, c := range v.Components {
			sort.Strings(c)
		}
		sort.Slice(v.Components, func(i, j int) bool { return v.Components[i][0] < v.Components[j][0] })

		return v
	}

	viaGonum := decode("gonum")
	assert.Equal(t, 3, viaGonum.Count)
	assert.Equal(t, [][]string{{"A", "B"}, {"C", "D", "E"}, {"F"}}, viaGonum.Components)
	assert.Equal(t, decode("tarjan"), viaGonum)

	undirected := writeFile(t, "square.yaml", square)
	stdout, _, err := execute("run", "strongly-connected", "-f", undirected, "--method", "gonum", "--compact")
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":1,"components":[["A","B","C","D"]]}`, stdout)

	_, _, err = execute("run", "strongly-connected", "-f", path, "--method", "kosaraju")
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}
