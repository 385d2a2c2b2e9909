package linkanalysis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
)

var (
	ErrInvalidDamping    = errors.New("damping factor must be within [0, 1]")
	ErrInvalidIterations = errors.New("iterations must not be negative")
)

// PageRankResult model info
// @Description final pagerank vector plus the vector after every iteration.
type PageRankResult struct {
	Nodes      []string           `json:"nodes"`
	Ranks      map[string]float64 `json:"ranks"`
	Order      []string           `json:"order"`   // nodes by descending rank, ties in node order
	History    [][]float64        `json:"history"` // history[i][j] = rank of Nodes[j] after i iterations
	Iterations int                `json:"iterations"`
}

// PageRank runs a fixed number of synchronous power iterations over graph:
//
//	rank'(v) = (1-d)/N + d * sum over u->v of rank(u)/outdeg(u)
//
// Every node starts at 1/N. Dangling nodes (outdegree 0) pass nothing on, so the
// total rank leaks below 1 when the graph has any. Parallel edges each count
// toward the outdegree.
func PageRank(graph datastructure.Graph, damping float64, iterations int) (PageRankResult, error) {
	if damping < 0 || damping > 1 {
		return PageRankResult{}, fmt.Errorf("%w: got %v", ErrInvalidDamping, damping)
	}
	if iterations < 0 {
		return PageRankResult{}, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}

	n := len(graph.Nodes)
	nodeIndex := graph.NodeIndex()
	if len(nodeIndex) != n {
		return PageRankResult{}, errors.New("graph has duplicate nodes")
	}

	outDegree := make([]int, n)
	inLinks := make([][]int, n)
	for _, e := range graph.Edges {
		from, ok := nodeIndex[e.From]
		if !ok {
			return PageRankResult{}, fmt.Errorf("edge %s -> %s: unknown node %q", e.From, e.To, e.From)
		}
		to, ok := nodeIndex[e.To]
		if !ok {
			return PageRankResult{}, fmt.Errorf("edge %s -> %s: unknown node %q", e.From, e.To, e.To)
		}
		outDegree[from]++
		inLinks[to] = append(inLinks[to], from)
	}

	result := PageRankResult{
		Nodes:      append([]string{}, graph.Nodes...),
		Ranks:      make(map[string]float64, n),
		Order:      []string{},
		History:    [][]float64{},
		Iterations: iterations,
	}
	if n == 0 {
		return result, nil
	}

	rank := make([]float64, n)
	for i := range rank {
		rank[i] = 1 / float64(n)
	}
	result.History = append(result.History, append([]float64{}, rank...))

	teleport := (1 - damping) / float64(n)
	for it := 0; it < iterations; it++ {
		next := make([]float64, n)
		for v := 0; v < n; v++ {
			inflow := 0.0
			for _, u := range inLinks[v] {
				inflow += rank[u] / float64(outDegree[u])
			}
			next[v] = teleport + damping*inflow
		}
		rank = next
		result.History = append(result.History, append([]float64{}, rank...))
	}

	for i, node := range graph.Nodes {
		result.Ranks[node] = rank[i]
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rank[order[i]] > rank[order[j]]
	})
	for _, i := range order {
		result.Order = append(result.Order, graph.Nodes[i])
	}
	return result, nil
}

// Sum is the total rank mass of a history row.
func Sum(ranks []float64) float64 {
	total := 0.0
	for _, r := range ranks {
		total += r
	}
	return total
}

// DanglingNodes returns the nodes without outgoing edges, in node order.
func DanglingNodes(graph datastructure.Graph) []string {
	hasOut := make(map[string]bool, len(graph.Nodes))
	for _, e := range graph.Edges {
		hasOut[e.From] = true
	}
	dangling := []string{}
	for _, node := range graph.Nodes {
		if !hasOut[node] {
			dangling = append(dangling, node)
		}
	}
	return dangling
}
