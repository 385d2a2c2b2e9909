package datastructure

// Edge is a directed hyperlink From -> To.
type Edge struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// Graph model info
// @Description static directed link graph used by the pagerank lab.
type Graph struct {
	Nodes []string `json:"nodes" validate:"required,min=1,max=1000,dive,required"`
	Edges []Edge   `json:"edges" validate:"max=10000,dive"`
}

func NewGraph(nodes []string, edges []Edge) Graph {
	return Graph{Nodes: nodes, Edges: edges}
}

// NodeIndex returns node -> position in Nodes.
func (g Graph) NodeIndex() map[string]int {
	idx := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		idx[n] = i
	}
	return idx
}
