// Package taskgraph defines the dataflow task graph consumed by placement
// and routing: named nodes, typed edges between sets of nodes, and
// precomputed in/out adjacency.
package taskgraph

// Node is a task node: a name plus opaque metadata. The core never
// interprets metadata values; only the ruleset.Oracle dispatch does.
type Node struct {
	Name     string
	Metadata map[string]any
}

// NewNode creates a Node with empty metadata.
func NewNode(name string) Node {
	return Node{Name: name, Metadata: make(map[string]any)}
}

// Edge is a task-graph edge: a set of source task names, a set of sink
// task names, and opaque metadata. An edge with more than one source or
// sink is a MultiChannel once placed (see package placement).
type Edge struct {
	Sources  []string
	Sinks    []string
	Metadata map[string]any
}

// NewEdge creates a two-endpoint edge from src to dst.
func NewEdge(src, dst string) Edge {
	return Edge{Sources: []string{src}, Sinks: []string{dst}, Metadata: make(map[string]any)}
}

// NewMultiEdge creates an edge with multiple sources and/or sinks.
func NewMultiEdge(sources, sinks []string) Edge {
	return Edge{Sources: sources, Sinks: sinks, Metadata: make(map[string]any)}
}

// IsMulti reports whether the edge has more than one source or sink.
func (e Edge) IsMulti() bool {
	return len(e.Sources) > 1 || len(e.Sinks) > 1
}

// Taskgraph is a name-keyed collection of nodes plus an edge list, with
// precomputed in/out adjacency lists over edge indices.
type Taskgraph struct {
	Name string

	nodes   map[string]Node
	nodeSeq []string
	edges   []Edge

	outAdj map[string][]int
	inAdj  map[string][]int
}

// New creates an empty Taskgraph.
func New(name string) *Taskgraph {
	return &Taskgraph{
		Name:   name,
		nodes:  make(map[string]Node),
		outAdj: make(map[string][]int),
		inAdj:  make(map[string][]int),
	}
}

// AddNode inserts a node. It panics on a duplicate name.
func (g *Taskgraph) AddNode(n Node) *Taskgraph {
	if _, exists := g.nodes[n.Name]; exists {
		panic("taskgraph: construction error: duplicate node " + n.Name)
	}
	if n.Metadata == nil {
		n.Metadata = make(map[string]any)
	}
	g.nodes[n.Name] = n
	g.nodeSeq = append(g.nodeSeq, n.Name)
	return g
}

// AddEdge appends an edge and updates adjacency, returning its index.
func (g *Taskgraph) AddEdge(e Edge) int {
	for _, s := range e.Sources {
		if _, ok := g.nodes[s]; !ok {
			panic("taskgraph: construction error: edge references unknown source " + s)
		}
	}
	for _, s := range e.Sinks {
		if _, ok := g.nodes[s]; !ok {
			panic("taskgraph: construction error: edge references unknown sink " + s)
		}
	}
	if e.Metadata == nil {
		e.Metadata = make(map[string]any)
	}
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	for _, s := range e.Sources {
		g.outAdj[s] = append(g.outAdj[s], idx)
	}
	for _, s := range e.Sinks {
		g.inAdj[s] = append(g.inAdj[s], idx)
	}
	return idx
}

// Node looks up a node by name.
func (g *Taskgraph) Node(name string) (Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Nodes returns nodes in insertion order.
func (g *Taskgraph) Nodes() []Node {
	out := make([]Node, len(g.nodeSeq))
	for i, name := range g.nodeSeq {
		out[i] = g.nodes[name]
	}
	return out
}

// NodeNames returns node names in insertion order.
func (g *Taskgraph) NodeNames() []string {
	out := make([]string, len(g.nodeSeq))
	copy(out, g.nodeSeq)
	return out
}

// Edges returns every edge in insertion order.
func (g *Taskgraph) Edges() []Edge {
	return g.edges
}

// Edge returns the edge at the given index.
func (g *Taskgraph) Edge(idx int) Edge {
	return g.edges[idx]
}

// OutEdges returns the indices of edges for which nodeName is a source.
func (g *Taskgraph) OutEdges(nodeName string) []int {
	return g.outAdj[nodeName]
}

// InEdges returns the indices of edges for which nodeName is a sink.
func (g *Taskgraph) InEdges(nodeName string) []int {
	return g.inAdj[nodeName]
}
