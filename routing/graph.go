// Package routing builds the resource graph Pathfinder routes over: one
// vertex per routable architecture resource (ports and links), with each
// primitive's input→output pass-through modeled as direct port-to-port
// edges, annotated with capacity, occupancy, and congestion-penalty state
// (spec.md §4.G).
package routing

import (
	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/ruleset"
)

// VertexID is a dense index into a Graph's vertex slice.
type VertexID int

// Vertex is a single routable resource: a port or a link. It carries the
// capacity and dynamic congestion state Pathfinder reads and mutates every
// iteration.
type Vertex struct {
	ID   VertexID
	Path arch.Path

	Capacity       int
	Occupants      map[int]bool // channel index -> present
	PresentPenalty float64
	HistoryCost    float64

	out []VertexID
	in  []VertexID
}

// Occupancy returns the number of channels currently routed through v.
func (v *Vertex) Occupancy() int {
	return len(v.Occupants)
}

// Congested reports whether v is over its capacity.
func (v *Vertex) Congested() bool {
	return v.Occupancy() > v.Capacity
}

// Graph is the directed resource graph over which Pathfinder searches.
// Vertices are addressed both by Path (for construction and lookup) and
// by dense VertexID (for the hot routing loop).
type Graph struct {
	vertices []*Vertex
	byPath   map[arch.Path]VertexID
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{byPath: make(map[arch.Path]VertexID)}
}

// addVertex inserts a new vertex for path if one does not already exist,
// returning its id either way.
func (g *Graph) addVertex(path arch.Path, capacity int) VertexID {
	if id, ok := g.byPath[path]; ok {
		return id
	}
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, &Vertex{
		ID:        id,
		Path:      path,
		Capacity:  capacity,
		Occupants: make(map[int]bool),
	})
	g.byPath[path] = id
	return id
}

// addEdge records a directed edge from src to dst.
func (g *Graph) addEdge(src, dst VertexID) {
	s := g.vertices[src]
	for _, existing := range s.out {
		if existing == dst {
			return
		}
	}
	s.out = append(s.out, dst)
	g.vertices[dst].in = append(g.vertices[dst].in, src)
}

// Vertex returns the vertex for the given id.
func (g *Graph) Vertex(id VertexID) *Vertex {
	return g.vertices[id]
}

// VertexByPath resolves a vertex by its architecture path.
func (g *Graph) VertexByPath(p arch.Path) (VertexID, bool) {
	id, ok := g.byPath[p]
	return id, ok
}

// NumVertices returns the vertex count.
func (g *Graph) NumVertices() int {
	return len(g.vertices)
}

// Out returns the outgoing neighbor ids of v.
func (g *Graph) Out(v VertexID) []VertexID {
	return g.vertices[v].out
}

// In returns the incoming neighbor ids of v.
func (g *Graph) In(v VertexID) []VertexID {
	return g.vertices[v].in
}

// Build walks top's full component tree, creating a vertex for every port
// of every component (oracle.IsMappable is not consulted) and for every
// link, then wires edges along link sources→destinations and, for each
// primitive, a direct edge from every input port to every output port
// (spec.md §4.G).
func Build(top *arch.TopLevel, oracle ruleset.Oracle) *Graph {
	g := NewGraph()

	for _, addr := range top.Addresses() {
		tile, ok := top.Tile(addr)
		if !ok {
			continue
		}
		tile.Walk(arch.TilePath(addr), func(p arch.Path, comp *arch.Component) {
			g.addComponentVertices(p, comp, oracle)
		})
	}

	for _, addr := range top.Addresses() {
		tile, ok := top.Tile(addr)
		if !ok {
			continue
		}
		tile.Walk(arch.TilePath(addr), func(p arch.Path, comp *arch.Component) {
			g.wireComponentEdges(p, comp, oracle)
		})
	}

	return g
}

func (g *Graph) addComponentVertices(prefix arch.Path, comp *arch.Component, oracle ruleset.Oracle) {
	for _, port := range comp.Ports() {
		portPath := prefix.Child(port.Name)
		g.addVertex(portPath, oracle.GetCapacity(portPath))
	}
	for _, link := range comp.Links() {
		linkPath := prefix.Child(link.Name)
		g.addVertex(linkPath, link.Capacity)
	}
}

// wireComponentEdges connects every link's declared sources to its
// destinations (signal flow direction), and, for primitives, connects
// every input port to every output port through the component's own
// vertex-equivalent pass-through (modeled as a direct input→output edge,
// since a primitive with N inputs and M outputs contributes N×M
// pass-through edges rather than a separate internal vertex per pair —
// simpler than materializing O(N·M) extra vertices for the common case
// of a single-input/single-output primitive).
func (g *Graph) wireComponentEdges(prefix arch.Path, comp *arch.Component, _ ruleset.Oracle) {
	for _, link := range comp.Links() {
		linkPath := prefix.Child(link.Name)
		linkID, ok := g.VertexByPath(linkPath)
		if !ok {
			continue
		}
		for _, src := range link.Sources {
			if srcID, ok := g.VertexByPath(src); ok {
				g.addEdge(srcID, linkID)
			}
		}
		for _, dst := range link.Destinations {
			if dstID, ok := g.VertexByPath(dst); ok {
				g.addEdge(linkID, dstID)
			}
		}
	}

	if !comp.IsPrimitive() {
		return
	}

	var inputs, outputs []arch.Path
	for _, port := range comp.Ports() {
		portPath := prefix.Child(port.Name)
		if port.Direction == arch.Input {
			inputs = append(inputs, portPath)
		} else {
			outputs = append(outputs, portPath)
		}
	}
	for _, in := range inputs {
		inID, ok := g.VertexByPath(in)
		if !ok {
			continue
		}
		for _, out := range outputs {
			outID, ok := g.VertexByPath(out)
			if !ok {
				continue
			}
			g.addEdge(inID, outID)
		}
	}
}

// RipUp removes channel from every vertex's occupant set.
func (g *Graph) RipUp(channel int, route []VertexID) {
	for _, id := range route {
		delete(g.vertices[id].Occupants, channel)
	}
}

// Install adds channel to every vertex's occupant set.
func (g *Graph) Install(channel int, route []VertexID) {
	for _, id := range route {
		g.vertices[id].Occupants[channel] = true
	}
}

// UpdatePenalties applies the Pathfinder penalty-update formulas for
// iteration k (spec.md §4.I step 2):
//
//	history_cost(v)    += hFactor · max(0, occupancy(v) − capacity(v))
//	present_penalty(v)  = pInitial · pGrowth^k · max(1, occupancy(v) − capacity(v) + 1)
func (g *Graph) UpdatePenalties(k int, hFactor, pInitial, pGrowth float64) {
	growth := pow(pGrowth, k)
	for _, v := range g.vertices {
		overuse := v.Occupancy() - v.Capacity
		if overuse > 0 {
			v.HistoryCost += hFactor * float64(overuse)
		}
		factor := overuse + 1
		if factor < 1 {
			factor = 1
		}
		v.PresentPenalty = pInitial * growth * float64(factor)
	}
}

func pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// AnyOverused reports whether any vertex currently exceeds its capacity.
func (g *Graph) AnyOverused() bool {
	for _, v := range g.vertices {
		if v.Congested() {
			return true
		}
	}
	return false
}
