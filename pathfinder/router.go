// Package pathfinder implements the negotiated-congestion router: an
// iterative rip-up/reroute sweep over shared routing resources, using
// present- and history-congestion penalties to converge channels toward
// a legal routing (spec.md §4.I).
package pathfinder

import (
	"container/heap"
	"math"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mapper/routing"
	"github.com/sarchlab/mapper/ruleset"
)

// Options configures the penalty-update formulas and iteration budget.
type Options struct {
	MaxIterations int
	HFactor       float64 // history-cost growth per overused unit
	PInitial      float64 // present-penalty base
	PGrowth       float64 // present-penalty growth per iteration
}

// DefaultOptions returns the literal defaults used when Options is left
// unset.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 50,
		HFactor:       1.0,
		PInitial:      1.0,
		PGrowth:       1.1,
	}
}

// ConnectivityError reports that a channel has no path from any start
// group to every stop group, ignoring congestion (spec.md §7,
// RoutingConnectivityError). It is reported once per channel and does
// not abort the run; the channel is left unrouted.
type ConnectivityError struct {
	ChannelIndex int
	EdgeIndex    int
}

func (e *ConnectivityError) Error() string {
	return "pathfinder: channel has no connectivity ignoring congestion"
}

// CongestionError reports that Pathfinder exhausted its iteration budget
// while some vertex remained overused (spec.md §7, RoutingCongestionError).
type CongestionError struct {
	Iterations int
}

func (e *CongestionError) Error() string {
	return "pathfinder: exhausted iteration budget with unresolved congestion"
}

// Router drives the rip-up/reroute sweep as a ticking component: one
// Tick performs one full sweep over every channel plus the penalty
// update, mirroring the teacher's one-Tick-per-round driver pattern.
type Router struct {
	*sim.TickingComponent

	graph    *routing.Graph
	channels []routing.Channel
	oracle   ruleset.Oracle
	options  Options

	iteration int
	passed    bool
	done      bool

	ConnectivityErrors []ConnectivityError
	lastCongested      bool
}

// Builder constructs a Router, following the teacher's
// WithEngine/WithFreq/Build shape.
type Builder struct {
	engine   sim.Engine
	freq     sim.Freq
	graph    *routing.Graph
	channels []routing.Channel
	oracle   ruleset.Oracle
	options  Options
}

// NewBuilder creates a Builder with default options.
func NewBuilder() Builder {
	return Builder{options: DefaultOptions()}
}

// WithEngine sets the simulation engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the ticking frequency.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithGraph attaches the resource graph to route over.
func (b Builder) WithGraph(g *routing.Graph) Builder {
	b.graph = g
	return b
}

// WithChannels attaches the channels to route, in priority order.
func (b Builder) WithChannels(channels []routing.Channel) Builder {
	b.channels = channels
	return b
}

// WithOracle attaches the mappability oracle (used for can_use checks).
func (b Builder) WithOracle(oracle ruleset.Oracle) Builder {
	b.oracle = oracle
	return b
}

// WithOptions overrides the penalty-update formulas and iteration cap.
func (b Builder) WithOptions(o Options) Builder {
	b.options = o
	return b
}

// Build constructs the Router.
func (b Builder) Build(name string) *Router {
	r := &Router{
		graph:    b.graph,
		channels: b.channels,
		oracle:   b.oracle,
		options:  b.options,
	}
	r.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, r)
	return r
}

// Passed reports whether the most recently completed sweep left no
// vertex overused.
func (r *Router) Passed() bool {
	return r.passed
}

// Iterations returns the number of sweeps run so far.
func (r *Router) Iterations() int {
	return r.iteration
}

// Channels returns the router's channels, with their installed routes.
func (r *Router) Channels() []routing.Channel {
	return r.channels
}

// Tick runs one full rip-up/reroute sweep plus the penalty update.
// madeProgress is false once routing has terminated, successfully or
// not (spec.md §4.I).
func (r *Router) Tick() (madeProgress bool) {
	if r.done {
		return false
	}

	r.iteration++
	r.ConnectivityErrors = nil

	for i := range r.channels {
		r.sweepOne(i)
	}

	r.graph.UpdatePenalties(r.iteration, r.options.HFactor, r.options.PInitial, r.options.PGrowth)

	if !r.graph.AnyOverused() {
		r.passed = true
		r.done = true
		return true
	}
	if r.iteration >= r.options.MaxIterations {
		r.passed = false
		r.done = true
		return true
	}

	return true
}

// sweepOne rips up and reroutes a single channel (spec.md §4.I step 1).
func (r *Router) sweepOne(idx int) {
	ch := &r.channels[idx]

	if ch.Route != nil {
		r.graph.RipUp(idx, ch.Route)
	}

	route, ok := r.search(ch.EdgeIndex, *ch)
	if !ok {
		r.ConnectivityErrors = append(r.ConnectivityErrors, ConnectivityError{
			ChannelIndex: idx,
			EdgeIndex:    ch.EdgeIndex,
		})
		ch.Route = nil
		return
	}

	ch.Route = route
	r.graph.Install(idx, route)
}

// heapItem is one entry of the Dijkstra-style frontier priority queue.
type heapItem struct {
	vertex routing.VertexID
	dist   float64
}

type frontier []heapItem

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(heapItem)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// search runs the multi-source, multi-sink shortest-path expansion for
// channel ch and returns the union of retraced predecessor chains from
// the nearest settled vertex of each stop group back to a start group — the classic
// Pathfinder tree-growth construction (spec.md §4.I step 1.b). ok is
// false when some stop group was never reached, ignoring congestion: a
// connectivity error.
func (r *Router) search(edgeIndex int, ch routing.Channel) ([]routing.VertexID, bool) {
	n := r.graph.NumVertices()
	dist := make([]float64, n)
	pred := make([]routing.VertexID, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		pred[i] = -1
	}

	pq := &frontier{}
	heap.Init(pq)

	isStart := make(map[routing.VertexID]bool)
	for _, group := range ch.StartGroups {
		for _, v := range group {
			if !isStart[v] {
				isStart[v] = true
				dist[v] = 0
				heap.Push(pq, heapItem{vertex: v, dist: 0})
			}
		}
	}

	settled := make([]routing.VertexID, 0)
	stopSettled := make([]bool, len(ch.StopGroups))
	remaining := len(ch.StopGroups)

	for pq.Len() > 0 && remaining > 0 {
		item := heap.Pop(pq).(heapItem)
		v := item.vertex
		if visited[v] {
			continue
		}
		visited[v] = true
		settled = append(settled, v)

		for gi, group := range ch.StopGroups {
			if stopSettled[gi] {
				continue
			}
			if containsVertex(group, v) {
				stopSettled[gi] = true
				remaining--
			}
		}

		for _, next := range r.graph.Out(v) {
			if visited[next] {
				continue
			}
			nextPath := r.graph.Vertex(next).Path
			if !r.oracle.CanUse(nextPath, edgeIndex) {
				continue
			}
			w := vertexWeight(r.graph.Vertex(next))
			nd := dist[v] + w
			if nd < dist[next] {
				dist[next] = nd
				pred[next] = v
				heap.Push(pq, heapItem{vertex: next, dist: nd})
			}
		}
	}

	if remaining > 0 {
		return nil, false
	}

	used := make(map[routing.VertexID]bool)
	for gi, group := range ch.StopGroups {
		if !stopSettled[gi] {
			continue
		}
		best := bestSettled(group, dist, visited)
		retrace(best, pred, used)
	}

	route := make([]routing.VertexID, 0, len(used))
	for v := range used {
		route = append(route, v)
	}
	return route, true
}

func vertexWeight(v *routing.Vertex) float64 {
	const baseCost = 1.0
	return baseCost*(1+v.PresentPenalty) + v.HistoryCost
}

func containsVertex(group []routing.VertexID, v routing.VertexID) bool {
	for _, g := range group {
		if g == v {
			return true
		}
	}
	return false
}

func bestSettled(group []routing.VertexID, dist []float64, visited []bool) routing.VertexID {
	best := routing.VertexID(-1)
	bestDist := math.Inf(1)
	for _, v := range group {
		if !visited[v] {
			continue
		}
		if dist[v] < bestDist {
			bestDist = dist[v]
			best = v
		}
	}
	return best
}

// retrace walks predecessor pointers from v back to a start vertex
// (pred == -1), adding every vertex along the way to used. Stitching
// through an already-used vertex is safe: retrace simply stops early
// since everything upstream of a shared vertex was already added by an
// earlier retrace in this sweep.
func retrace(v routing.VertexID, pred []routing.VertexID, used map[routing.VertexID]bool) {
	for v != -1 {
		if used[v] {
			return
		}
		used[v] = true
		v = pred[v]
	}
}
