package routing

import (
	"sort"

	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/ruleset"
	"github.com/sarchlab/mapper/taskgraph"
)

// Channel is the routing-time counterpart of a task-graph edge: the set
// of start-group and stop-group vertices it must connect, plus the
// route installed by Pathfinder (spec.md §4.H).
type Channel struct {
	EdgeIndex int

	StartGroups [][]VertexID // one group per source task
	StopGroups  [][]VertexID // one group per sink task

	Fanout   int // len(StopGroups)
	Priority int // oracle.RoutingPriority(edge); lower routes first
	Route    []VertexID
}

// Less orders channels by ascending oracle-supplied priority, then
// ascending fanout, then ascending total group-vertex count, the
// default ordering that lets a RuleSet override which channels route
// first while still breaking ties in favor of harder channels
// (spec.md §4.H).
func (c Channel) Less(o Channel) bool {
	if c.Priority != o.Priority {
		return c.Priority < o.Priority
	}
	if c.Fanout != o.Fanout {
		return c.Fanout < o.Fanout
	}
	return c.groupSize() < o.groupSize()
}

func (c Channel) groupSize() int {
	n := 0
	for _, g := range c.StartGroups {
		n += len(g)
	}
	for _, g := range c.StopGroups {
		n += len(g)
	}
	return n
}

// BuildChannels derives a Channel for every taskgraph edge with
// oracle.NeedsRouting(edge) == true. nodePaths maps a task-graph node
// name to the Path of the architecture component it was placed on
// (the output of placement, not routing).
func BuildChannels(
	tg *taskgraph.Taskgraph,
	nodePaths map[string]arch.Path,
	g *Graph,
	oracle ruleset.Oracle,
) []Channel {
	var channels []Channel

	for idx, edge := range tg.Edges() {
		if !oracle.NeedsRouting(edge) {
			continue
		}

		ch := Channel{EdgeIndex: idx, Priority: oracle.RoutingPriority(edge)}
		for _, srcName := range edge.Sources {
			ch.StartGroups = append(ch.StartGroups, sourcePortVertices(nodePaths[srcName], edge, g, oracle))
		}
		for _, dstName := range edge.Sinks {
			ch.StopGroups = append(ch.StopGroups, sinkPortVertices(nodePaths[dstName], edge, g, oracle))
		}
		ch.Fanout = len(ch.StopGroups)

		channels = append(channels, ch)
	}

	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].Less(channels[j])
	})

	return channels
}

func sourcePortVertices(compPath arch.Path, edge taskgraph.Edge, g *Graph, oracle ruleset.Oracle) []VertexID {
	var out []VertexID
	for path, id := range g.byPath {
		if !isChildPort(compPath, path) {
			continue
		}
		if oracle.IsSourcePort(path, edge) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sinkPortVertices(compPath arch.Path, edge taskgraph.Edge, g *Graph, oracle ruleset.Oracle) []VertexID {
	var out []VertexID
	for path, id := range g.byPath {
		if !isChildPort(compPath, path) {
			continue
		}
		if oracle.IsSinkPort(path, edge) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// isChildPort reports whether path names a direct port of the component
// at compPath, i.e. path's parent equals compPath.
func isChildPort(compPath, path arch.Path) bool {
	parent, ok := path.Parent()
	return ok && parent == compPath
}
