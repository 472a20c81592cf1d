// Package mapper exposes the programmatic entry points, `Place` and
// `Route`, that wire the placement and routing subsystems together over
// a shared Map (spec.md §6).
package mapper

import (
	"github.com/rs/xid"

	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/distlut"
	"github.com/sarchlab/mapper/maptable"
	"github.com/sarchlab/mapper/placement"
	"github.com/sarchlab/mapper/routing"
	"github.com/sarchlab/mapper/ruleset"
	"github.com/sarchlab/mapper/taskgraph"
)

// Map pairs a TopLevel architecture with a Taskgraph and the derived
// lookup structures, placement result, and routing result (spec.md §3,
// "Map").
type Map struct {
	Top       *arch.TopLevel
	Taskgraph *taskgraph.Taskgraph
	Oracle    ruleset.Oracle

	Classes      []maptable.ClassInfo
	ClassOf      map[string]maptable.ClassID
	NodesByClass map[maptable.ClassID][]taskgraph.Node

	PathTable *maptable.PathTable
	MapTable  *maptable.MapTable
	Distance  *distlut.LUT

	Placement       *placement.State
	NodeIndexByName map[string]int

	Graph    *routing.Graph
	Channels []routing.Channel

	Metrics Metrics
}

// New builds a Map's static structures (path/map tables, distance LUT)
// from an architecture and task graph, ready for Place. This corresponds
// to spec.md §2's "A, B feed C" data flow, performed once up front.
func New(top *arch.TopLevel, tg *taskgraph.Taskgraph, oracle ruleset.Oracle) (*Map, error) {
	classOf, classes := maptable.Partition(tg.Nodes(), oracle)
	nodesByClass := maptable.NodesByClass(tg.Nodes(), classOf)

	pt := maptable.BuildPathTable(top, oracle)
	mt, err := maptable.BuildMapTable(pt, classes, nodesByClass, oracle)
	if err != nil {
		return nil, err
	}

	neighbors := distlut.BuildFromAdjacencyMap(distlut.BuildAdjacency(top))
	dist := distlut.Build(top.Addresses(), neighbors)

	return &Map{
		Top:          top,
		Taskgraph:    tg,
		Oracle:       oracle,
		Classes:      classes,
		ClassOf:      classOf,
		NodesByClass: nodesByClass,
		PathTable:    pt,
		MapTable:     mt,
		Distance:     dist,
		Metrics:      Metrics{RunID: xid.New().String()},
	}, nil
}

// NodePath returns the architecture Path a placed node currently
// occupies, for use by routing-channel construction.
func (m *Map) NodePath(nodeName string) (arch.Path, bool) {
	idx, ok := m.NodeIndexByName[nodeName]
	if !ok {
		return "", false
	}
	loc := m.Placement.Location(idx)
	slotPath, ok := m.PathTable.Slot(loc.Address, loc.Slot)
	if !ok {
		return "", false
	}
	return slotPath, true
}

// NodePaths returns NodePath for every task-graph node, for
// routing.BuildChannels.
func (m *Map) NodePaths() map[string]arch.Path {
	out := make(map[string]arch.Path, len(m.Taskgraph.Nodes()))
	for _, n := range m.Taskgraph.Nodes() {
		if p, ok := m.NodePath(n.Name); ok {
			out[n.Name] = p
		}
	}
	return out
}
