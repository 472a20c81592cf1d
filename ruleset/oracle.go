// Package ruleset defines the mappability-oracle collaborator trait: the
// dispatch table a RuleSet tag selects, answering every architecture/
// task-graph question the placement and routing engines need without ever
// reflecting on architecture or task-graph metadata themselves.
//
// This is dispatch over a small closed capability set, not class
// inheritance: concrete implementations embed Default and override only
// the methods where their policy differs from it.
package ruleset

import (
	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/taskgraph"
)

// Oracle is the collaborator trait. Implementations supply the
// architecture- and task-graph-specific policy that the core placement and
// routing engines are otherwise agnostic to.
type Oracle interface {
	// IsEquivalent reports whether two task nodes belong to the same
	// placement equivalence class and may therefore share a map-table.
	IsEquivalent(a, b taskgraph.Node) bool

	// IsSpecial reports whether a task node's class is "special": pinned
	// to an explicit, pre-enumerated address list rather than a general
	// mask.
	IsSpecial(n taskgraph.Node) bool

	// IsMappable reports whether a component is a valid placement slot.
	IsMappable(c *arch.Component) bool

	// CanMap reports whether a task node may legally occupy the
	// component at the given path.
	CanMap(n taskgraph.Node, slot arch.Path) bool

	// CanUse reports whether a routing vertex may carry traffic for the
	// given task-graph edge index.
	CanUse(vertex arch.Path, edgeIndex int) bool

	// GetCapacity returns the traffic capacity of a routing vertex.
	GetCapacity(vertex arch.Path) int

	// IsSourcePort reports whether a port is a valid source (exit) for
	// the given task-graph edge.
	IsSourcePort(port arch.Path, edge taskgraph.Edge) bool

	// IsSinkPort reports whether a port is a valid sink (entry) for the
	// given task-graph edge.
	IsSinkPort(port arch.Path, edge taskgraph.Edge) bool

	// NeedsRouting reports whether an edge requires a physical route at
	// all (some edges, e.g. self-loops onto the same slot, may not).
	NeedsRouting(edge taskgraph.Edge) bool

	// Annotate returns opaque metadata to attach to a routing vertex at
	// construction time. The core never interprets the returned map.
	Annotate(vertex arch.Path) map[string]any

	// RoutingPriority returns the priority used to order channel routing
	// within a Pathfinder sweep; lower values route first.
	RoutingPriority(edge taskgraph.Edge) int
}

// Default implements Oracle with every method defaulting to true /
// capacity 1, except IsSpecial which defaults to false, matching the
// defaults documented for the collaborator trait. Embed Default in a
// concrete RuleSet and override only what differs.
type Default struct{}

// IsEquivalent defaults to true: every node shares one equivalence class.
func (Default) IsEquivalent(_, _ taskgraph.Node) bool { return true }

// IsSpecial defaults to false.
func (Default) IsSpecial(_ taskgraph.Node) bool { return false }

// IsMappable defaults to true: every component is a valid slot.
func (Default) IsMappable(_ *arch.Component) bool { return true }

// CanMap defaults to true: every node may occupy every slot.
func (Default) CanMap(_ taskgraph.Node, _ arch.Path) bool { return true }

// CanUse defaults to true: every vertex may carry every channel.
func (Default) CanUse(_ arch.Path, _ int) bool { return true }

// GetCapacity defaults to 1.
func (Default) GetCapacity(_ arch.Path) int { return 1 }

// IsSourcePort defaults to true.
func (Default) IsSourcePort(_ arch.Path, _ taskgraph.Edge) bool { return true }

// IsSinkPort defaults to true.
func (Default) IsSinkPort(_ arch.Path, _ taskgraph.Edge) bool { return true }

// NeedsRouting defaults to true.
func (Default) NeedsRouting(_ taskgraph.Edge) bool { return true }

// Annotate defaults to nil.
func (Default) Annotate(_ arch.Path) map[string]any { return nil }

// RoutingPriority defaults to 0 for every edge.
func (Default) RoutingPriority(_ taskgraph.Edge) int { return 0 }
