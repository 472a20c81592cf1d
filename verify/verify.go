// Package verify implements the placement and routing invariant checks
// (spec.md §4.J): consistency of the grid, legality of every assignment,
// and, for routing, group reachability and capacity compliance.
package verify

import (
	"fmt"

	"github.com/sarchlab/mapper/maptable"
	"github.com/sarchlab/mapper/placement"
	"github.com/sarchlab/mapper/routing"
)

// IssueType classifies a verifier finding.
type IssueType int

// Issue types.
const (
	GridInconsistency IssueType = iota
	DuplicateSlot
	IllegalAssignment
	MissingStartGroup
	MissingStopGroup
	IllegalVertexUse
	VertexOverCapacity
)

func (t IssueType) String() string {
	switch t {
	case GridInconsistency:
		return "grid-inconsistency"
	case DuplicateSlot:
		return "duplicate-slot"
	case IllegalAssignment:
		return "illegal-assignment"
	case MissingStartGroup:
		return "missing-start-group"
	case MissingStopGroup:
		return "missing-stop-group"
	case IllegalVertexUse:
		return "illegal-vertex-use"
	case VertexOverCapacity:
		return "vertex-over-capacity"
	default:
		return "unknown"
	}
}

// Issue is a single verifier finding.
type Issue struct {
	Type       IssueType
	NodeIndex  int
	ChannelIdx int
	Message    string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s", i.Type, i.Message)
}

// VerifyPlacement checks the grid-node consistency, no-two-nodes-share-a-slot,
// and legality invariants (spec.md §4.J, §8 properties 1-2).
func VerifyPlacement(s *placement.State, mt *maptable.MapTable) []Issue {
	var issues []Issue

	seen := make(map[string]int)
	for idx, n := range s.Nodes {
		key := n.Location.Key()
		if other, ok := seen[key]; ok {
			issues = append(issues, Issue{
				Type:      DuplicateSlot,
				NodeIndex: idx,
				Message:   fmt.Sprintf("node %d and node %d both occupy %s", other, idx, key),
			})
			continue
		}
		seen[key] = idx

		occ, ok := s.OccupantAt(n.Location)
		if !ok || occ != idx {
			issues = append(issues, Issue{
				Type:      GridInconsistency,
				NodeIndex: idx,
				Message:   fmt.Sprintf("node %d at %s is not reflected in the grid", idx, key),
			})
		}

		legal := false
		for _, slot := range mt.ValidSlots(n.Class, n.Location.Address) {
			if slot == n.Location.Slot {
				legal = true
				break
			}
		}
		if !legal {
			issues = append(issues, Issue{
				Type:      IllegalAssignment,
				NodeIndex: idx,
				Message:   fmt.Sprintf("node %d's class may not occupy %s", idx, key),
			})
		}
	}

	return issues
}

// VerifyRouting checks that every channel's installed route touches at
// least one vertex of every start and stop group, every vertex it uses
// satisfies can_use, and no vertex is over capacity (spec.md §4.J, §8
// properties 6-8).
func VerifyRouting(g *routing.Graph, channels []routing.Channel, canUse func(idx int, v routing.VertexID) bool) []Issue {
	var issues []Issue

	for idx, ch := range channels {
		routeSet := make(map[routing.VertexID]bool, len(ch.Route))
		for _, v := range ch.Route {
			routeSet[v] = true
		}

		for gi, group := range ch.StartGroups {
			if !anyIn(group, routeSet) {
				issues = append(issues, Issue{
					Type:       MissingStartGroup,
					ChannelIdx: idx,
					Message:    fmt.Sprintf("channel %d's route misses start group %d", idx, gi),
				})
			}
		}
		for gi, group := range ch.StopGroups {
			if !anyIn(group, routeSet) {
				issues = append(issues, Issue{
					Type:       MissingStopGroup,
					ChannelIdx: idx,
					Message:    fmt.Sprintf("channel %d's route misses stop group %d", idx, gi),
				})
			}
		}

		for _, v := range ch.Route {
			if canUse != nil && !canUse(idx, v) {
				issues = append(issues, Issue{
					Type:       IllegalVertexUse,
					ChannelIdx: idx,
					Message:    fmt.Sprintf("channel %d uses vertex %d which it may not", idx, v),
				})
			}
		}
	}

	for i := 0; i < g.NumVertices(); i++ {
		v := g.Vertex(routing.VertexID(i))
		if v.Congested() {
			issues = append(issues, Issue{
				Type:    VertexOverCapacity,
				Message: fmt.Sprintf("vertex %s has occupancy %d over capacity %d", v.Path, v.Occupancy(), v.Capacity),
			})
		}
	}

	return issues
}

func anyIn(group []routing.VertexID, set map[routing.VertexID]bool) bool {
	for _, v := range group {
		if set[v] {
			return true
		}
	}
	return false
}
