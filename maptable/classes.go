// Package maptable builds the Path Table (every address's ordered,
// mappable component paths) and the Map Table (per equivalence class, the
// addresses/slots that class may occupy), spec.md §4.B.
package maptable

import (
	"github.com/sarchlab/mapper/ruleset"
	"github.com/sarchlab/mapper/taskgraph"
)

// ClassID identifies a task equivalence class.
type ClassID int

// ClassInfo describes one equivalence class.
type ClassInfo struct {
	ID            ClassID
	Special       bool
	Representative taskgraph.Node
}

// Partition groups task-graph nodes into equivalence classes using
// oracle.IsEquivalent, splitting out "special" classes (oracle.IsSpecial)
// into their own, separately indexed partition as spec.md §4.B requires.
func Partition(nodes []taskgraph.Node, oracle ruleset.Oracle) (classOf map[string]ClassID, classes []ClassInfo) {
	classOf = make(map[string]ClassID, len(nodes))
	classes = nil

	for _, n := range nodes {
		special := oracle.IsSpecial(n)
		matched := -1

		for _, info := range classes {
			if info.Special != special {
				continue
			}
			if oracle.IsEquivalent(info.Representative, n) {
				matched = int(info.ID)
				break
			}
		}

		if matched == -1 {
			id := ClassID(len(classes))
			classes = append(classes, ClassInfo{ID: id, Special: special, Representative: n})
			matched = int(id)
		}

		classOf[n.Name] = ClassID(matched)
	}

	return classOf, classes
}

// NodesByClass groups nodes by their assigned class.
func NodesByClass(nodes []taskgraph.Node, classOf map[string]ClassID) map[ClassID][]taskgraph.Node {
	out := make(map[ClassID][]taskgraph.Node)
	for _, n := range nodes {
		c := classOf[n.Name]
		out[c] = append(out[c], n)
	}
	return out
}
