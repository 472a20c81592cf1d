package placement

import (
	"fmt"

	"github.com/sarchlab/mapper/distlut"
	"github.com/sarchlab/mapper/maptable"
)

// AddressCostFunc returns the optional per-location penalty (spec.md
// §4.E, "Address cost"). It defaults to zero when unset.
type AddressCostFunc func(loc Location) float64

// AuxCostFunc returns an optional global scalar derived from the full
// placement state. It is only ever invoked in full-map contexts (never
// from a bare node-pair delta), per spec.md §4.E.
type AuxCostFunc func(s *State) float64

// State owns the mutable placement: nodes, channels, the map/distance
// tables they're checked and costed against, the grid, and optional
// address/aux cost hooks (spec.md §4.C).
type State struct {
	Nodes    []*Node
	Channels []Channel

	MapTable *maptable.MapTable
	Distance *distlut.LUT

	// grid maps a Location.Key() to the occupying node index. Absence of
	// a key means the location is empty; this is equivalent to the
	// spec's "grid[loc] == 0 means empty" sentinel scheme but avoids
	// colliding the sentinel with a legitimate node index 0.
	grid map[string]int

	AddressCost AddressCostFunc
	AuxCost     AuxCostFunc
}

// New creates a placement State over the given nodes and channels. Nodes
// must not yet be assigned a Location; call Assign for each node index
// before running the SA driver.
func New(nodes []*Node, channels []Channel, mt *maptable.MapTable, dist *distlut.LUT) *State {
	return &State{
		Nodes:    nodes,
		Channels: channels,
		MapTable: mt,
		Distance: dist,
		grid:     make(map[string]int),
	}
}

// IllegalAssignmentError reports a slot that is not in the node's class's
// valid-slot set (spec.md §3 legality invariant).
type IllegalAssignmentError struct {
	NodeIndex int
	Location  Location
}

func (e *IllegalAssignmentError) Error() string {
	return fmt.Sprintf("placement: node %d cannot legally occupy %s", e.NodeIndex, e.Location.Key())
}

// OccupiedError reports an attempt to assign/move onto an already-occupied
// location.
type OccupiedError struct {
	Location Location
	Occupant int
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("placement: location %s is occupied by node %d", e.Location.Key(), e.Occupant)
}

// legal reports whether class may occupy loc per the map table.
func (s *State) legal(class maptable.ClassID, loc Location) bool {
	for _, slot := range s.MapTable.ValidSlots(class, loc.Address) {
		if slot == loc.Slot {
			return true
		}
	}
	return false
}

// Assign places node i at loc for the first time. The grid update is
// synchronous with the node mutation, preserving the consistency
// invariant at every step (spec.md §4.C).
func (s *State) Assign(i int, loc Location) error {
	n := s.Nodes[i]
	if !s.legal(n.Class, loc) {
		return &IllegalAssignmentError{NodeIndex: i, Location: loc}
	}
	if occ, ok := s.grid[loc.Key()]; ok {
		return &OccupiedError{Location: loc, Occupant: occ}
	}
	n.Location = loc
	s.grid[loc.Key()] = i
	return nil
}

// Move relocates node i to loc, which must currently be empty. Use Swap
// to exchange two occupied locations.
func (s *State) Move(i int, loc Location) error {
	n := s.Nodes[i]
	if !s.legal(n.Class, loc) {
		return &IllegalAssignmentError{NodeIndex: i, Location: loc}
	}
	if occ, ok := s.grid[loc.Key()]; ok {
		return &OccupiedError{Location: loc, Occupant: occ}
	}
	delete(s.grid, n.Location.Key())
	n.Location = loc
	s.grid[loc.Key()] = i
	return nil
}

// Swap exchanges the locations of nodes i and j. Both new assignments are
// legality-checked before either mutation happens, so a rejected swap
// leaves the state untouched.
func (s *State) Swap(i, j int) error {
	ni, nj := s.Nodes[i], s.Nodes[j]
	if !s.legal(ni.Class, nj.Location) {
		return &IllegalAssignmentError{NodeIndex: i, Location: nj.Location}
	}
	if !s.legal(nj.Class, ni.Location) {
		return &IllegalAssignmentError{NodeIndex: j, Location: ni.Location}
	}

	li, lj := ni.Location, nj.Location
	ni.Location, nj.Location = lj, li
	s.grid[li.Key()] = j
	s.grid[lj.Key()] = i
	return nil
}

// Location returns the current location of node i.
func (s *State) Location(i int) Location {
	return s.Nodes[i].Location
}

// Class returns the equivalence class of node i.
func (s *State) Class(i int) maptable.ClassID {
	return s.Nodes[i].Class
}

// OccupantAt returns the node index occupying loc, if any.
func (s *State) OccupantAt(loc Location) (int, bool) {
	i, ok := s.grid[loc.Key()]
	return i, ok
}

// GridSize returns the number of occupied grid cells, for verifier use.
func (s *State) GridSize() int {
	return len(s.grid)
}

// EachOccupied invokes f for every occupied (Location, node index) pair.
func (s *State) EachOccupied(f func(loc Location, nodeIndex int)) {
	for _, n := range s.Nodes {
		if idx, ok := s.grid[n.Location.Key()]; ok {
			f(n.Location, idx)
		}
	}
}
