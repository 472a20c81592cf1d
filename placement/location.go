// Package placement owns the mutable placement state (spec.md §4.C), the
// move generator (§4.D), and the cost model (§4.E) used by the SA driver.
package placement

import (
	"strconv"

	"github.com/sarchlab/mapper/arch"
)

// Location is an assigned (address, slot) pair. In the flat regime (every
// tile has at most one mappable slot) Slot is always 0 and Location is
// interchangeable with its Address; see MapTable.IsFlat.
type Location struct {
	Address arch.Address
	Slot    int
}

// NewLocation builds a Location.
func NewLocation(addr arch.Address, slot int) Location {
	return Location{Address: addr, Slot: slot}
}

// Key returns a stable, comparable encoding suitable for use as a map key.
func (l Location) Key() string {
	return l.Address.Key() + "#" + strconv.Itoa(l.Slot)
}

// Equal reports whether two locations are identical.
func (l Location) Equal(o Location) bool {
	return l.Slot == o.Slot && l.Address.Equal(o.Address)
}
