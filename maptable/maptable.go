package maptable

import (
	"sort"
	"strconv"

	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/ruleset"
	"github.com/sarchlab/mapper/taskgraph"
)

// MapTable is, for each equivalence class, the mask of addresses and
// valid slot indices that class may occupy. Special classes additionally
// carry an explicit enumerated address list used by the restricted move
// generator (spec.md §4.B, §4.D).
type MapTable struct {
	pathTable *PathTable
	flat      bool

	validSlots map[ClassID]map[string][]int // class -> address key -> sorted valid slot indices
	special    map[ClassID][]arch.Address   // class -> explicit address list
}

// BuildMapTable constructs the MapTable for the given classes against pt,
// using oracle.CanMap to test each (class, address, slot) triple. If every
// class has at most one valid slot per address and pt.IsFlat(), the
// tables are logically bitmasks over addresses even though the storage
// below is uniform; enableFlatness callers read IsFlat() to decide
// whether to use the Address-only Location representation.
func BuildMapTable(
	pt *PathTable,
	classes []ClassInfo,
	nodesByClass map[ClassID][]taskgraph.Node,
	oracle ruleset.Oracle,
) (*MapTable, error) {
	mt := &MapTable{
		pathTable:  pt,
		flat:       pt.IsFlat(),
		validSlots: make(map[ClassID]map[string][]int),
		special:    make(map[ClassID][]arch.Address),
	}

	addrs := pt.Addresses()

	for _, info := range classes {
		rep := info.Representative
		mt.validSlots[info.ID] = make(map[string][]int)

		var specialAddrs []arch.Address

		for _, addr := range addrs {
			slots := pt.Slots(addr)
			var valid []int
			for idx, slotPath := range slots {
				if oracle.CanMap(rep, slotPath) {
					valid = append(valid, idx)
				}
			}
			if len(valid) > 0 {
				sort.Ints(valid)
				mt.validSlots[info.ID][addr.Key()] = valid
				if info.Special {
					specialAddrs = append(specialAddrs, addr)
				}
			}
		}

		if info.Special {
			mt.special[info.ID] = specialAddrs
		}

		if len(mt.validSlots[info.ID]) == 0 {
			return nil, &EmptyMapSetError{Class: info.ID, Node: rep.Name}
		}
	}

	return mt, nil
}

// EmptyMapSetError is a ConstructionError (spec.md §7): a present task
// class has no legal address/slot under the architecture.
type EmptyMapSetError struct {
	Class ClassID
	Node  string
}

func (e *EmptyMapSetError) Error() string {
	return "maptable: construction error: class " + strconv.Itoa(int(e.Class)) +
		" (e.g. node " + e.Node + ") has an empty mappable set"
}

// ValidSlots returns the sorted valid slot indices for class at addr.
func (mt *MapTable) ValidSlots(class ClassID, addr arch.Address) []int {
	return mt.validSlots[class][addr.Key()]
}

// ValidAddresses returns every address at which class has at least one
// valid slot.
func (mt *MapTable) ValidAddresses(class ClassID) []arch.Address {
	byKey := mt.validSlots[class]
	out := make([]arch.Address, 0, len(byKey))
	for _, addr := range mt.pathTable.Addresses() {
		if _, ok := byKey[addr.Key()]; ok {
			out = append(out, addr)
		}
	}
	return out
}

// SpecialAddresses returns the explicit address whitelist for a special
// class.
func (mt *MapTable) SpecialAddresses(class ClassID) []arch.Address {
	return mt.special[class]
}

// IsFlat reports whether the underlying PathTable has at most one
// mappable slot per tile.
func (mt *MapTable) IsFlat() bool {
	return mt.flat
}

// PathTable returns the underlying path table.
func (mt *MapTable) PathTable() *PathTable {
	return mt.pathTable
}
