package maptable

import (
	"sort"

	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/ruleset"
)

// PathTable enumerates, for every address, the ordered list of mappable
// component paths inside that tile, found via a DFS walk of the tile's
// children filtered by oracle.IsMappable. Slot paths are absolute (their
// first step is the tile's address key), so only identical slot-path
// vectors share a backing slice; tiles at different addresses each keep
// their own.
type PathTable struct {
	slots     map[string][]arch.Path
	addresses map[string]arch.Address
	order     []arch.Address
}

// BuildPathTable constructs a PathTable for every tile in top.
func BuildPathTable(top *arch.TopLevel, oracle ruleset.Oracle) *PathTable {
	pt := &PathTable{
		slots:     make(map[string][]arch.Path),
		addresses: make(map[string]arch.Address),
	}

	intern := make(map[string][]arch.Path) // signature -> interned slice

	for _, addr := range top.Addresses() {
		key := addr.Key()
		pt.addresses[key] = addr
		pt.order = append(pt.order, addr)

		tile, ok := top.Tile(addr)
		if !ok {
			continue
		}
		paths := tile.MappablePaths(arch.TilePath(addr), oracle.IsMappable)

		sig := pathSignature(paths)
		if existing, ok := intern[sig]; ok {
			pt.slots[key] = existing
			continue
		}
		intern[sig] = paths
		pt.slots[key] = paths
	}

	return pt
}

// pathSignature builds an interning key from a slot list's full paths, so
// two lists share a slice only when every path in them is identical.
func pathSignature(paths []arch.Path) string {
	sig := ""
	for _, p := range paths {
		sig += string(p) + "\x00"
	}
	return sig
}

// Slots returns the ordered, mappable component paths inside the tile at
// addr.
func (pt *PathTable) Slots(addr arch.Address) []arch.Path {
	return pt.slots[addr.Key()]
}

// Slot returns the slot path at index idx inside the tile at addr.
func (pt *PathTable) Slot(addr arch.Address, idx int) (arch.Path, bool) {
	slots := pt.slots[addr.Key()]
	if idx < 0 || idx >= len(slots) {
		return "", false
	}
	return slots[idx], true
}

// SlotIndex returns the index of a slot path within its tile's slot list.
func (pt *PathTable) SlotIndex(addr arch.Address, slot arch.Path) (int, bool) {
	slots := pt.slots[addr.Key()]
	for i, s := range slots {
		if s == slot {
			return i, true
		}
	}
	return 0, false
}

// Addresses returns every address covered by the table, sorted by key for
// determinism.
func (pt *PathTable) Addresses() []arch.Address {
	out := make([]arch.Address, len(pt.order))
	copy(out, pt.order)
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// IsFlat reports whether every tile has at most one mappable slot, the
// condition under which Location degenerates to a bare Address (spec.md
// §3, "flat regime").
func (pt *PathTable) IsFlat() bool {
	for _, slots := range pt.slots {
		if len(slots) > 1 {
			return false
		}
	}
	return true
}
