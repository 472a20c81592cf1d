// Package distlut builds the precomputed all-pairs hop-distance table
// (spec.md §4.A) that the cost model consults in the hot placement loop:
// queries are O(1) lookups once the table is built. Each query builds the
// string keys of its two addresses, so it allocates.
package distlut

import (
	"github.com/sarchlab/mapper/arch"
)

// Unreachable is the distance returned for address pairs with no path
// between them.
const Unreachable = -1

// LUT is the all-pairs hop-distance table over a TopLevel's tile
// addresses.
type LUT struct {
	addrs []arch.Address
	index map[string]int
	dist  [][]int
}

// AdjacencyFunc returns the one-hop neighbor addresses reachable outward
// from addr. The architecture-construction layer is the natural supplier
// of this function (spec.md §1 treats it as an external collaborator); see
// BuildAdjacency for a TopLevel-derived implementation.
type AdjacencyFunc func(addr arch.Address) []arch.Address

// BuildAdjacency derives a neighbor table from a TopLevel's tiles: two
// tiles are adjacent whenever one tile's link set names a destination
// port path whose leading step is a different tile's address key.
func BuildAdjacency(top *arch.TopLevel) map[string][]arch.Address {
	neighbors := make(map[string][]arch.Address)
	seen := make(map[string]map[string]bool)

	addrs := top.Addresses()
	addrByKey := make(map[string]arch.Address, len(addrs))
	for _, a := range addrs {
		addrByKey[a.Key()] = a
	}

	for _, a := range addrs {
		key := a.Key()
		tile, ok := top.Tile(a)
		if !ok {
			continue
		}
		tile.Walk(arch.TilePath(a), func(_ arch.Path, comp *arch.Component) {
			for _, l := range comp.Links() {
				registerOutwardLinks(key, l.Destinations, addrByKey, neighbors, seen)
			}
		})
	}

	return neighbors
}

func registerOutwardLinks(
	fromKey string,
	endpoints []arch.Path,
	addrByKey map[string]arch.Address,
	neighbors map[string][]arch.Address,
	seen map[string]map[string]bool,
) {
	for _, p := range endpoints {
		steps := p.Steps()
		if len(steps) == 0 {
			continue
		}
		toKey := steps[0]
		if toKey == fromKey {
			continue
		}
		toAddr, ok := addrByKey[toKey]
		if !ok {
			continue
		}
		if seen[fromKey] == nil {
			seen[fromKey] = make(map[string]bool)
		}
		if seen[fromKey][toKey] {
			continue
		}
		seen[fromKey][toKey] = true
		neighbors[fromKey] = append(neighbors[fromKey], toAddr)
	}
}

// Build runs a BFS from every address to fill in the all-pairs hop
// distance table.
func Build(addrs []arch.Address, neighbors AdjacencyFunc) *LUT {
	l := &LUT{
		addrs: make([]arch.Address, len(addrs)),
		index: make(map[string]int, len(addrs)),
		dist:  make([][]int, len(addrs)),
	}
	for i, a := range addrs {
		l.addrs[i] = a.Clone()
		l.index[a.Key()] = i
	}

	for i, src := range l.addrs {
		l.dist[i] = make([]int, len(l.addrs))
		for j := range l.dist[i] {
			l.dist[i][j] = Unreachable
		}
		l.bfs(i, src, neighbors)
	}

	return l
}

func (l *LUT) bfs(srcIdx int, src arch.Address, neighbors AdjacencyFunc) {
	l.dist[srcIdx][srcIdx] = 0
	queue := []arch.Address{src}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curIdx := l.index[cur.Key()]
		curDist := l.dist[srcIdx][curIdx]

		for _, next := range neighbors(cur) {
			nextIdx, ok := l.index[next.Key()]
			if !ok {
				continue
			}
			if l.dist[srcIdx][nextIdx] != Unreachable {
				continue
			}
			l.dist[srcIdx][nextIdx] = curDist + 1
			queue = append(queue, next)
		}
	}
}

// BuildFromAdjacencyMap wraps a precomputed map[addressKey][]Address
// (e.g. the output of BuildAdjacency) as an AdjacencyFunc usable by Build.
func BuildFromAdjacencyMap(m map[string][]arch.Address) AdjacencyFunc {
	return func(addr arch.Address) []arch.Address {
		return m[addr.Key()]
	}
}

// Distance returns the precomputed hop distance between two addresses, or
// Unreachable if no path exists. This is an O(1) lookup; it allocates
// the two addresses' string keys (Address.Key) on every call.
func (l *LUT) Distance(a, b arch.Address) int {
	ai, aok := l.index[a.Key()]
	bi, bok := l.index[b.Key()]
	if !aok || !bok {
		return Unreachable
	}
	return l.dist[ai][bi]
}

// Addresses returns the addresses covered by the table.
func (l *LUT) Addresses() []arch.Address {
	out := make([]arch.Address, len(l.addrs))
	for i, a := range l.addrs {
		out[i] = a.Clone()
	}
	return out
}
