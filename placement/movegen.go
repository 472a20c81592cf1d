package placement

import (
	"math/rand/v2"

	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/maptable"
)

// Generator proposes a candidate Location for relocating a node currently
// at origin, bounded by a search radius. Ok is false when no legal
// candidate exists (spec.md §4.D).
type Generator interface {
	Propose(rng *rand.Rand, origin arch.Address, class maptable.ClassID, radius int) (Location, bool)
}

// NormalGenerator draws uniformly from the valid addresses within an L∞
// ball of radius around the node's current address, restricted to slots
// the node's class may legally occupy (spec.md §4.D, "Normal").
type NormalGenerator struct {
	MapTable *maptable.MapTable
}

// NewNormalGenerator builds a NormalGenerator over mt.
func NewNormalGenerator(mt *maptable.MapTable) *NormalGenerator {
	return &NormalGenerator{MapTable: mt}
}

// Propose implements Generator.
func (g *NormalGenerator) Propose(rng *rand.Rand, origin arch.Address, class maptable.ClassID, radius int) (Location, bool) {
	candidates := g.Candidates(origin, class, radius)
	if len(candidates) == 0 {
		return Location{}, false
	}
	return candidates[rng.IntN(len(candidates))], true
}

// Candidates implements candidateEnumerator for NormalGenerator.
func (g *NormalGenerator) Candidates(origin arch.Address, class maptable.ClassID, radius int) []Location {
	var candidates []Location
	for _, addr := range g.MapTable.ValidAddresses(class) {
		if origin.ChebyshevDistance(addr) > radius {
			continue
		}
		for _, slot := range g.MapTable.ValidSlots(class, addr) {
			candidates = append(candidates, NewLocation(addr, slot))
		}
	}
	return candidates
}

// SpecialGenerator draws uniformly from a class's explicit address
// whitelist, ignoring radius (spec.md §4.D, "Special"). Special classes
// are enumerated, not ball-searched, because their legal set is typically
// small and not contiguous.
type SpecialGenerator struct {
	MapTable *maptable.MapTable
}

// NewSpecialGenerator builds a SpecialGenerator.
func NewSpecialGenerator(mt *maptable.MapTable) *SpecialGenerator {
	return &SpecialGenerator{MapTable: mt}
}

// Propose implements Generator. origin is unused: special classes are
// not ball-restricted.
func (g *SpecialGenerator) Propose(rng *rand.Rand, _ arch.Address, class maptable.ClassID, radius int) (Location, bool) {
	candidates := g.Candidates(nil, class, radius)
	if len(candidates) == 0 {
		return Location{}, false
	}
	return candidates[rng.IntN(len(candidates))], true
}

// Candidates implements candidateEnumerator for SpecialGenerator; origin
// and radius are ignored since special classes are not ball-restricted.
func (g *SpecialGenerator) Candidates(_ arch.Address, class maptable.ClassID, _ int) []Location {
	var candidates []Location
	for _, addr := range g.MapTable.SpecialAddresses(class) {
		for _, slot := range g.MapTable.ValidSlots(class, addr) {
			candidates = append(candidates, NewLocation(addr, slot))
		}
	}
	return candidates
}

// candidateEnumerator is satisfied by generators that can list their full
// candidate set rather than just drawing one sample, which CachedGenerator
// needs in order to memoize.
type candidateEnumerator interface {
	Candidates(origin arch.Address, class maptable.ClassID, radius int) []Location
}

// cacheKey identifies a memoized candidate set by class and the address
// it was centered on; radius is tracked per-key in CachedGenerator rather
// than folded into the key, so a radius shrink can be detected and force
// a rebuild.
type cacheKey struct {
	class maptable.ClassID
	addr  string
}

type cacheEntry struct {
	radius     int
	candidates []Location
}

// CachedGenerator wraps a Generator and memoizes its candidate set per
// (class, origin address). The cache rebuilds whenever the requested
// radius is strictly smaller than the radius it was last built with,
// since a shrinking radius can exclude previously valid candidates; a
// growing or equal radius keeps the stale-but-still-valid cached set,
// on the assumption that growth only adds candidates a full rebuild
// would also have produced no faster (spec.md §4.D Open Question,
// decided in SPEC_FULL.md §4.3).
type CachedGenerator struct {
	inner Generator

	entries map[cacheKey]*cacheEntry
}

// NewCachedGenerator wraps inner with radius-aware memoization. inner
// must additionally satisfy candidateEnumerator for caching to take
// effect; otherwise Propose falls back to calling inner directly on
// every move.
func NewCachedGenerator(inner Generator) *CachedGenerator {
	return &CachedGenerator{
		inner:   inner,
		entries: make(map[cacheKey]*cacheEntry),
	}
}

// Propose implements Generator.
func (c *CachedGenerator) Propose(rng *rand.Rand, origin arch.Address, class maptable.ClassID, radius int) (Location, bool) {
	enum, ok := c.inner.(candidateEnumerator)
	if !ok {
		return c.inner.Propose(rng, origin, class, radius)
	}

	key := cacheKey{class: class, addr: origin.Key()}

	entry, cached := c.entries[key]
	if !cached || radius < entry.radius {
		entry = &cacheEntry{
			radius:     radius,
			candidates: enum.Candidates(origin, class, radius),
		}
		c.entries[key] = entry
	}

	if len(entry.candidates) == 0 {
		return Location{}, false
	}
	return entry.candidates[rng.IntN(len(entry.candidates))], true
}
