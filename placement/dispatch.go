package placement

import (
	"math/rand/v2"

	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/maptable"
)

// ClassAwareGenerator dispatches to a SpecialGenerator for classes
// flagged special and a NormalGenerator otherwise, the usual pairing
// described by spec.md §4.D.
type ClassAwareGenerator struct {
	Normal    *NormalGenerator
	Special   *SpecialGenerator
	IsSpecial map[maptable.ClassID]bool
}

// NewClassAwareGenerator builds a ClassAwareGenerator over mt.
func NewClassAwareGenerator(mt *maptable.MapTable, isSpecial map[maptable.ClassID]bool) *ClassAwareGenerator {
	return &ClassAwareGenerator{
		Normal:    NewNormalGenerator(mt),
		Special:   NewSpecialGenerator(mt),
		IsSpecial: isSpecial,
	}
}

// Propose implements Generator.
func (g *ClassAwareGenerator) Propose(rng *rand.Rand, origin arch.Address, class maptable.ClassID, radius int) (Location, bool) {
	if g.IsSpecial[class] {
		return g.Special.Propose(rng, origin, class, radius)
	}
	return g.Normal.Propose(rng, origin, class, radius)
}

// Candidates implements candidateEnumerator, dispatching the same way as
// Propose, so ClassAwareGenerator can itself be wrapped by CachedGenerator.
func (g *ClassAwareGenerator) Candidates(origin arch.Address, class maptable.ClassID, radius int) []Location {
	if g.IsSpecial[class] {
		return g.Special.Candidates(origin, class, radius)
	}
	return g.Normal.Candidates(origin, class, radius)
}
