package placement_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/maptable"
	"github.com/sarchlab/mapper/placement"
)

var _ = Describe("ClassAwareGenerator", func() {
	It("dispatches a special class to the SpecialGenerator, ignoring radius", func() {
		mt, _ := buildChainFixture(5)
		gen := placement.NewClassAwareGenerator(mt, map[maptable.ClassID]bool{0: true})

		normalCandidates := placement.NewNormalGenerator(mt).Candidates(arch.NewAddress(0), 0, 1)
		dispatched := gen.Candidates(arch.NewAddress(0), 0, 1)

		// SpecialGenerator draws from SpecialAddresses, which is empty
		// for this fixture's single non-special class, so it must not
		// fall back to the Normal generator's radius-bounded candidates.
		Expect(dispatched).NotTo(Equal(normalCandidates))
	})

	It("dispatches a non-special class to the NormalGenerator", func() {
		mt, _ := buildChainFixture(5)
		gen := placement.NewClassAwareGenerator(mt, map[maptable.ClassID]bool{0: false})

		loc, ok := gen.Propose(rand.New(rand.NewPCG(1, 1)), arch.NewAddress(0), 0, 1)

		Expect(ok).To(BeTrue())
		Expect(arch.NewAddress(0).ChebyshevDistance(loc.Address)).To(BeNumerically("<=", 1))
	})
})
