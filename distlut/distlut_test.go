package distlut_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/distlut"
)

// buildChain builds a 1x3 linear fabric: tile i's "out" feeds tile i+1's
// "in", for i in {0,1}.
func buildChain() *arch.TopLevel {
	top := arch.NewTopLevel("chain", 1, "demo")

	for i := 0; i < 3; i++ {
		tile := arch.NewComponent("core").WithPrimitive("core")
		tile.AddPort(arch.NewPort("in", arch.Input))
		tile.AddPort(arch.NewPort("out", arch.Output))
		top.SetTile(arch.NewAddress(i), tile)
	}

	for i := 0; i < 2; i++ {
		tile, _ := top.Tile(arch.NewAddress(i))
		link := arch.NewLink("link").
			WithSource(arch.NewPath(arch.NewAddress(i).Key(), "out")).
			WithDestination(arch.NewPath(arch.NewAddress(i + 1).Key(), "in"))
		tile.AddLink(link)
	}

	return top
}

var _ = Describe("LUT", func() {
	It("derives adjacency from outward link endpoints and BFS-distances across hops", func() {
		top := buildChain()
		neighbors := distlut.BuildFromAdjacencyMap(distlut.BuildAdjacency(top))
		lut := distlut.Build(top.Addresses(), neighbors)

		Expect(lut.Distance(arch.NewAddress(0), arch.NewAddress(0))).To(Equal(0))
		Expect(lut.Distance(arch.NewAddress(0), arch.NewAddress(1))).To(Equal(1))
		Expect(lut.Distance(arch.NewAddress(0), arch.NewAddress(2))).To(Equal(2))
	})

	It("reports Unreachable for addresses outside the table", func() {
		top := buildChain()
		neighbors := distlut.BuildFromAdjacencyMap(distlut.BuildAdjacency(top))
		lut := distlut.Build(top.Addresses(), neighbors)

		Expect(lut.Distance(arch.NewAddress(0), arch.NewAddress(99))).To(Equal(distlut.Unreachable))
	})
})
