package routing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/routing"
)

var _ = Describe("Build", func() {
	It("creates one vertex per port and link, wired along signal flow", func() {
		top := buildTwoTileFabric()
		g := routing.Build(top, portOracle{})

		// 2 ports per tile x 2 tiles + 1 link = 5 vertices.
		Expect(g.NumVertices()).To(Equal(5))

		out0, ok := g.VertexByPath(arch.NewPath("0", "out"))
		Expect(ok).To(BeTrue())
		linkID, ok := g.VertexByPath(arch.NewPath("0", "link0to1"))
		Expect(ok).To(BeTrue())
		in1, ok := g.VertexByPath(arch.NewPath("1", "in"))
		Expect(ok).To(BeTrue())

		Expect(g.Out(out0)).To(ContainElement(linkID))
		Expect(g.Out(linkID)).To(ContainElement(in1))
	})

	It("wires a primitive's input ports to its output ports", func() {
		top := buildTwoTileFabric()
		g := routing.Build(top, portOracle{})

		in0, _ := g.VertexByPath(arch.NewPath("0", "in"))
		out0, _ := g.VertexByPath(arch.NewPath("0", "out"))

		Expect(g.Out(in0)).To(ContainElement(out0))
	})
})

var _ = Describe("Graph occupancy and penalties", func() {
	var g *routing.Graph

	BeforeEach(func() {
		g = routing.Build(buildTwoTileFabric(), portOracle{})
	})

	It("tracks install/rip-up through vertex occupancy", func() {
		out0, _ := g.VertexByPath(arch.NewPath("0", "out"))
		route := []routing.VertexID{out0}

		g.Install(0, route)
		Expect(g.Vertex(out0).Occupancy()).To(Equal(1))

		g.RipUp(0, route)
		Expect(g.Vertex(out0).Occupancy()).To(Equal(0))
	})

	It("grows history cost and sets a present penalty for an overused vertex", func() {
		linkID, _ := g.VertexByPath(arch.NewPath("0", "link0to1"))
		g.Install(0, []routing.VertexID{linkID})
		g.Install(1, []routing.VertexID{linkID}) // capacity 1, occupancy 2: overused

		g.UpdatePenalties(1, 1.0, 1.0, 1.1)

		v := g.Vertex(linkID)
		Expect(v.HistoryCost).To(BeNumerically(">", 0))
		Expect(v.PresentPenalty).To(BeNumerically(">", 0))
		Expect(g.AnyOverused()).To(BeTrue())
	})

	It("reports not overused when no vertex exceeds its capacity", func() {
		Expect(g.AnyOverused()).To(BeFalse())
	})
})
