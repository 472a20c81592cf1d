package taskgraph_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mapper/taskgraph"
)

var _ = Describe("Taskgraph", func() {
	var g *taskgraph.Taskgraph

	BeforeEach(func() {
		g = taskgraph.New("demo")
		g.AddNode(taskgraph.NewNode("producer"))
		g.AddNode(taskgraph.NewNode("consumer"))
	})

	It("panics on a duplicate node name", func() {
		Expect(func() {
			g.AddNode(taskgraph.NewNode("producer"))
		}).To(Panic())
	})

	It("panics when an edge references an unknown node", func() {
		Expect(func() {
			g.AddEdge(taskgraph.NewEdge("producer", "ghost"))
		}).To(Panic())
	})

	It("maintains out/in adjacency by node name", func() {
		idx := g.AddEdge(taskgraph.NewEdge("producer", "consumer"))

		Expect(g.OutEdges("producer")).To(Equal([]int{idx}))
		Expect(g.InEdges("consumer")).To(Equal([]int{idx}))
		Expect(g.OutEdges("consumer")).To(BeEmpty())
	})

	It("reports multi-endpoint edges via IsMulti", func() {
		two := taskgraph.NewEdge("producer", "consumer")
		multi := taskgraph.NewMultiEdge([]string{"producer"}, []string{"producer", "consumer"})

		Expect(two.IsMulti()).To(BeFalse())
		Expect(multi.IsMulti()).To(BeTrue())
	})

	It("preserves node and edge insertion order", func() {
		g.AddEdge(taskgraph.NewEdge("producer", "consumer"))

		Expect(g.NodeNames()).To(Equal([]string{"producer", "consumer"}))
		Expect(g.Edges()).To(HaveLen(1))
	})
})
