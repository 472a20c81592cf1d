package routing_test

import (
	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/ruleset"
	"github.com/sarchlab/mapper/taskgraph"
)

// portOracle treats "core" components as mappable slots, any port named
// "out" as a source and "in" as a sink, and gives every vertex capacity 1
// except where overridden.
type portOracle struct {
	ruleset.Default
}

func (portOracle) IsMappable(c *arch.Component) bool {
	return c.Primitive == "core"
}

func (portOracle) IsSourcePort(p arch.Path, _ taskgraph.Edge) bool {
	return p.Last() == "out"
}

func (portOracle) IsSinkPort(p arch.Path, _ taskgraph.Edge) bool {
	return p.Last() == "in"
}

func buildTwoTileFabric() *arch.TopLevel {
	top := arch.NewTopLevel("demo", 1, "demo")

	tile0 := arch.NewComponent("core").WithPrimitive("core")
	tile0.AddPort(arch.NewPort("in", arch.Input))
	tile0.AddPort(arch.NewPort("out", arch.Output))

	tile1 := arch.NewComponent("core").WithPrimitive("core")
	tile1.AddPort(arch.NewPort("in", arch.Input))
	tile1.AddPort(arch.NewPort("out", arch.Output))

	top.SetTile(arch.NewAddress(0), tile0)
	top.SetTile(arch.NewAddress(1), tile1)

	link := arch.NewLink("link0to1").
		WithSource(arch.NewPath("0", "out")).
		WithDestination(arch.NewPath("1", "in")).
		WithCapacity(1)
	tile0.AddLink(link)

	return top
}

// priorityOracle behaves like portOracle but gives every edge whose sole
// source is named low a RoutingPriority of 0 (routes first) and every
// other edge a RoutingPriority of 1.
type priorityOracle struct {
	portOracle
	low string
}

func (o priorityOracle) RoutingPriority(e taskgraph.Edge) int {
	if len(e.Sources) > 0 && e.Sources[0] == o.low {
		return 0
	}
	return 1
}

func buildProducerConsumerGraph() *taskgraph.Taskgraph {
	tg := taskgraph.New("pc")
	tg.AddNode(taskgraph.NewNode("producer"))
	tg.AddNode(taskgraph.NewNode("consumer"))
	tg.AddEdge(taskgraph.NewEdge("producer", "consumer"))
	return tg
}
