package mapper_test

import (
	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/ruleset"
	"github.com/sarchlab/mapper/taskgraph"
)

type coreOracle struct {
	ruleset.Default
}

func (coreOracle) IsMappable(c *arch.Component) bool {
	return c.Primitive == "core"
}

func (coreOracle) IsSourcePort(p arch.Path, _ taskgraph.Edge) bool {
	return p.Last() == "out"
}

func (coreOracle) IsSinkPort(p arch.Path, _ taskgraph.Edge) bool {
	return p.Last() == "in"
}

// buildChainFabric builds a 1xn linear fabric: tile i's "out" feeds tile
// i+1's "in" over a capacity-1 link.
func buildChainFabric(n int) *arch.TopLevel {
	top := arch.NewTopLevel("chain", 1, "demo")
	for i := 0; i < n; i++ {
		tile := arch.NewComponent("core").WithPrimitive("core")
		tile.AddPort(arch.NewPort("in", arch.Input))
		tile.AddPort(arch.NewPort("out", arch.Output))
		top.SetTile(arch.NewAddress(i), tile)
	}
	for i := 0; i < n-1; i++ {
		tile, _ := top.Tile(arch.NewAddress(i))
		tile.AddLink(arch.NewLink("link").
			WithSource(arch.NewPath(arch.NewAddress(i).Key(), "out")).
			WithDestination(arch.NewPath(arch.NewAddress(i + 1).Key(), "in")).
			WithCapacity(1))
	}
	return top
}

func buildProducerConsumerGraph() *taskgraph.Taskgraph {
	tg := taskgraph.New("pc")
	tg.AddNode(taskgraph.NewNode("producer"))
	tg.AddNode(taskgraph.NewNode("consumer"))
	tg.AddEdge(taskgraph.NewEdge("producer", "consumer"))
	return tg
}
