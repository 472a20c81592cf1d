package verify_test

import (
	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/distlut"
	"github.com/sarchlab/mapper/maptable"
	"github.com/sarchlab/mapper/ruleset"
	"github.com/sarchlab/mapper/taskgraph"
)

type coreOracle struct {
	ruleset.Default
}

func (coreOracle) IsMappable(c *arch.Component) bool {
	return c.Primitive == "core"
}

func buildFixture(n int) (*maptable.MapTable, *distlut.LUT) {
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
			WithDestination(arch.NewPath(arch.NewAddress(i + 1).Key(), "in")))
	}

	oracle := coreOracle{}
	nodes := []taskgraph.Node{taskgraph.NewNode("rep")}
	classOf, classes := maptable.Partition(nodes, oracle)
	nodesByClass := maptable.NodesByClass(nodes, classOf)
	pt := maptable.BuildPathTable(top, oracle)
	mt, err := maptable.BuildMapTable(pt, classes, nodesByClass, oracle)
	if err != nil {
		panic(err)
	}
	neighbors := distlut.BuildFromAdjacencyMap(distlut.BuildAdjacency(top))
	dist := distlut.Build(top.Addresses(), neighbors)
	return mt, dist
}
