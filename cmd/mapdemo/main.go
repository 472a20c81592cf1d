// Command mapdemo places and routes a two-tile producer/consumer task
// graph onto a minimal linear fabric, mirroring the shape of the
// teacher's sample drivers: build the domain objects, run placement and
// routing (each builds its own engine inside mapper), print, exit.
package main

import (
	"fmt"
	"os"

	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/mapper"
	"github.com/sarchlab/mapper/ruleset"
	"github.com/sarchlab/mapper/taskgraph"
	"github.com/sarchlab/mapper/verify"
	"github.com/tebeka/atexit"
)

// demoRuleSet treats only components tagged "core" as mappable slots;
// every other dispatch point keeps ruleset.Default's behavior.
type demoRuleSet struct {
	ruleset.Default
}

func (demoRuleSet) IsMappable(c *arch.Component) bool {
	return c.Primitive == "core"
}

// buildFabric constructs a 1x2 linear fabric: two single-core tiles
// joined by a capacity-1 link from tile 0's output to tile 1's input.
func buildFabric() *arch.TopLevel {
	top := arch.NewTopLevel("demo-fabric", 1, "demo")

	tile0 := buildCoreTile()
	tile1 := buildCoreTile()

	top.SetTile(arch.NewAddress(0), tile0)
	top.SetTile(arch.NewAddress(1), tile1)

	// Links are owned by a component, not floated at the TopLevel; attach
	// the inter-tile link to tile0 since it is tile0's output that feeds it.
	link := arch.NewLink("link0to1").
		WithSource(arch.NewPath("0", "out")).
		WithDestination(arch.NewPath("1", "in")).
		WithCapacity(1)
	tile0.AddLink(link)

	return top
}

func buildCoreTile() *arch.Component {
	core := arch.NewComponent("core").WithPrimitive("core")
	core.AddPort(arch.NewPort("in", arch.Input))
	core.AddPort(arch.NewPort("out", arch.Output))
	return core
}

func buildTaskgraph() *taskgraph.Taskgraph {
	tg := taskgraph.New("producer-consumer")
	tg.AddNode(taskgraph.NewNode("producer"))
	tg.AddNode(taskgraph.NewNode("consumer"))
	tg.AddEdge(taskgraph.NewEdge("producer", "consumer"))
	return tg
}

func main() {
	top := buildFabric()
	tg := buildTaskgraph()
	oracle := demoRuleSet{}

	m, err := mapper.New(top, tg, oracle)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	m, err = mapper.Place(m, mapper.PlaceOptions{
		Seed:                 1,
		MoveAttempts:         200,
		InitialTemperature:   1.0,
		WarmTargetAcceptance: 0.96,
		MaxHop:               2,
		MaxRounds:            50,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	m, err = mapper.Route(m, mapper.RouteOptions{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	fmt.Printf("run_id=%s placement_objective=%v routing_passed=%v routing_error=%v routing_global_links=%d\n",
		m.Metrics.RunID, m.Metrics.PlacementObjective, m.Metrics.RoutingPassed, m.Metrics.RoutingError, m.Metrics.RoutingGlobalLinks)

	placementIssues := verify.VerifyPlacement(m.Placement, m.MapTable)
	verify.NewReport(placementIssues).WriteReport(os.Stdout)

	atexit.Exit(0)
}
