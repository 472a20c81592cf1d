package mapper

import (
	"time"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mapper/pathfinder"
	"github.com/sarchlab/mapper/routing"
)

// RouteOptions configures Route (spec.md §6).
type RouteOptions struct {
	MaxIterations int
	HFactor       float64
	PInitial      float64
	PGrowth       float64
}

// Route builds the routing graph and channels from the already-placed
// Map, then runs Pathfinder to a fixed point or failure (spec.md §6,
// `route(map) -> map'`).
func Route(m *Map, opts RouteOptions) (*Map, error) {
	structStart := time.Now()
	m.Graph = routing.Build(m.Top, m.Oracle)
	m.Channels = routing.BuildChannels(m.Taskgraph, m.NodePaths(), m.Graph, m.Oracle)
	m.Metrics.RoutingStructTime = time.Since(structStart).Seconds()
	m.Metrics.RoutingStructBytes = approxBytes(m.Graph.NumVertices(), len(m.Channels))
	m.Metrics.RoutingGlobalLinks = m.Graph.NumVertices()

	pfOpts := pathfinder.DefaultOptions()
	if opts.MaxIterations > 0 {
		pfOpts.MaxIterations = opts.MaxIterations
	}
	if opts.HFactor > 0 {
		pfOpts.HFactor = opts.HFactor
	}
	if opts.PInitial > 0 {
		pfOpts.PInitial = opts.PInitial
	}
	if opts.PGrowth > 0 {
		pfOpts.PGrowth = opts.PGrowth
	}

	engine := sim.NewSerialEngine()
	router := pathfinder.NewBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithGraph(m.Graph).
		WithChannels(m.Channels).
		WithOracle(m.Oracle).
		WithOptions(pfOpts).
		Build("PathfinderRouter")

	routeStart := time.Now()
	router.TickNow()
	engine.Run()
	m.Metrics.RoutingTime = time.Since(routeStart).Seconds()

	m.Channels = router.Channels()
	m.Metrics.RoutingBytes = approxBytes(routedVertexCount(m.Channels))
	m.Metrics.RoutingPassed = router.Passed()
	m.Metrics.RoutingError = len(router.ConnectivityErrors) > 0 || !router.Passed()

	return m, nil
}

func routedVertexCount(channels []routing.Channel) int {
	n := 0
	for _, ch := range channels {
		n += len(ch.Route)
	}
	return n
}
