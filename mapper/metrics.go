package mapper

// Metrics are attached to a Map after Place/Route, reporting timing,
// approximate memory footprint, and outcome flags (spec.md §6).
//
// Byte counts are computed from element counts times a conservative
// per-element size estimate rather than by reflecting over the live
// heap: Go has no idiomatic, allocation-free way to size an arbitrary
// struct graph, and nothing in the dependency stack offers it either
// (pprof profiles call graphs, not struct footprints). These are
// reported as approximations, not exact RSS deltas.
type Metrics struct {
	RunID string // globally unique identifier for this Map, for correlating logs across a run

	PlacementStructTime  float64 // seconds spent building the placement state and seating every node
	PlacementStructBytes int64   // approximate bytes, estimated from the address and node counts

	PlacementTime      float64 // seconds spent running the SA driver
	PlacementBytes     int64   // approximate bytes held by the placement state
	PlacementObjective float64 // final map cost

	// FlatRepresentation reports whether the Address-only fast path was
	// applicable: PlaceOptions.EnableFlatness was not disabled and
	// MapTable.IsFlat() held. This implementation stores Location as
	// (Address, Slot) uniformly, so it never changes PlacementObjective
	// or any node's address (spec.md §8, scenario S6).
	FlatRepresentation bool

	RoutingStructTime  float64 // seconds spent building the routing graph and channels
	RoutingStructBytes int64   // approximate bytes held by the routing graph

	RoutingTime        float64 // seconds spent running Pathfinder
	RoutingBytes       int64   // approximate bytes held by installed routes
	RoutingPassed      bool    // no vertex overused at termination
	RoutingError       bool    // any channel hit a structured routing failure
	RoutingGlobalLinks int     // number of routing-graph vertices
}
