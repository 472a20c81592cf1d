package mapper

import (
	"sort"
	"time"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mapper/maptable"
	"github.com/sarchlab/mapper/placement"
	"github.com/sarchlab/mapper/sa"
)

// PlaceOptions configures Place (spec.md §6).
type PlaceOptions struct {
	Seed                 uint64
	MoveAttempts         int
	InitialTemperature   float64
	WarmTargetAcceptance float64
	MaxHop               int
	MaxRounds            int

	Warmer  sa.Warmer
	Cooler  sa.Cooler
	Limiter sa.Limiter
	Doner   sa.Doner
	MoveGen placement.Generator

	EnableAddress bool

	// EnableFlatness selects the Address-only Location representation
	// for architectures with at most one mappable slot per tile
	// (spec.md §6, default true). Unlike the other options here, false
	// is a meaningful explicit choice rather than "unset", so a plain
	// bool's zero value can't stand in for the default; nil means the
	// default, a non-nil value pins the choice. Enabling and disabling
	// both leave PlacementObjective and every node's address unchanged
	// (spec.md §8, scenario S6): this implementation always stores
	// Location as (Address, Slot), and BuildMapTable already restricts
	// Slot to 0 whenever MapTable.IsFlat() holds, so there is no second
	// representation for the flag to switch between. It only gates
	// whether Metrics.FlatRepresentation reports the fast path as taken.
	EnableFlatness *bool
}

// Flatness returns a pointer suitable for PlaceOptions.EnableFlatness,
// letting callers write mapper.Flatness(false) inline.
func Flatness(b bool) *bool { return &b }

// Place runs initial seating followed by the simulated-annealing loop,
// returning the same Map with Placement and placement Metrics filled in
// (spec.md §6, `place(map, options) -> map'`).
func Place(m *Map, opts PlaceOptions) (*Map, error) {
	structStart := time.Now()
	if err := seatInitialPlacement(m); err != nil {
		return nil, err
	}
	m.Metrics.PlacementStructTime = time.Since(structStart).Seconds()
	m.Metrics.PlacementStructBytes = approxBytes(len(m.Top.Addresses()), len(m.Taskgraph.Nodes()))

	wantFlatness := opts.EnableFlatness == nil || *opts.EnableFlatness
	m.Metrics.FlatRepresentation = wantFlatness && m.MapTable.IsFlat()

	isSpecial := make(map[maptable.ClassID]bool)
	for _, c := range m.Classes {
		isSpecial[c.ID] = c.Special
	}

	moveGen := opts.MoveGen
	if moveGen == nil {
		moveGen = placement.NewCachedGenerator(placement.NewClassAwareGenerator(m.MapTable, isSpecial))
	}

	driverOpts := sa.Options{
		Seed:                 opts.Seed,
		MoveAttempts:         opts.MoveAttempts,
		InitialTemperature:   opts.InitialTemperature,
		WarmTargetAcceptance: opts.WarmTargetAcceptance,
		MaxHop:               opts.MaxHop,
		MaxRounds:            opts.MaxRounds,
		Warmer:               opts.Warmer,
		Cooler:               opts.Cooler,
		Limiter:              opts.Limiter,
		Doner:                opts.Doner,
		MoveGen:              moveGen,
	}

	engine := sim.NewSerialEngine()
	driver := sa.NewBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithState(m.Placement).
		WithOptions(driverOpts).
		Build("SADriver")

	placeStart := time.Now()
	driver.TickNow()
	engine.Run()
	m.Metrics.PlacementTime = time.Since(placeStart).Seconds()
	m.Metrics.PlacementBytes = approxBytes(len(m.Placement.Nodes), len(m.Placement.Channels))
	m.Metrics.PlacementObjective = m.Placement.MapCost()

	return m, nil
}

// seatInitialPlacement assigns every task-graph node a legal initial
// location, in deterministic node-name order, greedily taking
// the first free (address, slot) pair the node's class may occupy. A
// class with no free legal location left is a PlacementInfeasibleError
// (spec.md §7).
func seatInitialPlacement(m *Map) error {
	nodes := m.Taskgraph.Nodes()
	sortedNames := make([]string, len(nodes))
	for i, n := range nodes {
		sortedNames[i] = n.Name
	}
	sort.Strings(sortedNames)

	placementNodes := make([]*placement.Node, len(nodes))
	m.NodeIndexByName = make(map[string]int, len(nodes))
	for i, name := range sortedNames {
		placementNodes[i] = &placement.Node{Name: name, Class: m.ClassOf[name]}
		m.NodeIndexByName[name] = i
	}

	channels := buildPlacementChannels(m, placementNodes)

	m.Placement = placement.New(placementNodes, channels, m.MapTable, m.Distance)

	for i, name := range sortedNames {
		class := m.ClassOf[name]
		loc, ok := firstFreeLocation(m, class)
		if !ok {
			return &PlacementInfeasibleError{NodeName: name, Reason: "no legal address/slot remains for this class"}
		}
		if err := m.Placement.Assign(i, loc); err != nil {
			return &PlacementInfeasibleError{NodeName: name, Reason: err.Error()}
		}
	}

	return nil
}

func firstFreeLocation(m *Map, class maptable.ClassID) (placement.Location, bool) {
	addrs := m.MapTable.ValidAddresses(class)
	for _, addr := range addrs {
		for _, slot := range m.MapTable.ValidSlots(class, addr) {
			loc := placement.NewLocation(addr, slot)
			if _, occupied := m.Placement.OccupantAt(loc); !occupied {
				return loc, true
			}
		}
	}
	return placement.Location{}, false
}

// buildPlacementChannels converts every task-graph edge into a placement
// Channel, wiring each node's OutChannels/InChannels.
func buildPlacementChannels(m *Map, nodes []*placement.Node) []placement.Channel {
	edges := m.Taskgraph.Edges()
	channels := make([]placement.Channel, 0, len(edges))

	for idx, edge := range edges {
		sources := nodeIndices(m, edge.Sources)
		sinks := nodeIndices(m, edge.Sinks)

		var ch placement.Channel
		if len(sources) == 1 && len(sinks) == 1 {
			ch = placement.NewTwoChannel(sources[0], sinks[0], idx)
		} else {
			ch = placement.NewMultiChannel(sources, sinks, idx)
		}
		channelIdx := len(channels)
		channels = append(channels, ch)

		for _, s := range sources {
			nodes[s].OutChannels = append(nodes[s].OutChannels, channelIdx)
		}
		for _, s := range sinks {
			nodes[s].InChannels = append(nodes[s].InChannels, channelIdx)
		}
	}

	return channels
}

func nodeIndices(m *Map, names []string) []int {
	out := make([]int, 0, len(names))
	for _, n := range names {
		if idx, ok := m.NodeIndexByName[n]; ok {
			out = append(out, idx)
		}
	}
	return out
}

// approxBytes estimates footprint from element counts, per the
// approximation policy documented on Metrics.
func approxBytes(counts ...int) int64 {
	const perElement = 64
	var total int64
	for _, c := range counts {
		total += int64(c) * perElement
	}
	return total
}
