package placement

import "github.com/sarchlab/mapper/maptable"

// Node is a placed task: its current location, equivalence class, and the
// indices of channels it participates in as source or sink
// (spec.md §3, SANode).
type Node struct {
	Location Location
	Class    maptable.ClassID

	OutChannels []int
	InChannels  []int

	Name string
}

// ChannelKind distinguishes a two-endpoint channel from a multi-fanout
// channel.
type ChannelKind int

// Channel kinds.
const (
	TwoChannel ChannelKind = iota
	MultiChannel
)

// Channel is a placed task-graph edge: either a TwoChannel (one source,
// one sink) or a MultiChannel (arbitrary sources/sinks), spec.md §3.
type Channel struct {
	Kind    ChannelKind
	Sources []int // node indices
	Sinks   []int // node indices

	TaskgraphEdgeIndex int
}

// NewTwoChannel builds a single-source, single-sink channel.
func NewTwoChannel(src, dst, edgeIdx int) Channel {
	return Channel{
		Kind:               TwoChannel,
		Sources:            []int{src},
		Sinks:              []int{dst},
		TaskgraphEdgeIndex: edgeIdx,
	}
}

// NewMultiChannel builds a multi-fanout channel.
func NewMultiChannel(sources, sinks []int, edgeIdx int) Channel {
	return Channel{
		Kind:               MultiChannel,
		Sources:            sources,
		Sinks:              sinks,
		TaskgraphEdgeIndex: edgeIdx,
	}
}
