package placement

// ChannelCost computes the HPWL-like cost of a channel given the current
// placement. TwoChannel cost is the hop distance between its endpoints;
// MultiChannel cost sums pairwise distances over the Cartesian product of
// sources and sinks (spec.md §4.E). Distances may be asymmetric.
func (s *State) ChannelCost(c Channel) float64 {
	total := 0.0
	for _, srcIdx := range c.Sources {
		srcAddr := s.Nodes[srcIdx].Location.Address
		for _, dstIdx := range c.Sinks {
			dstAddr := s.Nodes[dstIdx].Location.Address
			d := s.Distance.Distance(srcAddr, dstAddr)
			if d >= 0 {
				total += float64(d)
			}
		}
	}
	return total
}

// addressCost returns the optional per-location penalty for node i,
// defaulting to zero when AddressCost is unset.
func (s *State) addressCost(i int) float64 {
	if s.AddressCost == nil {
		return 0
	}
	return s.AddressCost(s.Nodes[i].Location)
}

// auxCost returns the optional global scalar cost, defaulting to zero.
func (s *State) auxCost() float64 {
	if s.AuxCost == nil {
		return 0
	}
	return s.AuxCost(s)
}

// NodeCost is the sum of the cost of every channel touching node i (as
// source or sink), its address cost, and the aux cost (spec.md §4.E).
func (s *State) NodeCost(i int) float64 {
	total := s.addressCost(i) + s.auxCost()
	n := s.Nodes[i]
	for _, c := range n.OutChannels {
		total += s.ChannelCost(s.Channels[c])
	}
	for _, c := range n.InChannels {
		total += s.ChannelCost(s.Channels[c])
	}
	return total
}

// NodePairCost is the cost of node i plus the cost of node j, with any
// channel directly connecting i and j omitted from j's contribution so
// that the pair is not double counted. This is the contract a correct
// swap-delta computation relies on (spec.md §4.E, §8 property 3).
func (s *State) NodePairCost(i, j int) float64 {
	shared := s.sharedChannels(i, j)

	total := s.NodeCost(i)
	total += s.addressCost(j)
	nj := s.Nodes[j]
	for _, c := range nj.OutChannels {
		if shared[c] {
			continue
		}
		total += s.ChannelCost(s.Channels[c])
	}
	for _, c := range nj.InChannels {
		if shared[c] {
			continue
		}
		total += s.ChannelCost(s.Channels[c])
	}
	// auxCost is global, already counted once via NodeCost(i); do not
	// double-add it for j.
	return total
}

// sharedChannels returns the set of channel indices that connect i and j
// directly: outchannels(j) ∩ inchannels(i) and inchannels(j) ∩
// outchannels(i), per spec.md §4.E's node-pair-cost contract.
func (s *State) sharedChannels(i, j int) map[int]bool {
	ni, nj := s.Nodes[i], s.Nodes[j]
	inI := toSet(ni.InChannels)
	outI := toSet(ni.OutChannels)

	shared := make(map[int]bool)
	for _, c := range nj.OutChannels {
		if inI[c] {
			shared[c] = true
		}
	}
	for _, c := range nj.InChannels {
		if outI[c] {
			shared[c] = true
		}
	}
	return shared
}

func toSet(xs []int) map[int]bool {
	m := make(map[int]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}
	return m
}

// MapCost is the total placement objective: the sum of every channel's
// cost plus every node's address cost plus the aux cost once.
func (s *State) MapCost() float64 {
	total := s.auxCost()
	for _, c := range s.Channels {
		total += s.ChannelCost(c)
	}
	for i := range s.Nodes {
		total += s.addressCost(i)
	}
	return total
}
