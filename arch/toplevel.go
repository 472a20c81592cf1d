package arch

// RuleSetTag is the marker value that selects the dispatch table (the
// ruleset.Oracle implementation) used to answer mappability-oracle
// questions for a given TopLevel. It is an opaque token: the arch package
// never interprets it, only carries it, so that ruleset can depend on
// arch without arch depending back on ruleset.
type RuleSetTag string

// TopLevel is the root component of an architecture. Unlike an ordinary
// Component, TopLevel's direct children are addressed by Address rather
// than by instance name, and it carries the dimensionality and RuleSetTag
// that parameterize the whole architecture.
type TopLevel struct {
	Name       string
	Dimensions int
	RuleSet    RuleSetTag

	tiles   map[string]*Component
	byOrder []Address

	Metadata map[string]any
}

// NewTopLevel creates an empty TopLevel.
func NewTopLevel(name string, dimensions int, ruleSet RuleSetTag) *TopLevel {
	return &TopLevel{
		Name:       name,
		Dimensions: dimensions,
		RuleSet:    ruleSet,
		tiles:      make(map[string]*Component),
		Metadata:   make(map[string]any),
	}
}

// SetTile installs a component as the tile at the given address. It panics
// if the address dimensionality does not match the TopLevel's, or if a
// tile already occupies that address (ConstructionError conditions).
func (t *TopLevel) SetTile(addr Address, tile *Component) *TopLevel {
	if addr.Dim() != t.Dimensions {
		panic("arch: construction error: address dimensionality mismatch")
	}
	key := addr.Key()
	if _, exists := t.tiles[key]; exists {
		panic("arch: construction error: duplicate tile at address " + addr.String())
	}
	t.tiles[key] = tile
	t.byOrder = append(t.byOrder, addr.Clone())
	return t
}

// Tile returns the component at the given address.
func (t *TopLevel) Tile(addr Address) (*Component, bool) {
	c, ok := t.tiles[addr.Key()]
	return c, ok
}

// Addresses returns every populated tile address, in the order tiles were
// added.
func (t *TopLevel) Addresses() []Address {
	out := make([]Address, len(t.byOrder))
	for i, a := range t.byOrder {
		out[i] = a.Clone()
	}
	return out
}

// TilePath returns the Path step used to reach the tile at addr; tiles are
// addressed rather than named, so the step is the address's key encoding.
func TilePath(addr Address) Path {
	return NewPath(addr.Key())
}

// ResolveComponent walks a Path starting from the TopLevel down through
// tile and child components, returning the component at that path.
func (t *TopLevel) ResolveComponent(p Path) (*Component, bool) {
	steps := p.Steps()
	if len(steps) == 0 {
		return nil, false
	}
	tile, ok := t.tiles[steps[0]]
	if !ok {
		return nil, false
	}
	cur := tile
	for _, step := range steps[1:] {
		next, ok := cur.Child(step)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// ResolvePort resolves a Path whose final step names a port, returning the
// owning component's path, the component, and the port itself.
func (t *TopLevel) ResolvePort(p Path) (Path, *Component, Port, bool) {
	parent, ok := p.Parent()
	if !ok {
		return "", nil, Port{}, false
	}
	comp, ok := t.ResolveComponent(parent)
	if !ok {
		return "", nil, Port{}, false
	}
	port, ok := comp.Port(p.Last())
	if !ok {
		return "", nil, Port{}, false
	}
	return parent, comp, port, true
}
