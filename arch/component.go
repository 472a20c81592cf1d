package arch

// Component is a hierarchical node in the architecture tree: a name, an
// optional primitive tag, child components keyed by instance name, owned
// ports, owned links, and a port-to-link index built lazily from the owned
// links. Components form a tree; a child's identity is scoped by its
// parent, so Component never holds a back-pointer to its parent — callers
// navigate by Path instead.
type Component struct {
	Name      string
	Primitive string // empty when the component is not a primitive

	children   map[string]*Component
	childOrder []string

	ports   map[string]Port
	portSeq []string

	links   map[string]Link
	linkSeq []string

	portToLink map[string]string // port name -> owning link name

	Metadata map[string]any
}

// NewComponent creates an empty Component with the given instance name.
func NewComponent(name string) *Component {
	return &Component{
		Name:     name,
		children: make(map[string]*Component),
		ports:    make(map[string]Port),
		links:    make(map[string]Link),
		Metadata: make(map[string]any),
	}
}

// WithPrimitive tags the component as a primitive of the given kind (e.g.
// "mux", "alu") and returns it for chaining.
func (c *Component) WithPrimitive(tag string) *Component {
	c.Primitive = tag
	return c
}

// IsPrimitive reports whether the component carries a primitive tag.
func (c *Component) IsPrimitive() bool {
	return c.Primitive != ""
}

// AddChild inserts a child component under the given instance name. It
// panics on a duplicate instance name, a ConstructionError condition
// (spec.md §7): a hierarchy may not alias two children to the same name.
func (c *Component) AddChild(instanceName string, child *Component) *Component {
	if _, exists := c.children[instanceName]; exists {
		panic("arch: construction error: duplicate child instance name " + instanceName)
	}
	c.children[instanceName] = child
	c.childOrder = append(c.childOrder, instanceName)
	return c
}

// Child looks up a direct child by instance name.
func (c *Component) Child(instanceName string) (*Component, bool) {
	ch, ok := c.children[instanceName]
	return ch, ok
}

// Children returns direct children in insertion order.
func (c *Component) Children() []*Component {
	out := make([]*Component, 0, len(c.childOrder))
	for _, name := range c.childOrder {
		out = append(out, c.children[name])
	}
	return out
}

// ChildNames returns direct child instance names in insertion order.
func (c *Component) ChildNames() []string {
	out := make([]string, len(c.childOrder))
	copy(out, c.childOrder)
	return out
}

// AddPort adds an owned port. It panics on a duplicate port name
// (ConstructionError).
func (c *Component) AddPort(p Port) *Component {
	if _, exists := c.ports[p.Name]; exists {
		panic("arch: construction error: duplicate port " + p.Name)
	}
	c.ports[p.Name] = p
	c.portSeq = append(c.portSeq, p.Name)
	return c
}

// Port looks up an owned port by name.
func (c *Component) Port(name string) (Port, bool) {
	p, ok := c.ports[name]
	return p, ok
}

// Ports returns owned ports in insertion order.
func (c *Component) Ports() []Port {
	out := make([]Port, 0, len(c.portSeq))
	for _, name := range c.portSeq {
		out = append(out, c.ports[name])
	}
	return out
}

// AddLink adds an owned link and indexes it by the port names it touches.
func (c *Component) AddLink(l Link) *Component {
	if _, exists := c.links[l.Name]; exists {
		panic("arch: construction error: duplicate link " + l.Name)
	}
	c.links[l.Name] = l
	c.linkSeq = append(c.linkSeq, l.Name)

	if c.portToLink == nil {
		c.portToLink = make(map[string]string)
	}
	for _, p := range l.Sources {
		c.portToLink[p.Last()] = l.Name
	}
	for _, p := range l.Destinations {
		c.portToLink[p.Last()] = l.Name
	}
	return c
}

// Links returns owned links in insertion order.
func (c *Component) Links() []Link {
	out := make([]Link, 0, len(c.linkSeq))
	for _, name := range c.linkSeq {
		out = append(out, c.links[name])
	}
	return out
}

// LinkForPort resolves the link that a given port name participates in, if
// any.
func (c *Component) LinkForPort(portName string) (Link, bool) {
	name, ok := c.portToLink[portName]
	if !ok {
		return Link{}, false
	}
	return c.links[name], true
}

// Walk performs a depth-first walk of the component subtree rooted at c,
// invoking visit with the Path to each visited component (relative to the
// prefix passed in). The walk order is deterministic (insertion order of
// children), which the Distance LUT and Path/Map Table builders rely on for
// stable, reproducible table layouts.
func (c *Component) Walk(prefix Path, visit func(Path, *Component)) {
	self := prefix
	if self == "" {
		self = NewPath(c.Name)
	}
	visit(self, c)
	for _, name := range c.childOrder {
		c.children[name].Walk(self.Child(name), visit)
	}
}

// MappablePaths returns the paths, in deterministic DFS order, of every
// component in the subtree for which isMappable returns true.
func (c *Component) MappablePaths(prefix Path, isMappable func(*Component) bool) []Path {
	var out []Path
	c.Walk(prefix, func(p Path, comp *Component) {
		if isMappable(comp) {
			out = append(out, p)
		}
	})
	return out
}
