package ruleset_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mapper/arch"
	"github.com/sarchlab/mapper/ruleset"
	"github.com/sarchlab/mapper/taskgraph"
)

// overriddenMappable embeds Default and overrides only IsMappable, the
// usual shape a concrete RuleSet takes (spec.md's closed dispatch table).
type overriddenMappable struct {
	ruleset.Default
}

func (overriddenMappable) IsMappable(c *arch.Component) bool {
	return c.Primitive == "core"
}

var _ = Describe("Default", func() {
	var d ruleset.Default
	var n1, n2 taskgraph.Node

	BeforeEach(func() {
		d = ruleset.Default{}
		n1 = taskgraph.NewNode("a")
		n2 = taskgraph.NewNode("b")
	})

	It("treats every node as equivalent and not special", func() {
		Expect(d.IsEquivalent(n1, n2)).To(BeTrue())
		Expect(d.IsSpecial(n1)).To(BeFalse())
	})

	It("treats every component as mappable and every slot as legal", func() {
		Expect(d.IsMappable(arch.NewComponent("x"))).To(BeTrue())
		Expect(d.CanMap(n1, arch.NewPath("0"))).To(BeTrue())
	})

	It("defaults capacity to 1 and routing to needed", func() {
		Expect(d.GetCapacity(arch.NewPath("0", "out"))).To(Equal(1))
		Expect(d.NeedsRouting(taskgraph.NewEdge("a", "b"))).To(BeTrue())
	})

	It("defaults every edge's routing priority to 0", func() {
		Expect(d.RoutingPriority(taskgraph.NewEdge("a", "b"))).To(Equal(0))
	})

	It("is satisfied by an override that embeds Default", func() {
		var o ruleset.Oracle = overriddenMappable{}

		Expect(o.IsMappable(arch.NewComponent("core").WithPrimitive("core"))).To(BeTrue())
		Expect(o.IsMappable(arch.NewComponent("mux"))).To(BeFalse())
		Expect(o.CanMap(n1, arch.NewPath("0"))).To(BeTrue())
	})
})
