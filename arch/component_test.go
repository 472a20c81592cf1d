package arch_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mapper/arch"
)

var _ = Describe("Component", func() {
	var root *arch.Component

	BeforeEach(func() {
		root = arch.NewComponent("root")
	})

	It("panics on a duplicate child instance name", func() {
		root.AddChild("a", arch.NewComponent("a"))

		Expect(func() {
			root.AddChild("a", arch.NewComponent("a"))
		}).To(Panic())
	})

	It("panics on a duplicate port name", func() {
		root.AddPort(arch.NewPort("in", arch.Input))

		Expect(func() {
			root.AddPort(arch.NewPort("in", arch.Output))
		}).To(Panic())
	})

	It("indexes links by the port names they touch", func() {
		root.AddPort(arch.NewPort("out", arch.Output))
		link := arch.NewLink("l0").WithSource(arch.NewPath("root", "out"))
		root.AddLink(link)

		got, ok := root.LinkForPort("out")
		Expect(ok).To(BeTrue())
		Expect(got.Name).To(Equal("l0"))
	})

	It("walks the subtree in deterministic insertion order", func() {
		a := arch.NewComponent("a")
		b := arch.NewComponent("b")
		root.AddChild("a", a)
		root.AddChild("b", b)

		var visited []string
		root.Walk("", func(p arch.Path, c *arch.Component) {
			visited = append(visited, string(p))
		})

		Expect(visited).To(Equal([]string{"root", "root/a", "root/b"}))
	})

	It("collects only mappable paths via MappablePaths", func() {
		core := arch.NewComponent("core").WithPrimitive("core")
		mux := arch.NewComponent("mux")
		root.AddChild("core", core)
		root.AddChild("mux", mux)

		paths := root.MappablePaths("", func(c *arch.Component) bool {
			return c.IsPrimitive()
		})

		Expect(paths).To(Equal([]arch.Path{arch.NewPath("root", "core")}))
	})
})
