package arch_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mapper/arch"
)

var _ = Describe("Path", func() {
	It("round-trips through Steps", func() {
		p := arch.NewPath("0", "core", "out")

		Expect(p.Steps()).To(Equal([]string{"0", "core", "out"}))
	})

	It("appends a step via Child", func() {
		p := arch.NewPath("0")

		Expect(p.Child("core")).To(Equal(arch.NewPath("0", "core")))
	})

	It("resolves Parent and reports when there is none", func() {
		p := arch.NewPath("0", "core", "out")

		parent, ok := p.Parent()
		Expect(ok).To(BeTrue())
		Expect(parent).To(Equal(arch.NewPath("0", "core")))

		root := arch.NewPath("0")
		_, ok = root.Parent()
		Expect(ok).To(BeFalse())
	})

	It("returns the last step", func() {
		p := arch.NewPath("0", "core", "out")

		Expect(p.Last()).To(Equal("out"))
	})
})
