package verify_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mapper/verify"
)

var _ = Describe("Report", func() {
	It("passes when there are no issues", func() {
		r := verify.NewReport(nil)

		Expect(r.Passed()).To(BeTrue())
	})

	It("fails when issues are present", func() {
		r := verify.NewReport([]verify.Issue{{Type: verify.DuplicateSlot, Message: "boom"}})

		Expect(r.Passed()).To(BeFalse())
	})

	It("renders a table that includes every issue's message", func() {
		r := verify.NewReport([]verify.Issue{{Type: verify.DuplicateSlot, Message: "boom"}})
		var buf bytes.Buffer

		r.WriteReport(&buf)

		Expect(buf.String()).To(ContainSubstring("boom"))
	})

	It("renders a fallback row when there are no issues", func() {
		r := verify.NewReport(nil)
		var buf bytes.Buffer

		r.WriteReport(&buf)

		Expect(buf.String()).To(ContainSubstring("no issues found"))
	})
})
