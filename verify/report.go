package verify

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Report collects every Issue surfaced by a placement or routing
// verification pass. Calling the verifier twice without mutating state
// must produce an identical Report (spec.md §8 property 5, idempotent
// verify).
type Report struct {
	Issues []Issue
}

// NewReport builds a Report from a slice of issues.
func NewReport(issues []Issue) Report {
	return Report{Issues: issues}
}

// Passed reports whether the report carries no issues.
func (r Report) Passed() bool {
	return len(r.Issues) == 0
}

// WriteReport renders the report as a table to w, one row per issue.
func (r Report) WriteReport(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Verification Report")
	t.AppendHeader(table.Row{"Type", "Node", "Channel", "Message"})

	for _, issue := range r.Issues {
		t.AppendRow(table.Row{
			issue.Type.String(),
			issue.NodeIndex,
			issue.ChannelIdx,
			issue.Message,
		})
	}

	if len(r.Issues) == 0 {
		t.AppendRow(table.Row{"-", "-", "-", "no issues found"})
	}

	t.Render()
}
