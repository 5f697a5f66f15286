// Package xunit renders parsed test records into the assemblies XML report.
package xunit

import (
	"fmt"
	"strings"

	"github.com/wasmgpu/testreport/internal/testparser"
)

// Result attribute values.
const (
	ResultPass = "Pass"
	ResultFail = "Fail"
	ResultSkip = "Skip"
)

// Render serializes the records into the assemblies/assembly/collection
// report consumed by the wasm-gpu CI dashboard. The format is deliberately
// not conformant XML: count attributes are bare unquoted integers and
// failure message text is embedded raw, without entity escaping. The
// consumer matches on these exact bytes, so neither may be "fixed" here.
//
// Tests render in first-insertion order. Only failed tests carry a
// failure/message element, even when output was captured for others.
func Render(records *testparser.RecordSet) string {
	counts := records.Counts()

	var b strings.Builder
	b.WriteString("<assemblies>\n")
	fmt.Fprintf(&b, "\t<assembly total=%d passed=%d failed=%d skipped=%d>\n",
		counts.Total, counts.Passed, counts.Failed, counts.Skipped)
	fmt.Fprintf(&b, "\t\t<collection total=%d passed=%d failed=%d skipped=%d>\n",
		counts.Total, counts.Passed, counts.Failed, counts.Skipped)

	for _, rec := range records.Records() {
		fmt.Fprintf(&b, "\t\t\t<test name=\"%s\" result=\"%s\">\n", rec.Name, resultFor(rec))
		if rec.Failed {
			b.WriteString("\t\t\t\t<failure>\n")
			fmt.Fprintf(&b, "\t\t\t\t\t<message>%s</message>\n", rec.Output)
			b.WriteString("\t\t\t\t</failure>\n")
		}
		b.WriteString("\t\t\t</test>\n")
	}

	b.WriteString("\t\t</collection>\n")
	b.WriteString("\t</assembly>\n")
	b.WriteString("</assemblies>")

	return b.String()
}

// resultFor maps record flags to the result attribute. Fail wins over Pass.
func resultFor(rec *testparser.TestRecord) string {
	switch {
	case rec.Failed:
		return ResultFail
	case rec.Passed:
		return ResultPass
	default:
		return ResultSkip
	}
}
