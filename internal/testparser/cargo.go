package testparser

import (
	"strings"

	"github.com/wasmgpu/testreport/internal/errors"
)

// Prefixes identifying the two kinds of input sections.
// Cargo test output lists per-test result lines like:
//
//	test tests::parse_header ... ok
//	test tests::roundtrip ... FAILED
//
// followed by blank-line-separated failure blocks like:
//
//	---- tests::roundtrip stdout ----
//	assertion failed: x != y
const (
	summaryLinePrefix = "test"
	outputBlockPrefix = "----"
)

// outcomeSeparator splits a summary line into test name and outcome token.
const outcomeSeparator = "..."

// Outcome tokens recognized in summary lines. Any other token (e.g.
// "ignored") marks the test as skipped.
const (
	outcomePassed = "ok"
	outcomeFailed = "FAILED"
)

// Parse converts raw cargo test output into a RecordSet.
//
// The input splits on blank lines into blocks. The first block is the run
// summary, one result line per test; later blocks starting with "----" carry
// captured output for a single test, keyed by the second token of their
// header line. Duplicate test names overwrite earlier records (last write
// wins, first position kept). Any malformed summary line, malformed block
// header, or block naming an unknown test is a fatal parse error.
func Parse(input string) (*RecordSet, error) {
	blocks := strings.Split(input, "\n\n")

	records := NewRecordSet()
	if err := parseSummary(blocks[0], records); err != nil {
		return nil, err
	}
	if err := parseOutputBlocks(blocks[1:], records); err != nil {
		return nil, err
	}
	return records, nil
}

// parseSummary extracts one TestRecord per qualifying result line.
func parseSummary(summary string, records *RecordSet) error {
	for _, line := range strings.Split(summary, "\n") {
		// Header, blank, and noise lines ("running 47 tests", the
		// "test result:" trailer) do not start with "test".
		if len(line) < len(summaryLinePrefix) || line[:len(summaryLinePrefix)] != summaryLinePrefix {
			continue
		}
		if len(line) < len(summaryLinePrefix)+1 {
			return errors.LineError(line, "summary line too short")
		}

		parts := strings.Split(line[len(summaryLinePrefix)+1:], outcomeSeparator)
		if len(parts) != 2 {
			return errors.LineError(line, `expected exactly one "..." separator`)
		}

		name := strings.TrimSpace(parts[0])
		outcome := strings.TrimSpace(parts[1])

		records.Put(TestRecord{
			Name:   name,
			Passed: outcome == outcomePassed,
			Failed: outcome == outcomeFailed,
		})
	}
	return nil
}

// parseOutputBlocks attaches captured output to previously parsed records.
// Output is recorded for every qualifying block regardless of the record's
// Failed flag; only the renderer decides whether it appears in the report.
func parseOutputBlocks(blocks []string, records *RecordSet) error {
	for _, block := range blocks {
		if len(block) < len(outputBlockPrefix) || block[:len(outputBlockPrefix)] != outputBlockPrefix {
			continue
		}

		lines := strings.Split(block, "\n")
		header := strings.Split(lines[0], " ")
		if len(header) < 2 {
			return errors.BlockError(lines[0], "missing test name in block header")
		}
		name := header[1]

		rec := records.Get(name)
		if rec == nil {
			return errors.NotFound("test", name)
		}
		rec.Output = strings.Join(lines[1:], "\n")
	}
	return nil
}
