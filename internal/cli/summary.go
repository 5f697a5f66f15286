package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wasmgpu/testreport/internal/errors"
	"github.com/wasmgpu/testreport/internal/testparser"
)

// cmdSummary parses a cargo test log and prints a terminal summary.
// It reads the fixed input file by default, a named file when given,
// or stdin for "-". No report file is written.
func cmdSummary(args []string) int {
	if wantsHelp(args) {
		printSummaryUsage()
		return errors.ExitSuccess
	}

	source := InputFileName
	if len(args) > 0 {
		source = args[0]
	}

	var data []byte
	var err error
	if source == "-" {
		data, err = io.ReadAll(os.Stdin)
		source = "stdin"
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		out.ErrorPrefix("reading %s: %v", source, err)
		return errors.ExitRuntimeError
	}

	records, err := testparser.Parse(string(data))
	if err != nil {
		out.ErrorPrefix("parsing %s: %v", source, err)
		return errors.GetExitCode(err)
	}

	if records.Len() == 0 {
		out.ErrorPrefix("no test results found in %s", source)
		out.Hint("hint: capture a run with 'cargo test > test_results.txt 2>&1'")
		return errors.ExitRuntimeError
	}

	printRunSummary(records)

	if records.Counts().Failed > 0 {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

// printRunSummary prints a formatted test summary.
func printRunSummary(records *testparser.RecordSet) {
	counts := records.Counts()

	out.SummaryHeader("Test Summary")

	out.SummaryPassed("Passed", fmt.Sprintf("%d", counts.Passed))
	if counts.Failed > 0 {
		out.SummaryFailed("Failed", fmt.Sprintf("%d", counts.Failed))
	}
	if counts.Skipped > 0 {
		out.SummaryItem("Skipped", fmt.Sprintf("%d", counts.Skipped))
	}
	out.SummaryItem("Total", fmt.Sprintf("%d", counts.Total))

	failed := records.FailedRecords()
	if len(failed) > 0 {
		out.Println("")
		out.SummarySectionLabel("Failed Tests:")
		for _, rec := range failed {
			out.SummaryFailed("  "+rec.Name, failureReason(rec))
		}
	}

	out.Println("")

	if counts.Failed == 0 {
		out.FinalSuccess("All %d tests passed.", counts.Total)
	} else {
		out.FinalFailure("%d of %d tests failed.", counts.Failed, counts.Total)
	}
}

// failureReason returns the first non-empty line of the captured output.
func failureReason(rec *testparser.TestRecord) string {
	for _, line := range strings.Split(rec.Output, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func printSummaryUsage() {
	out.HelpTitle("testreport summary - parse and summarize a cargo test log")

	out.HelpSection("Usage:")
	out.HelpUsage("testreport summary [file]")
	out.HelpUsage("cargo test 2>&1 | testreport summary -")

	out.HelpSection("Description:")
	out.Println("  Parses a captured cargo test run and prints a summary of the results,")
	out.Println("  highlighting any failed tests with their failure output. Reads %s", InputFileName)
	out.Println("  when no file is given.")
	out.Println("")
}
