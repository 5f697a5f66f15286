package cli

import (
	"os"

	"github.com/wasmgpu/testreport/internal/errors"
	"github.com/wasmgpu/testreport/internal/testparser"
	"github.com/wasmgpu/testreport/internal/xunit"
)

// Fixed file names in the current working directory. The conversion takes
// no flags, environment variables, or configuration; these constants are
// the whole interface.
const (
	// InputFileName is the captured cargo test log.
	InputFileName = "test_results.txt"
	// OutputFileName is the XML report consumed by CI.
	OutputFileName = "test_results.xml"
)

// cmdConvert runs the conversion: read the log, parse it, render the
// report, and write it out. The report is built fully in memory and
// written only after the whole input parsed, so a failed run never leaves
// a truncated report behind.
func cmdConvert(args []string) int {
	if wantsHelp(args) {
		printConvertUsage()
		return errors.ExitSuccess
	}
	if len(args) > 0 {
		out.ErrorPrefix("convert takes no arguments (input is always %s)", InputFileName)
		return errors.ExitParseError
	}

	data, err := os.ReadFile(InputFileName)
	if err != nil {
		out.ErrorPrefix("reading %s: %v", InputFileName, err)
		return errors.ExitRuntimeError
	}

	records, err := testparser.Parse(string(data))
	if err != nil {
		out.ErrorPrefix("parsing %s: %v", InputFileName, err)
		return errors.GetExitCode(err)
	}

	report := xunit.Render(records)

	if err := os.WriteFile(OutputFileName, []byte(report), 0o644); err != nil {
		out.ErrorPrefix("writing %s: %v", OutputFileName, err)
		return errors.ExitRuntimeError
	}

	return errors.ExitSuccess
}

func printConvertUsage() {
	out.HelpTitle("testreport convert - generate the XML test report")

	out.HelpSection("Usage:")
	out.HelpUsage("testreport convert")

	out.HelpSection("Description:")
	out.Println("  Reads %s from the current directory and writes %s", InputFileName, OutputFileName)
	out.Println("  next to it, overwriting any previous report. The input is the captured")
	out.Println("  output of a cargo test run.")
	out.Println("")
}
