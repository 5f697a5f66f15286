// Package cli provides command-line interface functionality for testreport.
package cli

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wasmgpu/testreport/internal/errors"
	"github.com/wasmgpu/testreport/internal/output"
)

// Version is set at build time.
var Version = "dev"

// out is the shared output writer for CLI commands.
var out = output.New()

// Help text alignment width for command names.
const helpCommandWidth = 14

// wantsHelp returns true if args contain -h or --help.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
// With no arguments it performs the default conversion: read the test log
// from the working directory and write the XML report next to it.
func Run(args []string) int {
	if len(args) == 0 {
		return cmdConvert(nil)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "-h", "--help", "help":
		printUsage()
		return errors.ExitSuccess
	case "--version", "version":
		fmt.Printf("testreport %s\n", Version)
		return errors.ExitSuccess
	case "convert":
		return cmdConvert(cmdArgs)
	case "summary":
		return cmdSummary(cmdArgs)
	default:
		out.ErrorPrefix("unknown command: %s", cmd)
		out.Hint("run 'testreport help' for usage")
		return errors.ExitParseError
	}
}

// printUsage prints the top-level help text.
func printUsage() {
	out.HelpTitle("testreport - convert cargo test output into an XML test report")

	out.HelpSection("Usage:")
	out.HelpUsage("testreport [command]")

	out.HelpSection("Commands:")
	out.HelpCommand("convert", fmt.Sprintf("Read %s and write %s (default)", InputFileName, OutputFileName), helpCommandWidth)
	out.HelpCommand("summary [file]", "Print a terminal summary of a test log", helpCommandWidth)
	out.HelpCommand("version", "Print the testreport version", helpCommandWidth)
	out.HelpCommand("help", "Show this help", helpCommandWidth)

	out.HelpSection("Examples:")
	titleCase := cases.Title(language.English)
	out.HelpExample("cargo test > test_results.txt 2>&1; testreport",
		fmt.Sprintf("%s the captured run into %s", titleCase.String("convert"), OutputFileName))
	out.HelpExample("cargo test 2>&1 | testreport summary -",
		fmt.Sprintf("%s a run without writing a report", titleCase.String("summarize")))
	out.Println("")
}
