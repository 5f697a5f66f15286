// Package testreport provides public constants for external tools
// integrating with the testreport CLI.
package testreport

// Exit codes returned by the testreport CLI.
// These constants allow external tools (CI scripts, wrappers) to check
// exit codes symbolically rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (missing input file,
	// unwritable report, failed tests in a summary run).
	ExitFailure = 1

	// ExitParseError indicates the input log was malformed or an output
	// block referenced an unknown test.
	ExitParseError = 2
)
