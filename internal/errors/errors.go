// Package errors provides structured error types and exit codes for testreport.
package errors

import (
	"fmt"
)

// Exit codes returned by the testreport CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (I/O failure, etc.)
	ExitParseError   = 2 // Input format error (malformed log, unknown test name)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindParse
	KindNotFound
)

// ReportError is the base error type for testreport.
type ReportError struct {
	Kind    ErrorKind
	Message string
	Line    string // Offending input line if applicable
	Block   string // Offending block header if applicable
	Cause   error  // Underlying error
}

func (e *ReportError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("line %q: %s", e.Line, e.Message)
	}
	if e.Block != "" {
		return fmt.Sprintf("block %q: %s", e.Block, e.Message)
	}
	return e.Message
}

func (e *ReportError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *ReportError) ExitCode() int {
	switch e.Kind {
	case KindParse, KindNotFound:
		return ExitParseError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *ReportError {
	return &ReportError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *ReportError {
	return New(fmt.Sprintf(format, args...))
}

// Parse creates a new input format error.
func Parse(message string) *ReportError {
	return &ReportError{
		Kind:    KindParse,
		Message: message,
	}
}

// Parsef creates a new input format error with formatting.
func Parsef(format string, args ...interface{}) *ReportError {
	return Parse(fmt.Sprintf(format, args...))
}

// LineError creates an input format error for a specific summary line.
func LineError(line, message string) *ReportError {
	return &ReportError{
		Kind:    KindParse,
		Line:    line,
		Message: message,
	}
}

// BlockError creates an input format error for a specific output block.
func BlockError(block, message string) *ReportError {
	return &ReportError{
		Kind:    KindParse,
		Block:   block,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *ReportError {
	return &ReportError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *ReportError {
	return &ReportError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if re, ok := err.(*ReportError); ok {
		return re.ExitCode()
	}
	return ExitRuntimeError
}
