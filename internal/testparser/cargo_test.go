package testparser

import (
	"testing"

	"github.com/wasmgpu/testreport/internal/errors"
)

func TestParse_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected TestCounts
	}{
		{
			name: "basic pass",
			input: `running 2 tests
test test_foo ... ok
test test_bar ... ok

test result: ok. 2 passed; 0 failed; 0 ignored; 0 measured; 0 filtered out; finished in 0.12s`,
			expected: TestCounts{Passed: 2, Failed: 0, Skipped: 0, Total: 2},
		},
		{
			name: "with failures and ignored",
			input: `running 3 tests
test test_foo ... ok
test test_bar ... FAILED
test test_baz ... ignored
`,
			expected: TestCounts{Passed: 1, Failed: 1, Skipped: 1, Total: 3},
		},
		{
			name:     "empty input",
			input:    "",
			expected: TestCounts{},
		},
		{
			name:     "no qualifying lines",
			input:    "   Compiling example v0.1.0\n    Finished test target(s)\n",
			expected: TestCounts{},
		},
		{
			name:     "unknown outcome is skipped",
			input:    "test test_foo ... whatever\n",
			expected: TestCounts{Passed: 0, Failed: 0, Skipped: 1, Total: 1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			records, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			got := records.Counts()
			if got != tt.expected {
				t.Errorf("Counts() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestParse_RecordFlags(t *testing.T) {
	t.Parallel()

	records, err := Parse("test a ... ok\ntest b ... FAILED\ntest c ... ignored\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	a := records.Get("a")
	if a == nil || !a.Passed || a.Failed {
		t.Errorf("record a = %+v, want Passed only", a)
	}
	b := records.Get("b")
	if b == nil || b.Passed || !b.Failed {
		t.Errorf("record b = %+v, want Failed only", b)
	}
	c := records.Get("c")
	if c == nil || c.Passed || c.Failed {
		t.Errorf("record c = %+v, want neither flag", c)
	}
}

func TestParse_InsertionOrder(t *testing.T) {
	t.Parallel()

	records, err := Parse("test zeta ... ok\ntest alpha ... ok\ntest mid ... FAILED\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var got []string
	for _, rec := range records.Records() {
		got = append(got, rec.Name)
	}
	want := []string{"zeta", "alpha", "mid"}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("records[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParse_DuplicateNameLastWriteWins(t *testing.T) {
	t.Parallel()

	records, err := Parse("test dup ... ok\ntest other ... ok\ntest dup ... FAILED\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if records.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", records.Len())
	}
	dup := records.Get("dup")
	if !dup.Failed || dup.Passed {
		t.Errorf("duplicate record = %+v, want the later FAILED outcome", dup)
	}
	// Overwriting must not move the record to the end.
	if records.Records()[0].Name != "dup" {
		t.Errorf("first record = %q, want %q", records.Records()[0].Name, "dup")
	}
}

func TestParse_OutputBlocks(t *testing.T) {
	t.Parallel()

	input := "test good ... ok\ntest bad ... FAILED\n\n" +
		"failures:\n\n" +
		"---- bad stdout ----\nassertion failed: x != y\nnote: run with RUST_BACKTRACE=1\n"

	records, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	bad := records.Get("bad")
	want := "assertion failed: x != y\nnote: run with RUST_BACKTRACE=1\n"
	if bad.Output != want {
		t.Errorf("Output = %q, want %q", bad.Output, want)
	}
	if records.Get("good").Output != "" {
		t.Errorf("unexpected output on passing record: %q", records.Get("good").Output)
	}
}

func TestParse_OutputBlockForNonFailedTest(t *testing.T) {
	t.Parallel()

	// Output attaches to the record even when the test did not fail;
	// the renderer decides whether it appears in the report.
	input := "test quiet ... ok\n\n---- quiet stdout ----\nsome captured noise\n"

	records, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := records.Get("quiet").Output; got != "some captured noise\n" {
		t.Errorf("Output = %q", got)
	}
}

func TestParse_IgnoresNonDashBlocks(t *testing.T) {
	t.Parallel()

	input := "test a ... FAILED\n\nfailures:\n    a\n\n---- a stdout ----\nboom\n"

	records, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := records.Get("a").Output; got != "boom\n" {
		t.Errorf("Output = %q, want %q", got, "boom\n")
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "missing separator", input: "test foo ok\n"},
		{name: "double separator", input: "test foo ... bar ... ok\n"},
		{name: "bare test prefix", input: "test\n"},
		{name: "block header without name", input: "test foo ... ok\n\n----\nout\n"},
		{name: "block for unknown test", input: "test foo ... ok\n\n---- ghost stdout ----\nout\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("expected a parse error, got nil")
			}
			if errors.GetExitCode(err) != errors.ExitParseError {
				t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitParseError)
			}
		})
	}
}
