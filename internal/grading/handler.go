package grading

import (
	"context"

	"github.com/p7-projekt/mozart/internal/model"
	"github.com/p7-projekt/mozart/internal/sandbox"
	"github.com/sirupsen/logrus"
)

// LanguageHandler is the capability set hiding every target-language
// specific concern from the pipeline (spec.md §4.B, §9 "Plug-in language
// handlers"). The pipeline only ever sees this interface.
type LanguageHandler interface {
	// SolutionFilePath, TestRunnerFilePath and TestHarnessFilePath return
	// the paths (rooted at the handler's job directory) where the
	// Harness Assembler (§4.C) writes the three generated files.
	SolutionFilePath() string
	TestRunnerFilePath() string
	TestHarnessFilePath() string

	// TestRunnerCode returns the fixed source fragment defining the
	// test_checker helper.
	TestRunnerCode() string

	// BaseHarnessCode returns the main-program template containing
	// exactly one occurrence of the TEST_CASES marker.
	BaseHarnessCode() string

	// FormatParameter converts a Parameter into a typed target-language
	// literal, parenthesised where the target language needs it (the
	// Haskell handler parenthesises every literal, the Python handler
	// none).
	FormatParameter(p model.Parameter) string

	// GenerateTestCases emits one harness statement per test case,
	// joined by newlines, per spec.md §4.B clause 5.
	GenerateTestCases(cases []model.TestCase) string

	// Run compiles (if applicable) and executes the assembled harness
	// under the sandbox, returning its stdout on success.
	Run(ctx context.Context, log *logrus.Entry, sb sandbox.Sandbox) (string, *SubmissionError)

	// GuardsNeverHalt reports whether this handler's generated harness
	// wraps every test case in a guard that catches a user exception and
	// keeps going (Python), as opposed to letting an uncaught exception
	// terminate the whole harness (Haskell). When true, a stdout that is
	// shorter than the number of test cases is never a legitimate crash
	// mid-run: per spec.md §4.D clause 3, it is a protocol violation, not
	// a reconstructable RuntimeError/Unknown tail.
	GuardsNeverHalt() bool
}
