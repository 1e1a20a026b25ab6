// Package haskell implements grading.LanguageHandler for the Haskell
// target, grounded on original_source/src/runner/haskell.rs. Haskell is
// compiled, so Run has two bounded phases: compile with ghc, then
// execute the resulting binary. Unlike python.Handler, the generated
// main has no per-case exception guard — an uncaught exception in any
// test case halts the whole harness, which is exactly what
// spec.md §8's scenario 5 exercises.
package haskell

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/p7-projekt/mozart/internal/grading"
	"github.com/p7-projekt/mozart/internal/model"
	"github.com/p7-projekt/mozart/internal/sandbox"
	"github.com/sirupsen/logrus"
)

// Timeout bounds each of the two phases (compile, execute) independently,
// per spec.md §4.B.
const Timeout = 5 * time.Second

const baseHarnessCode = `import Solution

main = do
TEST_CASES

testChecker actual expected =
  if actual == expected
    then putStrLn "p"
    else putStrLn ("f" ++ "," ++ show actual ++ "," ++ show expected)
`

// Haskell's test_checker is folded into the harness file rather than a
// separate module: GHC resolves a bare compile target most simply when
// everything lives in one file, and the original Haskell handler does
// the same. Test.hs imports Solution.hs instead, so a submission is
// expected to declare its own "module Solution where" header, matching
// original_source/tests/submit/haskell.rs's submitted solutions.
const testRunnerCode = `-- unused: Haskell test_checker lives in the main harness file.
`

// Handler is the Haskell LanguageHandler, rooted at a single job
// directory.
type Handler struct {
	dir string
}

func New(dir string) *Handler { return &Handler{dir: dir} }

func (h *Handler) SolutionFilePath() string    { return filepath.Join(h.dir, "Solution.hs") }
func (h *Handler) TestRunnerFilePath() string  { return filepath.Join(h.dir, "TestRunner.hs") }
func (h *Handler) TestHarnessFilePath() string { return filepath.Join(h.dir, "Test.hs") }

func (h *Handler) TestRunnerCode() string  { return testRunnerCode }
func (h *Handler) BaseHarnessCode() string { return baseHarnessCode }

// GuardsNeverHalt is false: the generated main has no per-case exception
// guard, so an uncaught exception in any test case halts the harness.
func (h *Handler) GuardsNeverHalt() bool { return false }

func (h *Handler) FormatParameter(p model.Parameter) string {
	switch p.ValueType {
	case model.String:
		return fmt.Sprintf("(%q)", p.Value)
	case model.Char:
		return fmt.Sprintf("('%s')", p.Value)
	case model.Bool:
		if p.Value == "true" {
			return "(True)"
		}
		return "(False)"
	default:
		return fmt.Sprintf("(%s)", p.Value)
	}
}

func (h *Handler) GenerateTestCases(cases []model.TestCase) string {
	fragments := make([]string, 0, len(cases))
	for _, tc := range cases {
		inputs := make([]string, 0, len(tc.InputParameters))
		for _, p := range tc.InputParameters {
			inputs = append(inputs, h.FormatParameter(p))
		}
		outputs := make([]string, 0, len(tc.OutputParameters))
		for _, p := range tc.OutputParameters {
			outputs = append(outputs, h.FormatParameter(p))
		}

		fragments = append(fragments, fmt.Sprintf("  testChecker (solution %s) (%s)",
			strings.Join(inputs, " "), strings.Join(outputs, " ")))
	}
	return strings.Join(fragments, "\n")
}

func (h *Handler) Run(ctx context.Context, log *logrus.Entry, sb sandbox.Sandbox) (string, *grading.SubmissionError) {
	executable := filepath.Join(h.dir, "test")

	compileCmd := exec.CommandContext(ctx, "ghc", "-O2", "-o", executable, h.TestHarnessFilePath())
	compileCmd.Dir = h.dir
	log.WithField("cmd", shellquote.Join(compileCmd.Args...)).Info("spawning compilation process")

	compileOutput, err := grading.RunWithTimeout(log, Timeout, compileCmd)
	if err != nil {
		log.WithError(err).Error("could not spawn compile process")
		return "", grading.ErrInternal()
	}
	if compileOutput == nil {
		return "", grading.ErrCompileTimeout(Timeout)
	}

	switch compileOutput.ExitCode {
	case 0:
		// success; warnings on stderr are ignored.
	case 1:
		stripped := grading.ScrubPath(string(compileOutput.Stderr), h.dir)
		return "", grading.ErrCompilation(stripped)
	default:
		log.WithField("exit_code", compileOutput.ExitCode).Error("compilation returned unexpected exit status")
		return "", grading.ErrInternal()
	}

	runCmd := exec.CommandContext(ctx, executable)
	runCmd.Dir = h.dir
	sb.Apply(runCmd)
	log.WithField("cmd", shellquote.Join(runCmd.Args...)).Info("spawning execution process")

	var runOutput *grading.ProcessOutput
	var runErr error
	nsErr := sb.WithNamespace(log, func() error {
		runOutput, runErr = grading.RunWithTimeout(log, Timeout, runCmd)
		return runErr
	})
	if nsErr != nil {
		log.WithError(nsErr).Error("could not spawn execution process")
		return "", grading.ErrInternal()
	}
	if runOutput == nil {
		return "", grading.ErrExecuteTimeout(Timeout)
	}

	return string(runOutput.Stdout), nil
}
