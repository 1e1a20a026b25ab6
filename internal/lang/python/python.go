// Package python implements grading.LanguageHandler for the Python
// target, grounded on original_source/src/runner/python.rs. Python is
// interpreted, so Run has a single execution step (no compile phase).
package python

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

// Timeout bounds the single execution step, per spec.md §4.B's single
// TIMEOUT constant shared by every external tool invocation.
const Timeout = 5 * time.Second

const baseHarnessCode = `
from solution import solution
from test_runner import test_checker


def main():
TEST_CASES


if __name__ == "__main__":
    main()
`

const testRunnerCode = `
def test_checker(actual, expected):
    if actual == expected:
        print("p")
    else:
        print("f," + repr(actual) + "," + repr(expected))
`

const exceptionSnippet = `    try:
%s
    except Exception as e:
        print("r," + str(e))
`

// Handler is the Python LanguageHandler, rooted at a single job
// directory.
type Handler struct {
	dir string
}

func New(dir string) *Handler { return &Handler{dir: dir} }

func (h *Handler) SolutionFilePath() string    { return filepath.Join(h.dir, "solution.py") }
func (h *Handler) TestRunnerFilePath() string  { return filepath.Join(h.dir, "test_runner.py") }
func (h *Handler) TestHarnessFilePath() string { return filepath.Join(h.dir, "main.py") }

func (h *Handler) TestRunnerCode() string  { return testRunnerCode }
func (h *Handler) BaseHarnessCode() string { return baseHarnessCode }

// GuardsNeverHalt is true: every test case is wrapped in a try/except that
// prints "r,<detail>" and keeps going, so the generated main never halts
// early on a user exception.
func (h *Handler) GuardsNeverHalt() bool { return true }

func (h *Handler) FormatParameter(p model.Parameter) string {
	switch p.ValueType {
	case model.Int, model.Float:
		return p.Value
	case model.Char, model.String:
		return fmt.Sprintf("%q", p.Value)
	case model.Bool:
		if p.Value == "true" {
			return "True"
		}
		return "False"
	default:
		return p.Value
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

		call := fmt.Sprintf("        test_checker(solution(%s), (%s))",
			strings.Join(inputs, ", "), strings.Join(outputs, ", "))
		fragments = append(fragments, fmt.Sprintf(exceptionSnippet, call))
	}
	return strings.Join(fragments, "\n")
}

func (h *Handler) Run(ctx context.Context, log *logrus.Entry, sb sandbox.Sandbox) (string, *grading.SubmissionError) {
	cmd := exec.CommandContext(ctx, "python3", h.TestHarnessFilePath())
	cmd.Dir = h.dir
	sb.Apply(cmd)

	log.WithField("cmd", shellquote.Join(cmd.Args...)).Info("spawning execution process")

	var output *grading.ProcessOutput
	var err error
	runErr := sb.WithNamespace(log, func() error {
		output, err = grading.RunWithTimeout(log, Timeout, cmd)
		return err
	})
	if runErr != nil {
		log.WithError(runErr).Error("could not spawn execution process")
		return "", grading.ErrInternal()
	}
	if output == nil {
		return "", grading.ErrExecuteTimeout(Timeout)
	}

	if output.ExitCode != 0 {
		stripped := grading.ScrubPath(strings.TrimSpace(string(output.Stderr)), h.dir)
		return "", grading.ErrExecution(stripped)
	}

	return string(output.Stdout), nil
}
