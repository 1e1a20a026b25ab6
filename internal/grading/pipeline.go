package grading

import (
	"context"

	"github.com/p7-projekt/mozart/internal/model"
	"github.com/p7-projekt/mozart/internal/sandbox"
	"github.com/sirupsen/logrus"
)

// Check runs one submission end to end (spec.md §4.E): assemble the
// harness, compile+run it under the sandbox, and parse its stdout into
// per-test-case results. The returned error is nil only when every test
// case passed; otherwise it is a *SubmissionError describing why, where
// ErrFailure carries the full per-case breakdown.
//
// The caller (Submit, spec.md §4.G) owns the job directory's lifecycle;
// Check never creates or removes it.
func Check(ctx context.Context, log *logrus.Entry, handler LanguageHandler, sb sandbox.Sandbox, submission model.Submission) *SubmissionError {
	if err := Assemble(log, handler, submission); err != nil {
		return err
	}

	stdout, err := handler.Run(ctx, log, sb)
	if err != nil {
		return err
	}

	log.WithField("stdout", stdout).Debug("parsing harness stdout")
	results, err := ParseResults(stdout, submission.TestCases, handler.GuardsNeverHalt())
	if err != nil {
		return err
	}

	allPassed := true
	for _, r := range results {
		if r.Outcome != OutcomePass {
			allPassed = false
			break
		}
	}
	if allPassed {
		log.Info("submission passed all test cases")
		return nil
	}

	log.Info("submission did not pass all test cases")
	return ErrFailure(results)
}
