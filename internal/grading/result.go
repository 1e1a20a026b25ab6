package grading

import "github.com/p7-projekt/mozart/internal/model"

// Outcome enumerates the four per-test-case verdicts of spec.md §3.
type Outcome int

const (
	OutcomePass Outcome = iota
	OutcomeWrongAnswer
	OutcomeRuntimeError
	OutcomeUnknown
)

// TestCaseResult is the reconstructed per-test-case verdict, produced by
// the Result Parser (spec.md §4.D) and consumed by the Result/Error
// Taxonomy (spec.md §4.F).
type TestCaseResult struct {
	ID      uint64
	Outcome Outcome

	// Populated only when Outcome == OutcomeWrongAnswer.
	InputParameters []model.Parameter
	Actual          string
	Expected        string

	// Populated only when Outcome == OutcomeRuntimeError.
	Detail string
}
