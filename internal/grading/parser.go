package grading

import (
	"strings"

	"github.com/p7-projekt/mozart/internal/model"
)

// ParseResults implements the wire protocol described in spec.md §4.D:
// one line per executed test case, in submission order.
//
//	p                -> pass
//	f,ACTUAL,EXPECTED -> wrong answer
//	r,DETAIL          -> runtime error, execution continues
//
// If fewer lines than test cases are produced, the first missing
// position becomes a RuntimeError and every position after it becomes
// Unknown, reconstructing the harness crash that spec.md §4.D describes.
// Any protocol violation (empty line, malformed "f" line, an unknown tag,
// or more lines than test cases) returns an Internal error.
//
// guardsNeverHalt must be the active LanguageHandler's GuardsNeverHalt:
// for a handler whose generated harness never halts on a user exception
// (Python), a truncated stdout cannot be a legitimate mid-run crash, so
// it is reported as Internal rather than reconstructed into a
// RuntimeError/Unknown tail (spec.md §4.D clause 3's exception).
func ParseResults(stdout string, cases []model.TestCase, guardsNeverHalt bool) ([]TestCaseResult, *SubmissionError) {
	trimmed := strings.TrimRight(stdout, "\r\n\t ")

	var lines []string
	if trimmed != "" {
		lines = strings.Split(trimmed, "\n")
	}

	if len(lines) > len(cases) {
		return nil, ErrInternal()
	}

	results := make([]TestCaseResult, 0, len(cases))
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		tc := cases[i]

		if line == "" {
			return nil, ErrInternal()
		}

		parts := strings.SplitN(line, ",", 3)
		switch parts[0] {
		case "p":
			results = append(results, TestCaseResult{ID: tc.ID, Outcome: OutcomePass})
		case "f":
			if len(parts) != 3 {
				return nil, ErrInternal()
			}
			results = append(results, TestCaseResult{
				ID:              tc.ID,
				Outcome:         OutcomeWrongAnswer,
				InputParameters: tc.InputParameters,
				Actual:          parts[1],
				Expected:        parts[2],
			})
		case "r":
			detail := ""
			if idx := strings.IndexByte(line, ','); idx >= 0 {
				detail = line[idx+1:]
			}
			results = append(results, TestCaseResult{ID: tc.ID, Outcome: OutcomeRuntimeError, Detail: detail})
		default:
			return nil, ErrInternal()
		}
	}

	// Fewer lines than test cases: the harness was terminated partway.
	if len(results) < len(cases) {
		if guardsNeverHalt {
			// This handler's harness never halts on a user exception, so a
			// short stdout is not a reconstructable crash: it is a
			// protocol violation.
			return nil, ErrInternal()
		}
		// Position k becomes RuntimeError, everything after becomes Unknown.
		k := len(results)
		results = append(results, TestCaseResult{ID: cases[k].ID, Outcome: OutcomeRuntimeError, Detail: ""})
		for i := k + 1; i < len(cases); i++ {
			results = append(results, TestCaseResult{ID: cases[i].ID, Outcome: OutcomeUnknown})
		}
	}

	return results, nil
}
