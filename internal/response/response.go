// Package response maps grading's internal SubmissionError taxonomy onto
// the wire JSON shape of spec.md §4.F / §6.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/p7-projekt/mozart/internal/grading"
)

// testResultJSON mirrors original_source/src/model.rs's TestResult /
// TestCaseFailureReason tagged unions, flattened to the camelCase JSON
// shape spec.md §6 requires.
type testResultJSON struct {
	ID         uint64      `json:"id"`
	TestResult string      `json:"testResult"`
	Cause      string      `json:"cause,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

type wrongAnswerDetails struct {
	InputParameters []parameterJSON `json:"inputParameters"`
	Actual          string          `json:"actual"`
	Expected        string          `json:"expected"`
}

type parameterJSON struct {
	ValueType string `json:"valueType"`
	Value     string `json:"value"`
}

type submissionJSON struct {
	Result          string           `json:"result"`
	Reason          string           `json:"reason,omitempty"`
	TestCaseResults []testResultJSON `json:"testCaseResults,omitempty"`
}

// Write renders err (nil meaning a full pass) as the HTTP response
// spec.md §4.F tabulates, writing directly to w.
func Write(w http.ResponseWriter, err *grading.SubmissionError) {
	w.Header().Set("Content-Type", "application/json")

	if err == nil {
		writeJSON(w, http.StatusOK, submissionJSON{Result: "pass"})
		return
	}

	if err.IsInternal() {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err.IsFailure() {
		writeJSON(w, http.StatusOK, submissionJSON{
			Result:          "failure",
			TestCaseResults: toTestResults(err.Results()),
		})
		return
	}

	writeJSON(w, http.StatusOK, submissionJSON{Result: "error", Reason: err.Error()})
}

func toTestResults(results []grading.TestCaseResult) []testResultJSON {
	out := make([]testResultJSON, 0, len(results))
	for _, r := range results {
		switch r.Outcome {
		case grading.OutcomePass:
			out = append(out, testResultJSON{ID: r.ID, TestResult: "pass"})
		case grading.OutcomeUnknown:
			out = append(out, testResultJSON{ID: r.ID, TestResult: "unknown"})
		case grading.OutcomeWrongAnswer:
			params := make([]parameterJSON, 0, len(r.InputParameters))
			for _, p := range r.InputParameters {
				params = append(params, parameterJSON{ValueType: string(p.ValueType), Value: p.Value})
			}
			out = append(out, testResultJSON{
				ID:         r.ID,
				TestResult: "failure",
				Cause:      "wrongAnswer",
				Details: wrongAnswerDetails{
					InputParameters: params,
					Actual:          r.Actual,
					Expected:        r.Expected,
				},
			})
		case grading.OutcomeRuntimeError:
			out = append(out, testResultJSON{
				ID:         r.ID,
				TestResult: "failure",
				Cause:      "runtimeError",
				Details:    r.Detail,
			})
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
