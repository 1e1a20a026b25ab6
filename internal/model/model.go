// Package model defines the wire-level request shapes accepted by mozart.
package model

import "fmt"

// ValueType is the declared type of a Parameter's textual value.
type ValueType string

const (
	Bool   ValueType = "bool"
	Int    ValueType = "int"
	Float  ValueType = "float"
	Char   ValueType = "char"
	String ValueType = "string"
)

// Submission is the immutable input to a single grading run.
type Submission struct {
	Solution  string     `json:"solution"`
	TestCases []TestCase `json:"testCases"`
}

// TestCase is one input/expected-output pair to run through the solution.
// Id is opaque to the core and is echoed back in TestCaseResult.
type TestCase struct {
	ID               uint64      `json:"id"`
	InputParameters  []Parameter `json:"inputParameters"`
	OutputParameters []Parameter `json:"outputParameters"`
}

// Parameter is a single typed value in the canonical external form
// described in spec §3: booleans as "true"/"false", integers as signed
// decimal, floats with a fractional part, a char as a single grapheme,
// and a string as raw text.
type Parameter struct {
	ValueType ValueType `json:"valueType"`
	Value     string    `json:"value"`
}

func (p Parameter) String() string {
	return fmt.Sprintf("%s(%s)", p.ValueType, p.Value)
}
