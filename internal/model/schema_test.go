package model_test

import (
	"testing"

	"github.com/p7-projekt/mozart/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSubmission_Valid(t *testing.T) {
	body := []byte(`{
		"solution": "def solution(a, b): return a + b",
		"testCases": [
			{
				"id": 1,
				"inputParameters": [{"valueType": "int", "value": "1"}],
				"outputParameters": [{"valueType": "int", "value": "2"}]
			}
		]
	}`)
	reason, err := model.ValidateSubmission(body)
	require.NoError(t, err)
	assert.Empty(t, reason)
}

func TestValidateSubmission_MissingSolution(t *testing.T) {
	body := []byte(`{"testCases": []}`)
	reason, err := model.ValidateSubmission(body)
	require.NoError(t, err)
	assert.NotEmpty(t, reason)
}

func TestValidateSubmission_BadValueType(t *testing.T) {
	body := []byte(`{
		"solution": "x",
		"testCases": [
			{"id": 1, "inputParameters": [{"valueType": "bignum", "value": "1"}], "outputParameters": []}
		]
	}`)
	reason, err := model.ValidateSubmission(body)
	require.NoError(t, err)
	assert.NotEmpty(t, reason)
}

func TestValidateSubmission_NotAnObject(t *testing.T) {
	reason, err := model.ValidateSubmission([]byte(`[]`))
	require.NoError(t, err)
	assert.NotEmpty(t, reason)
}

func TestValidateSubmission_MalformedJSON(t *testing.T) {
	_, err := model.ValidateSubmission([]byte(`{not json`))
	assert.Error(t, err)
}
