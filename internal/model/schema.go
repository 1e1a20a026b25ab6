package model

import (
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// submissionSchemaJSON is the JSON Schema document describing the wire
// shape of Submission, used to reject malformed bodies with a precise
// reason before they are unmarshalled. Grounded on the
// gojsonschema-validated build document in the teacher's pkg/builds
// package.
const submissionSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["solution", "testCases"],
  "additionalProperties": true,
  "properties": {
    "solution": { "type": "string" },
    "testCases": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "inputParameters", "outputParameters"],
        "properties": {
          "id": { "type": "integer", "minimum": 0 },
          "inputParameters": {
            "type": "array",
            "items": { "$ref": "#/definitions/parameter" }
          },
          "outputParameters": {
            "type": "array",
            "items": { "$ref": "#/definitions/parameter" }
          }
        }
      }
    }
  },
  "definitions": {
    "parameter": {
      "type": "object",
      "required": ["valueType", "value"],
      "properties": {
        "valueType": {
          "type": "string",
          "enum": ["bool", "int", "float", "char", "string"]
        },
        "value": { "type": "string" }
      }
    }
  }
}`

// Schema is the compiled JSON Schema for Submission, built once at
// package init so every request reuses it.
var Schema *gojsonschema.Schema

func init() {
	loader := gojsonschema.NewStringLoader(submissionSchemaJSON)
	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		panic(errors.Wrap(err, "mozart submission schema failed to compile"))
	}
	Schema = schema
}

// ValidateSubmission checks raw request bytes against Schema, returning
// the first validation error's description, or "" if the document is
// valid. The caller still needs to json.Unmarshal the body afterwards;
// this only gives a sharper diagnostic for malformed shapes.
func ValidateSubmission(body []byte) (string, error) {
	result, err := Schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return "", errors.Wrap(err, "schema validation failed")
	}
	if result.Valid() {
		return "", nil
	}
	return result.Errors()[0].String(), nil
}
