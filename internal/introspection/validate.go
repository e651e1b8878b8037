package introspection

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// shapeSchema pins the structural contract of an introspection payload:
// a __schema envelope (bare or under "data") holding a types array whose
// entries all carry kind and name. Field lists may be null for leaf kinds.
const shapeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "anyOf": [
    {
      "required": ["data"],
      "properties": {
        "data": {
          "type": "object",
          "required": ["__schema"],
          "properties": {"__schema": {"$ref": "#/$defs/schema"}}
        }
      }
    },
    {
      "required": ["__schema"],
      "properties": {"__schema": {"$ref": "#/$defs/schema"}}
    }
  ],
  "$defs": {
    "schema": {
      "type": "object",
      "required": ["types"],
      "properties": {
        "types": {"type": "array", "items": {"$ref": "#/$defs/type"}}
      }
    },
    "type": {
      "type": "object",
      "required": ["kind", "name"],
      "properties": {
        "kind": {"type": "string"},
        "name": {"type": "string", "minLength": 1},
        "fields": {"type": ["array", "null"], "items": {"$ref": "#/$defs/field"}}
      }
    },
    "field": {
      "type": "object",
      "required": ["name", "type"],
      "properties": {
        "name": {"type": "string"},
        "type": {"$ref": "#/$defs/typeRef"}
      }
    },
    "typeRef": {
      "type": "object",
      "properties": {
        "kind": {"type": "string"},
        "name": {"type": ["string", "null"]},
        "ofType": {
          "anyOf": [{"type": "null"}, {"$ref": "#/$defs/typeRef"}]
        }
      }
    }
  }
}`

var shapeValidator = jsonschema.MustCompileString("introspection.schema.json", shapeSchema)

// ValidateShape checks a raw payload against the structural contract
// before decoding, for precise diagnostics in strict mode. It accepts
// introspection JSON only; SDL inputs skip shape validation.
func ValidateShape(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return &MalformedSchemaError{Reason: "invalid JSON", Err: err}
	}
	if err := shapeValidator.Validate(v); err != nil {
		return &MalformedSchemaError{Reason: fmt.Sprintf("shape validation: %v", err)}
	}
	return nil
}
