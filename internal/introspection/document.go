// Package introspection decodes GraphQL schema descriptions into a flat
// document model: either the JSON result of the standard introspection
// query, or SDL text converted to the same shape.
package introspection

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the decoded schema: the ordered type list plus the optional
// root operation type references. Type order matches the input document.
type Document struct {
	QueryType    *TypeRef
	MutationType *TypeRef
	Types        []Type
}

// Type describes one named type definition.
type Type struct {
	Kind        string       `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Fields      []Field      `json:"fields"`
	InputFields []InputValue `json:"inputFields"`
	EnumValues  []EnumValue  `json:"enumValues"`
}

// Field is a named member of an object or interface type.
type Field struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Args        []InputValue `json:"args"`
	Type        TypeRef      `json:"type"`
}

type InputValue struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	DefaultValue *string `json:"defaultValue"`
	Type         TypeRef `json:"type"`
}

type EnumValue struct {
	Name string `json:"name"`
}

// TypeRef is a possibly wrapped type reference. LIST and NON_NULL refs
// carry the wrapped type in OfType; named refs carry Name.
type TypeRef struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// Base unwraps LIST and NON_NULL layers and returns the underlying named
// type, or "" when the reference chain never reaches a name.
func (r TypeRef) Base() string {
	switch r.Kind {
	case "NON_NULL", "LIST":
		if r.OfType != nil {
			return r.OfType.Base()
		}
		return ""
	default:
		return r.Name
	}
}

// String renders the reference in GraphQL notation, e.g. "[User!]!".
func (r TypeRef) String() string {
	switch r.Kind {
	case "NON_NULL":
		if r.OfType != nil {
			return r.OfType.String() + "!"
		}
		return ""
	case "LIST":
		if r.OfType != nil {
			return "[" + r.OfType.String() + "]"
		}
		return "[]"
	default:
		return r.Name
	}
}

type envelope struct {
	Data struct {
		Schema *schemaPayload `json:"__schema"`
	} `json:"data"`
	Schema *schemaPayload `json:"__schema"`
}

type schemaPayload struct {
	QueryType    *TypeRef `json:"queryType"`
	MutationType *TypeRef `json:"mutationType"`
	Types        []Type   `json:"types"`
}

// LooksLikeIntrospection reports whether the payload resembles an
// introspection result: JSON carrying a type list under __schema.
func LooksLikeIntrospection(raw []byte) bool {
	var payload envelope
	if err := json.Unmarshal(raw, &payload); err != nil {
		return false
	}
	schema := payload.schema()
	return schema != nil && schema.Types != nil
}

func (e *envelope) schema() *schemaPayload {
	if e.Data.Schema != nil {
		return e.Data.Schema
	}
	return e.Schema
}

// Parse decodes an introspection JSON payload. The __schema envelope may sit
// at the top level or under "data" (the shape servers return verbatim).
func Parse(raw []byte) (*Document, error) {
	var payload envelope
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &MalformedSchemaError{Reason: "invalid JSON", Err: err}
	}
	schema := payload.schema()
	if schema == nil || schema.Types == nil {
		return nil, &MalformedSchemaError{Reason: "missing __schema.types"}
	}
	doc := &Document{
		QueryType:    schema.QueryType,
		MutationType: schema.MutationType,
		Types:        schema.Types,
	}
	for i, t := range doc.Types {
		if strings.TrimSpace(t.Name) == "" {
			return nil, &MalformedSchemaError{Reason: fmt.Sprintf("types[%d] has no name", i)}
		}
	}
	return doc, nil
}
