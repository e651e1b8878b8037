// Package render encodes traversal output for the CLI: indented JSON,
// YAML, Graphviz DOT and a plain-text stats summary.
package render

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"schemascope/internal/traverse"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON marshals v to 2-space-indented JSON with a trailing newline.
// Custom marshalers (the ordered Result) are honored, then the whole
// stream is re-indented so output is uniform.
func JSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	var buf bytes.Buffer
	if err := stdjson.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("indent json: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// YAML marshals v with 2-space indentation.
func YAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// StatsText renders a stats summary for terminals.
func StatsText(s *traverse.Stats) string {
	return fmt.Sprintf("types:        %d\nfields:       %d\ninput fields: %d\nenum values:  %d\ncycles:       %d\nmax depth:    %d\n",
		s.Types, s.Fields, s.InputFields, s.EnumValues, s.Cycles, s.MaxDepth)
}
