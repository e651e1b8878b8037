package render

import (
	"strings"
	"testing"

	"schemascope/internal/introspection"
	"schemascope/internal/logging"
	"schemascope/internal/traverse"
)

func TestDOT(t *testing.T) {
	const cyclic = `{
	  "data": {"__schema": {"types": [
	    {"kind": "OBJECT", "name": "User", "fields": [
	      {"name": "name", "type": {"kind": "SCALAR", "name": "String", "ofType": null}},
	      {"name": "boss", "type": {"kind": "OBJECT", "name": "User", "ofType": null}}
	    ]}
	  ]}}
	}`
	doc, err := introspection.Parse([]byte(cyclic))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ix, err := traverse.NewIndex(doc)
	if err != nil {
		t.Fatalf("NewIndex failed: %v", err)
	}
	res := traverse.New(ix, traverse.Options{MaxDepth: 3}, logging.Discard()).TraverseAll()

	out := string(DOT(res))
	if !strings.HasPrefix(out, "digraph schema {") {
		t.Errorf("missing digraph header:\n%s", out)
	}
	if !strings.Contains(out, `"User" -> "String" [label="name"];`) {
		t.Errorf("missing scalar edge:\n%s", out)
	}
	if !strings.Contains(out, `"User" -> "User" [label="boss"];`) {
		t.Errorf("missing cycle edge:\n%s", out)
	}
	// the self edge repeats at every level of the bounded tree but must
	// be emitted exactly once
	if n := strings.Count(out, `[label="boss"]`); n != 1 {
		t.Errorf("boss edge emitted %d times, want 1:\n%s", n, out)
	}
}
