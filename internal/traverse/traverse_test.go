package traverse

import (
	"bytes"
	"reflect"
	"testing"

	"schemascope/internal/introspection"
	"schemascope/internal/logging"
)

const connectionSchema = `{
  "data": {
    "__schema": {
      "queryType": {"name": "Query"},
      "types": [
        {
          "kind": "OBJECT",
          "name": "User",
          "fields": [
            {"name": "name", "type": {"kind": "SCALAR", "name": "String", "ofType": null}},
            {"name": "friends", "type": {"kind": "OBJECT", "name": "UserConnection", "ofType": null}}
          ]
        },
        {
          "kind": "OBJECT",
          "name": "UserConnection",
          "fields": [
            {"name": "node", "type": {"kind": "OBJECT", "name": "User", "ofType": null}}
          ]
        },
        {"kind": "SCALAR", "name": "String", "fields": null}
      ]
    }
  }
}`

func mustIndex(t *testing.T, raw string) *Index {
	t.Helper()
	doc, err := introspection.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ix, err := NewIndex(doc)
	if err != nil {
		t.Fatalf("NewIndex failed: %v", err)
	}
	return ix
}

func newTraverser(t *testing.T, raw string, depth int) *Traverser {
	t.Helper()
	return New(mustIndex(t, raw), Options{MaxDepth: depth}, logging.Discard())
}

func TestExpandConnectionExample(t *testing.T) {
	tr := newTraverser(t, connectionSchema, 2)

	got := tr.Expand("User", nil)
	want := []Node{
		{Field: "name", Type: "String"},
		{Field: "friends", Type: "User", Fields: []Node{
			{Field: "name", Type: "String"},
			{Field: "friends", Type: "User"},
		}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand(User) = %+v, want %+v", got, want)
	}
}

func TestResolveFieldTypeUnwrapsConnection(t *testing.T) {
	ix := mustIndex(t, connectionSchema)

	tests := []struct {
		name string
		ref  introspection.TypeRef
		want string
	}{
		{"plain scalar", introspection.TypeRef{Kind: "SCALAR", Name: "String"}, "String"},
		{"connection to node", introspection.TypeRef{Kind: "OBJECT", Name: "UserConnection"}, "User"},
		{"non-null list of connection", introspection.TypeRef{
			Kind: "NON_NULL",
			OfType: &introspection.TypeRef{
				Kind:   "LIST",
				OfType: &introspection.TypeRef{Kind: "OBJECT", Name: "UserConnection"},
			},
		}, "User"},
		{"unknown type passes through", introspection.TypeRef{Kind: "OBJECT", Name: "Ghost"}, "Ghost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ix.ResolveFieldType(tt.ref); got != tt.want {
				t.Errorf("ResolveFieldType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandSelfCycleTerminates(t *testing.T) {
	const selfCycle = `{
	  "data": {"__schema": {"types": [
	    {"kind": "OBJECT", "name": "A", "fields": [
	      {"name": "self", "type": {"kind": "OBJECT", "name": "A", "ofType": null}}
	    ]}
	  ]}}
	}`
	for _, depth := range []int{1, 2, 5, 50} {
		tr := newTraverser(t, selfCycle, depth)
		got := tr.Expand("A", nil)
		if len(got) != 1 {
			t.Fatalf("depth %d: len = %d, want 1", depth, len(got))
		}
		// descend to the deepest node and check the cycle surfaced as a
		// truncation leaf rather than expanding forever
		n := got[0]
		levels := 1
		for n.Fields != nil {
			if len(n.Fields) != 1 {
				t.Fatalf("depth %d: inner len = %d, want 1", depth, len(n.Fields))
			}
			n = n.Fields[0]
			levels++
		}
		if n.Field != "self" || n.Type != "A" {
			t.Errorf("depth %d: leaf = %+v, want self/A", depth, n)
		}
		if levels > depth+1 {
			t.Errorf("depth %d: nested %d levels, want <= %d", depth, levels, depth+1)
		}
	}
}

func TestExpandDepthZero(t *testing.T) {
	tr := newTraverser(t, connectionSchema, 0)
	got := tr.Expand("User", nil)
	want := []Node{
		{Field: "name", Type: "String"},
		{Field: "friends", Type: "User"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand(User) at depth 0 = %+v, want %+v", got, want)
	}
}

func TestExpandLeafDistinction(t *testing.T) {
	const chain = `{
	  "data": {"__schema": {"types": [
	    {"kind": "OBJECT", "name": "A", "fields": [
	      {"name": "label", "type": {"kind": "SCALAR", "name": "String", "ofType": null}},
	      {"name": "next", "type": {"kind": "OBJECT", "name": "B", "ofType": null}}
	    ]},
	    {"kind": "OBJECT", "name": "B", "fields": [
	      {"name": "value", "type": {"kind": "SCALAR", "name": "String", "ofType": null}}
	    ]},
	    {"kind": "SCALAR", "name": "String", "fields": null}
	  ]}}
	}`

	// at depth 1 the B reference is a truncation leaf
	shallow := newTraverser(t, chain, 1).Expand("A", nil)
	if shallow[1].Fields == nil {
		// expansion of A uses the whole budget; B's fields are listed
		// unexpanded one level down
		t.Fatalf("next at depth 1 should list B's fields shallowly, got nil")
	}
	if shallow[1].Fields[0].Fields != nil {
		t.Errorf("B.value should be unexpanded at depth 1")
	}

	// a scalar field is a true leaf at every depth
	deep := newTraverser(t, chain, 10).Expand("A", nil)
	if deep[0].Fields != nil {
		t.Errorf("scalar field label must stay a leaf, got %+v", deep[0].Fields)
	}
	// while the truncation leaf expands once the budget allows
	if deep[1].Fields == nil || deep[1].Fields[0].Field != "value" {
		t.Errorf("next should expand at depth 10, got %+v", deep[1].Fields)
	}
}

func TestExpandSiblingBranchesIndependent(t *testing.T) {
	// Shared is referenced from two sibling branches; suppressing it
	// globally after the first visit would be wrong.
	const diamond = `{
	  "data": {"__schema": {"types": [
	    {"kind": "OBJECT", "name": "Root", "fields": [
	      {"name": "left", "type": {"kind": "OBJECT", "name": "Shared", "ofType": null}},
	      {"name": "right", "type": {"kind": "OBJECT", "name": "Shared", "ofType": null}}
	    ]},
	    {"kind": "OBJECT", "name": "Shared", "fields": [
	      {"name": "id", "type": {"kind": "SCALAR", "name": "ID", "ofType": null}}
	    ]}
	  ]}}
	}`
	got := newTraverser(t, diamond, 3).Expand("Root", nil)
	for _, n := range got {
		if n.Fields == nil {
			t.Errorf("branch %s: Shared was not expanded", n.Field)
		}
	}
}

func TestExpandUnknownTypeDegradesToLeaf(t *testing.T) {
	const partial = `{
	  "data": {"__schema": {"types": [
	    {"kind": "OBJECT", "name": "A", "fields": [
	      {"name": "mystery", "type": {"kind": "OBJECT", "name": "Omitted", "ofType": null}}
	    ]}
	  ]}}
	}`
	got := newTraverser(t, partial, 3).Expand("A", nil)
	want := []Node{{Field: "mystery", Type: "Omitted"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand(A) = %+v, want %+v", got, want)
	}
}

func TestTraverseAllRootsAndOrder(t *testing.T) {
	tr := newTraverser(t, connectionSchema, 2)
	res := tr.TraverseAll()

	// UserConnection is a wrapper, String a scalar: only User remains
	if got := res.Roots(); !reflect.DeepEqual(got, []string{"User"}) {
		t.Fatalf("Roots() = %v, want [User]", got)
	}
	if res.Nodes("User") == nil {
		t.Fatalf("User expansion missing")
	}
}

func TestTraverseAllRootAllowlist(t *testing.T) {
	ix := mustIndex(t, connectionSchema)
	tr := New(ix, Options{MaxDepth: 1, Roots: []string{"UserConnection", "Nope"}}, logging.Discard())
	res := tr.TraverseAll()
	if got := res.Roots(); !reflect.DeepEqual(got, []string{"UserConnection"}) {
		t.Errorf("Roots() = %v, want [UserConnection]", got)
	}
}

func TestResultDeterministic(t *testing.T) {
	run := func() []byte {
		res := newTraverser(t, connectionSchema, 3).TraverseAll()
		out, err := res.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON failed: %v", err)
		}
		return out
	}
	first := run()
	for i := 0; i < 10; i++ {
		if next := run(); !bytes.Equal(first, next) {
			t.Fatalf("output differs between runs:\n%s\nvs\n%s", first, next)
		}
	}
}

func TestIndexDeclarationOrder(t *testing.T) {
	ix := mustIndex(t, connectionSchema)
	want := []string{"User", "UserConnection", "String"}
	if !reflect.DeepEqual(ix.Names(), want) {
		t.Errorf("Names() = %v, want %v", ix.Names(), want)
	}
}
