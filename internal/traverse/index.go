// Package traverse converts the flat type/field graph of an introspection
// document into a depth-bounded, cycle-safe nested representation.
package traverse

import (
	"fmt"
	"strings"

	"schemascope/internal/introspection"
)

// Index is the addressable type lookup built from a document. It keeps the
// document's declaration order so output stays diff-friendly across runs.
type Index struct {
	types map[string]introspection.Type
	order []string
}

// NewIndex builds the name -> type lookup. Duplicate names keep the first
// definition; a nameless type is rejected (it cannot be addressed).
func NewIndex(doc *introspection.Document) (*Index, error) {
	ix := &Index{types: make(map[string]introspection.Type, len(doc.Types))}
	for i, t := range doc.Types {
		if strings.TrimSpace(t.Name) == "" {
			return nil, &introspection.MalformedSchemaError{Reason: fmt.Sprintf("types[%d] has no name", i)}
		}
		if _, ok := ix.types[t.Name]; ok {
			continue
		}
		ix.types[t.Name] = t
		ix.order = append(ix.order, t.Name)
	}
	return ix, nil
}

// Lookup returns the type definition for name, if present.
func (ix *Index) Lookup(name string) (introspection.Type, bool) {
	t, ok := ix.types[name]
	return t, ok
}

// Names returns all type names in declaration order.
func (ix *Index) Names() []string {
	return ix.order
}

// Len returns the number of indexed types.
func (ix *Index) Len() int { return len(ix.order) }

// ResolveFieldType unwraps a field's type reference to the base named type.
// When the base type follows the edge/connection pattern (it declares a
// "node" field), the reference resolves one level through to the node's
// base type: pagination wrappers carry no information of their own and
// would double traversal depth. One unwrap level is the contract.
func (ix *Index) ResolveFieldType(ref introspection.TypeRef) string {
	base := ref.Base()
	t, ok := ix.types[base]
	if !ok {
		return base
	}
	for _, f := range t.Fields {
		if f.Name == "node" {
			if node := f.Type.Base(); node != "" {
				return node
			}
			break
		}
	}
	return base
}
