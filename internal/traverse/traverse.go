package traverse

import (
	"log/slog"
	"strings"
)

// DefaultMaxDepth matches the CLI default.
const DefaultMaxDepth = 3

// DefaultWrapperSuffixes name the pagination wrapper types excluded from
// the domain roots; their contents still appear inline via field-type
// resolution.
var DefaultWrapperSuffixes = []string{"Connection", "Edge", "Payload"}

// Options bound a traversal.
type Options struct {
	// MaxDepth is the expansion budget per root; 0 yields one shallow
	// level of unexpanded field nodes.
	MaxDepth int

	// WrapperSuffixes excludes matching type names from the domain roots.
	// Nil means DefaultWrapperSuffixes; an empty slice disables the filter.
	WrapperSuffixes []string

	// Roots restricts TraverseAll to the named types. Empty means every
	// domain type.
	Roots []string
}

// Node is one entry of the nested output: a field, the named type it
// resolves to, and - when the traversal expanded that type - its fields.
// A nil Fields is a leaf: a true leaf when the type has nothing more to
// say, a truncation leaf when the depth budget ran out or a cycle was cut.
type Node struct {
	Field  string `json:"field" yaml:"field"`
	Type   string `json:"type" yaml:"type"`
	Fields []Node `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Traverser walks the type graph of an immutable Index. It holds no
// mutable state across calls; visited paths live only on the stack of one
// recursive descent.
type Traverser struct {
	index *Index
	opts  Options
	log   *slog.Logger
}

func New(index *Index, opts Options, logger *slog.Logger) *Traverser {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.WrapperSuffixes == nil {
		opts.WrapperSuffixes = DefaultWrapperSuffixes
	}
	return &Traverser{index: index, opts: opts, log: logger}
}

// Expand returns the nested nodes for typeName's fields, depth-first in
// declaration order. path carries the type names already expanded on the
// current root-to-node branch; it is passed down explicitly and never
// shared across sibling branches, so a type suppressed on one branch still
// expands on an unrelated one.
//
// An unknown or fieldless type returns nil (true leaf). A type already on
// path, or reached with the depth budget spent, yields one shallow level
// of field/type nodes with no further expansion (truncation leaves).
func (t *Traverser) Expand(typeName string, path []string) []Node {
	typ, ok := t.index.Lookup(typeName)
	if !ok || len(typ.Fields) == 0 {
		return nil
	}

	truncate := len(path) >= t.opts.MaxDepth
	if !truncate && onPath(path, typeName) {
		t.log.Debug("cycle cut", "type", typeName, "path", strings.Join(path, "."))
		truncate = true
	}

	nodes := make([]Node, 0, len(typ.Fields))
	for _, f := range typ.Fields {
		n := Node{Field: f.Name, Type: t.index.ResolveFieldType(f.Type)}
		if !truncate {
			n.Fields = t.Expand(n.Type, append(path, typeName))
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// TraverseAll expands every domain type as a root and returns the ordered
// mapping of root type name to nested nodes.
func (t *Traverser) TraverseAll() *Result {
	res := &Result{nodes: map[string][]Node{}}
	for _, name := range t.rootNames() {
		res.roots = append(res.roots, name)
		res.nodes[name] = t.Expand(name, nil)
	}
	return res
}

func (t *Traverser) rootNames() []string {
	if len(t.opts.Roots) > 0 {
		var roots []string
		for _, name := range t.opts.Roots {
			if _, ok := t.index.Lookup(name); !ok {
				t.log.Warn("requested root not in schema", "type", name)
				continue
			}
			roots = append(roots, name)
		}
		return roots
	}
	var roots []string
	for _, name := range t.index.Names() {
		if t.isDomainType(name) {
			roots = append(roots, name)
		}
	}
	return roots
}

// isDomainType filters the traversal roots down to schema-defined entity
// types: introspection meta-types, pagination wrappers and fieldless
// leaves are excluded.
func (t *Traverser) isDomainType(name string) bool {
	if strings.HasPrefix(name, "__") {
		return false
	}
	for _, suffix := range t.opts.WrapperSuffixes {
		if strings.HasSuffix(name, suffix) {
			return false
		}
	}
	typ, ok := t.index.Lookup(name)
	if !ok {
		return false
	}
	if typ.Kind != "OBJECT" && typ.Kind != "INTERFACE" {
		return false
	}
	return len(typ.Fields) > 0
}

func onPath(path []string, name string) bool {
	for _, p := range path {
		if p == name {
			return true
		}
	}
	return false
}
