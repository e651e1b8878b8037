package traverse

import (
	"strings"
)

// Stats summarizes the type graph without materializing the nested tree.
type Stats struct {
	// Types counts named non-introspection, non-scalar type definitions.
	Types int `json:"types" yaml:"types"`
	// Fields counts the fields declared across those types.
	Fields int `json:"fields" yaml:"fields"`
	// InputFields counts input object arguments declared across those types.
	InputFields int `json:"input_fields" yaml:"input_fields"`
	// EnumValues counts enum members declared across those types.
	EnumValues int `json:"enum_values" yaml:"enum_values"`
	// Cycles counts distinct resolved field edges that point back to a
	// type already being expanded.
	Cycles int `json:"cycles" yaml:"cycles"`
	// MaxDepth is the longest acyclic expansion chain from any domain root.
	MaxDepth int `json:"max_depth" yaml:"max_depth"`
}

// Stats walks the same resolved graph as TraverseAll but short-circuits:
// acyclic subtrees are measured once and memoized, and a confirmed cycle
// edge is cut instead of re-walked, so large schemas stay cheap.
func (t *Traverser) Stats() *Stats {
	s := &Stats{}
	for _, name := range t.index.Names() {
		if strings.HasPrefix(name, "__") {
			continue
		}
		typ, _ := t.index.Lookup(name)
		if typ.Kind == "SCALAR" {
			continue
		}
		s.Types++
		s.Fields += len(typ.Fields)
		s.InputFields += len(typ.InputFields)
		s.EnumValues += len(typ.EnumValues)
	}

	cycles := map[[2]string]struct{}{}
	memo := map[string]int{}
	active := map[string]bool{}

	// depth reports the longest expansion chain below name and whether the
	// subtree was cycle-free (only then is the result safe to memoize).
	var depth func(name string) (int, bool)
	depth = func(name string) (int, bool) {
		if d, ok := memo[name]; ok {
			return d, true
		}
		typ, ok := t.index.Lookup(name)
		if !ok || len(typ.Fields) == 0 {
			return 0, true
		}
		active[name] = true
		best := 0
		pure := true
		for _, f := range typ.Fields {
			target := t.index.ResolveFieldType(f.Type)
			if active[target] {
				cycles[[2]string{name, target}] = struct{}{}
				pure = false
				continue
			}
			d, p := depth(target)
			if !p {
				pure = false
			}
			if d+1 > best {
				best = d + 1
			}
		}
		delete(active, name)
		if pure {
			memo[name] = best
		}
		return best, pure
	}

	for _, name := range t.rootNames() {
		if d, _ := depth(name); d > s.MaxDepth {
			s.MaxDepth = d
		}
	}
	s.Cycles = len(cycles)
	return s
}
