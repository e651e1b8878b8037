package traverse

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Result is the ordered mapping of root type name to nested nodes. It
// marshals to a JSON/YAML object whose keys keep the input document's
// declaration order; stdlib map marshaling would sort them, and
// declaration order is the contract.
type Result struct {
	roots []string
	nodes map[string][]Node
}

// Roots returns the root type names in declaration order.
func (r *Result) Roots() []string { return r.roots }

// Nodes returns the expansion of one root.
func (r *Result) Nodes(root string) []Node { return r.nodes[root] }

// Len returns the number of roots.
func (r *Result) Len() int { return len(r.roots) }

func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, root := range r.roots {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(root)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.nodes[root])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Result) MarshalYAML() (any, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, root := range r.roots {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: root}
		var val yaml.Node
		if err := val.Encode(r.nodes[root]); err != nil {
			return nil, err
		}
		mapping.Content = append(mapping.Content, key, &val)
	}
	return mapping, nil
}
