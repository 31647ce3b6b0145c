package seed

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies the variant held by a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// Node is a tagged-variant view of a parsed YAML document: a mapping,
// sequence or scalar, arbitrarily nested. Mappings remember their key
// order so lookups and suggestions stay deterministic. The zero value
// is a null node.
type Node struct {
	kind    Kind
	scalar  any // string, bool, int64 or float64; nil for null
	seq     []Node
	keys    []string
	entries map[string]Node
}

// ParseDocument parses text as a single YAML document and converts it
// into a Node tree. An empty or comment-only document yields a null
// node.
func ParseDocument(text string) (Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return Node{}, err
	}
	return fromYAML(&root)
}

// Kind returns the variant tag of the node.
func (n Node) Kind() Kind {
	return n.kind
}

// IsNull reports whether the node is the YAML null value (or an empty
// document).
func (n Node) IsNull() bool {
	return n.kind == KindNull
}

// IsMapping reports whether the node is a mapping.
func (n Node) IsMapping() bool {
	return n.kind == KindMapping
}

// Get looks up key in a mapping node. The second return value is false
// for absent keys and for non-mapping nodes.
func (n Node) Get(key string) (Node, bool) {
	if n.kind != KindMapping {
		return Node{}, false
	}
	child, ok := n.entries[key]
	return child, ok
}

// Keys returns the mapping keys in document order. Non-mapping nodes
// return nil.
func (n Node) Keys() []string {
	if n.kind != KindMapping {
		return nil
	}
	return n.keys
}

// Items returns the elements of a sequence node in order.
func (n Node) Items() []Node {
	if n.kind != KindSequence {
		return nil
	}
	return n.seq
}

// AsString returns the scalar string value, if the node holds one.
func (n Node) AsString() (string, bool) {
	s, ok := n.scalar.(string)
	return s, ok && n.kind == KindString
}

// AsBool returns the scalar boolean value, if the node holds one.
func (n Node) AsBool() (bool, bool) {
	b, ok := n.scalar.(bool)
	return b, ok && n.kind == KindBool
}

// AsInt returns the scalar value as an int64, if the node holds an
// integer.
func (n Node) AsInt() (int64, bool) {
	i, ok := n.scalar.(int64)
	return i, ok && n.kind == KindNumber
}

// AsFloat returns the scalar value as a float64. Integers convert.
func (n Node) AsFloat() (float64, bool) {
	if n.kind != KindNumber {
		return 0, false
	}
	switch v := n.scalar.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// Interface converts the node tree into plain Go values (map[string]any,
// []any and scalars), the shape schema evaluators expect.
func (n Node) Interface() any {
	switch n.kind {
	case KindMapping:
		m := make(map[string]any, len(n.keys))
		for _, k := range n.keys {
			m[k] = n.entries[k].Interface()
		}
		return m
	case KindSequence:
		items := make([]any, len(n.seq))
		for i, child := range n.seq {
			items[i] = child.Interface()
		}
		return items
	default:
		return n.scalar
	}
}

func fromYAML(n *yaml.Node) (Node, error) {
	switch n.Kind {
	case 0:
		// Empty document: yaml.Unmarshal leaves the node untouched.
		return Node{}, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Node{}, nil
		}
		return fromYAML(n.Content[0])
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.ScalarNode:
		return scalarFromYAML(n), nil
	case yaml.SequenceNode:
		items := make([]Node, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := fromYAML(c)
			if err != nil {
				return Node{}, err
			}
			items = append(items, child)
		}
		return Node{kind: KindSequence, seq: items}, nil
	case yaml.MappingNode:
		keys := make([]string, 0, len(n.Content)/2)
		entries := make(map[string]Node, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, err := fromYAML(n.Content[i])
			if err != nil {
				return Node{}, err
			}
			value, err := fromYAML(n.Content[i+1])
			if err != nil {
				return Node{}, err
			}
			key, ok := keyNode.AsString()
			if !ok {
				// Non-string keys are rare in seed files; coerce so the
				// mapping stays addressable.
				key = fmt.Sprintf("%v", keyNode.Interface())
			}
			if _, dup := entries[key]; !dup {
				keys = append(keys, key)
			}
			entries[key] = value
		}
		return Node{kind: KindMapping, keys: keys, entries: entries}, nil
	}
	return Node{}, fmt.Errorf("unsupported YAML node kind %d at line %d", n.Kind, n.Line)
}

func scalarFromYAML(n *yaml.Node) Node {
	switch n.Tag {
	case "!!null":
		return Node{}
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return Node{kind: KindBool, scalar: b}
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Node{kind: KindNumber, scalar: i}
		}
		// Out-of-range integers degrade to float.
		var f float64
		if err := n.Decode(&f); err == nil {
			return Node{kind: KindNumber, scalar: f}
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return Node{kind: KindNumber, scalar: f}
		}
	}
	return Node{kind: KindString, scalar: n.Value}
}
