package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeKind tells what shape a Node has.
type NodeKind int

const (
	ScalarNode NodeKind = iota
	MappingNode
	SequenceNode
)

func (k NodeKind) String() string {
	switch k {
	case ScalarNode:
		return "scalar"
	case MappingNode:
		return "mapping"
	case SequenceNode:
		return "sequence"
	default:
		return "unknown"
	}
}

// ScalarTag is the resolved type of a scalar value.
type ScalarTag string

const (
	TagString ScalarTag = "str"
	TagInt    ScalarTag = "int"
	TagFloat  ScalarTag = "float"
	TagBool   ScalarTag = "bool"
	TagNull   ScalarTag = "null"
)

// Node is a parsed document tree: nested mappings, sequences and scalars.
// Mapping entries keep their document order.
type Node struct {
	Kind NodeKind

	// Scalar fields.
	Value string
	Tag   ScalarTag

	// Mapping fields.
	Entries []Entry

	// Sequence fields.
	Items []*Node

	Line   int
	Column int
}

// Entry is a single key/value pair of a mapping node.
type Entry struct {
	Key   string
	Value *Node
}

// Scalar builds a string scalar node. Mostly useful in tests.
func Scalar(v string) *Node {
	return &Node{Kind: ScalarNode, Value: v, Tag: TagString}
}

// Number builds a numeric scalar node.
func Number(v float64) *Node {
	if v == float64(int64(v)) {
		return &Node{Kind: ScalarNode, Value: strconv.FormatInt(int64(v), 10), Tag: TagInt}
	}
	return &Node{Kind: ScalarNode, Value: strconv.FormatFloat(v, 'g', -1, 64), Tag: TagFloat}
}

// Seq builds a sequence node.
func Seq(items ...*Node) *Node {
	return &Node{Kind: SequenceNode, Items: items}
}

// Map builds a mapping node from entries.
func Map(entries ...Entry) *Node {
	return &Node{Kind: MappingNode, Entries: entries}
}

// Get returns the value stored under key in a mapping node.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != MappingNode {
		return nil, false
	}
	for _, e := range n.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// IsNull reports whether the node is absent or an explicit null scalar.
func (n *Node) IsNull() bool {
	return n == nil || (n.Kind == ScalarNode && n.Tag == TagNull)
}

// Float returns the numeric value of a scalar node.
func (n *Node) Float() (float64, error) {
	if n == nil || n.Kind != ScalarNode {
		return 0, fmt.Errorf("expected a number, got %s", n.describe())
	}
	switch n.Tag {
	case TagInt, TagFloat:
	default:
		return 0, fmt.Errorf("expected a number, got %q", n.Value)
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(n.Value, "_", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", n.Value)
	}
	return f, nil
}

// Int returns the integer value of a scalar node.
func (n *Node) Int() (int, error) {
	if n == nil || n.Kind != ScalarNode || n.Tag != TagInt {
		return 0, fmt.Errorf("expected an integer, got %s", n.describe())
	}
	i, err := strconv.ParseInt(strings.ReplaceAll(n.Value, "_", ""), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q", n.Value)
	}
	return int(i), nil
}

// Text returns the textual value of any non-null scalar.
func (n *Node) Text() (string, error) {
	if n == nil || n.Kind != ScalarNode || n.Tag == TagNull {
		return "", fmt.Errorf("expected a string, got %s", n.describe())
	}
	return n.Value, nil
}

func (n *Node) describe() string {
	if n == nil {
		return "nothing"
	}
	if n.Kind == ScalarNode {
		if n.Tag == TagNull {
			return "null"
		}
		return fmt.Sprintf("%q", n.Value)
	}
	return "a " + n.Kind.String()
}
