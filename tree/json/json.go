/*
Package json provides methods to serialize grown trees as JSON
documents and parse them back.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/grove-ml/grove/tree"
)

const (
	leafKind     = "leaf"
	decisionKind = "decision"
)

type jsonTree struct {
	Columns int              `json:"columns"`
	Classes []int            `json:"classes"`
	Root    *json.RawMessage `json:"root"`
}

type jsonNode struct {
	Kind      string           `json:"kind"`
	Class     *int             `json:"class,omitempty"`
	Feature   *int             `json:"feature,omitempty"`
	Threshold *float64         `json:"threshold,omitempty"`
	Left      *json.RawMessage `json:"left,omitempty"`
	Right     *json.RawMessage `json:"right,omitempty"`
}

/*
WriteTree takes a pointer to a tree.Tree and an io.Writer and
serializes the given tree as JSON onto the io.Writer.
A tree is serialized as a JSON object with the following fields:
  - "columns": the number of feature columns the tree was grown with
  - "classes": an array with the distinct class labels the tree can predict
  - "root": the root node of the tree, where a node is an object tagged
    by its "kind" field as either a "leaf" with a "class" or a
    "decision" with a "feature", a "threshold" and nested "left" and
    "right" nodes.

An error is returned if the tree is nil or cannot be serialized or
written onto the io.Writer.
*/
func WriteTree(w io.Writer, t *tree.Tree) error {
	if t == nil || t.Root == nil {
		return fmt.Errorf("cannot serialize a nil tree")
	}
	root, err := encodeNode(t.Root)
	if err != nil {
		return err
	}
	rawRoot := json.RawMessage(root)
	return json.NewEncoder(w).Encode(&jsonTree{Columns: t.Columns, Classes: t.Classes, Root: &rawRoot})
}

/*
ReadTree takes an io.Reader and parses its contents, expected to be a
tree serialized by WriteTree, into a new tree.Tree that is returned. An
error is returned if the JSON cannot be read from the io.Reader, a node
is missing the fields its kind requires, or a node has an unknown kind.
*/
func ReadTree(r io.Reader) (*tree.Tree, error) {
	jt := &jsonTree{}
	if err := json.NewDecoder(r).Decode(jt); err != nil {
		return nil, fmt.Errorf("parsing json tree: %v", err)
	}
	if jt.Root == nil {
		return nil, fmt.Errorf("parsing json tree: no root node available")
	}
	if jt.Columns < 0 {
		return nil, fmt.Errorf("parsing json tree: negative column count %d", jt.Columns)
	}
	root, err := decodeNode(*jt.Root)
	if err != nil {
		return nil, err
	}
	return tree.New(root, jt.Columns, jt.Classes), nil
}

func encodeNode(n tree.Node) ([]byte, error) {
	switch node := n.(type) {
	case *tree.Leaf:
		return json.Marshal(&jsonNode{Kind: leafKind, Class: &node.Class})
	case *tree.Decision:
		left, err := encodeNode(node.Left)
		if err != nil {
			return nil, err
		}
		right, err := encodeNode(node.Right)
		if err != nil {
			return nil, err
		}
		rawLeft := json.RawMessage(left)
		rawRight := json.RawMessage(right)
		return json.Marshal(&jsonNode{
			Kind:      decisionKind,
			Feature:   &node.Feature,
			Threshold: &node.Threshold,
			Left:      &rawLeft,
			Right:     &rawRight,
		})
	}
	return nil, fmt.Errorf("cannot serialize node of unknown type %T", n)
}

func decodeNode(data []byte) (tree.Node, error) {
	jn := &jsonNode{}
	if err := json.Unmarshal(data, jn); err != nil {
		return nil, err
	}
	switch jn.Kind {
	case leafKind:
		if jn.Class == nil {
			return nil, fmt.Errorf("unmarshalling leaf node: no class available")
		}
		return &tree.Leaf{Class: *jn.Class}, nil
	case decisionKind:
		if jn.Feature == nil || jn.Threshold == nil {
			return nil, fmt.Errorf("unmarshalling decision node: no feature or threshold available")
		}
		if jn.Left == nil || jn.Right == nil {
			return nil, fmt.Errorf("unmarshalling decision node: missing child node")
		}
		left, err := decodeNode(*jn.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeNode(*jn.Right)
		if err != nil {
			return nil, err
		}
		return &tree.Decision{Feature: *jn.Feature, Threshold: *jn.Threshold, Left: left, Right: right}, nil
	}
	return nil, fmt.Errorf("unmarshalling node: unknown kind %q", jn.Kind)
}
