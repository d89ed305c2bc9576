// Package tree defines the binary decision trees grown by grove and
// their traversal for prediction.
package tree

import (
	"fmt"
	"strings"

	"github.com/grove-ml/grove/dataset"
)

/*
Tree represents a grown binary decision tree. It is composed of the
root node of the tree, the number of feature columns of the matrix it
was grown from and the distinct class labels seen while growing it.

A grown tree is immutable: it is replaced wholesale when its inducer is
fitted again, never edited in place.
*/
type Tree struct {
	Root    Node
	Columns int
	Classes []int
}

// New takes the root node of a grown tree, the number of feature
// columns it was grown with and the distinct class labels it can
// predict, and returns a tree composed of them.
func New(root Node, columns int, classes []int) *Tree {
	return &Tree{Root: root, Columns: columns, Classes: classes}
}

/*
Predict takes a sample's feature values and returns the class predicted
for it by the tree, or an error if the prediction cannot be made. It
descends from the root, at each decision node comparing the row's value
for the tested feature against the node's threshold, until a leaf is
reached.
*/
func (t *Tree) Predict(row []float64) (int, error) {
	if t == nil || t.Root == nil {
		return 0, fmt.Errorf("nil tree cannot predict samples")
	}
	n := t.Root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Class, nil
		case *Decision:
			if node.Feature < 0 || node.Feature >= len(row) {
				return 0, fmt.Errorf("predicting sample: feature index %d out of range for %d-column row", node.Feature, len(row))
			}
			if row[node.Feature] <= node.Threshold {
				n = node.Left
			} else {
				n = node.Right
			}
		default:
			return 0, fmt.Errorf("predicting sample: unknown node type %T", n)
		}
	}
}

/*
Test takes a labeled dataset table and returns the prediction success
rate of the tree over it: the fraction of samples whose predicted class
equals their label. An error is returned if the table is empty, its
column count differs from the tree's, or a prediction fails.
*/
func (t *Tree) Test(tbl *dataset.Table) (float64, error) {
	if tbl.Rows() == 0 {
		return 0.0, fmt.Errorf("cannot test a tree against an empty dataset")
	}
	if tbl.Columns() != t.Columns {
		return 0.0, fmt.Errorf("testing tree: dataset has %d columns, tree was grown on %d", tbl.Columns(), t.Columns)
	}
	var hits float64
	for i := 0; i < tbl.Rows(); i++ {
		predicted, err := t.Predict(tbl.Row(i))
		if err != nil {
			return 0.0, err
		}
		if predicted == tbl.Label(i) {
			hits += 1.0
		}
	}
	return hits / float64(tbl.Rows()), nil
}

// Depth returns the number of edges on the longest path from the root
// of the tree to a leaf. A tree consisting of a single leaf has depth 0.
func (t *Tree) Depth() int {
	if t == nil || t.Root == nil {
		return 0
	}
	return nodeDepth(t.Root)
}

func nodeDepth(n Node) int {
	d, ok := n.(*Decision)
	if !ok {
		return 0
	}
	left := nodeDepth(d.Left)
	right := nodeDepth(d.Right)
	if left > right {
		return 1 + left
	}
	return 1 + right
}

func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return ""
	}
	return nodeString(t.Root)
}

func nodeString(n Node) string {
	switch node := n.(type) {
	case *Leaf:
		return fmt.Sprintf("(class %d)\n", node.Class)
	case *Decision:
		result := fmt.Sprintf("[feature %d <= %v]\n|\n", node.Feature, node.Threshold)
		children := []Node{node.Left, node.Right}
		for i, child := range children {
			for j, line := range strings.Split(nodeString(child), "\n") {
				if len(line) > 0 {
					if j == 0 {
						result = fmt.Sprintf("%s|__%s\n", result, line)
					} else if i == len(children)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
		return result
	}
	return ""
}
