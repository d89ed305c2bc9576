/*
Package grove implements a binary decision-tree classifier.

An Inducer grows a tree from a labeled numeric dataset by recursively
partitioning it on the (feature, threshold) split with the greatest
information gain, and then classifies new samples by traversing the
grown tree.
*/
package grove

import (
	"errors"
	"fmt"

	"github.com/grove-ml/grove/dataset"
	"github.com/grove-ml/grove/tree"
)

var (
	// ErrInvalidInput is returned when a feature matrix or label vector
	// does not satisfy the shape requirements of Fit or Predict.
	ErrInvalidInput = errors.New("grove: invalid input")

	// ErrNotFitted is returned by Predict when no tree has been grown yet.
	ErrNotFitted = errors.New("grove: classifier has not been fitted")
)

/*
Inducer grows a binary decision tree from a labeled dataset with Fit and
classifies feature vectors with Predict.

An Inducer owns at most one tree. A successful Fit replaces the whole
tree; it is never edited in place. An Inducer is not meant to be shared
between goroutines: callers that need that must synchronize externally
or use one Inducer per goroutine.
*/
type Inducer struct {
	maxDepth int
	tree     *tree.Tree
}

// Option configures an Inducer at construction time.
type Option func(*Inducer)

/*
WithMaxDepth limits the depth of grown trees to d edges from the root.
A depth of 0 produces a single leaf with the majority class. Negative
values leave the depth unbounded, which is also the default.
*/
func WithMaxDepth(d int) Option {
	return func(ind *Inducer) {
		ind.maxDepth = d
	}
}

// New returns an Inducer configured with the given options. By default
// the depth of grown trees is unbounded.
func New(opts ...Option) *Inducer {
	ind := &Inducer{maxDepth: -1}
	for _, opt := range opts {
		opt(ind)
	}
	return ind
}

/*
Fit takes a feature matrix and a label vector of the same length and
grows a decision tree predicting the labels from the features. The
matrix must be rectangular and non-empty, and labels must be
non-negative class indices; otherwise an error wrapping ErrInvalidInput
is returned and the previously grown tree, if any, is left untouched.

A matrix with zero columns can only be fitted when all its labels
belong to a single class, in which case the tree is a single leaf.
*/
func (ind *Inducer) Fit(features [][]float64, labels []int) error {
	tbl, err := dataset.New(features, labels)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if tbl.Rows() == 0 {
		return fmt.Errorf("%w: feature matrix has no rows", ErrInvalidInput)
	}
	classes := tbl.Classes()
	if tbl.Columns() == 0 && len(classes) > 1 {
		return fmt.Errorf("%w: feature matrix has no columns but labels have %d distinct classes", ErrInvalidInput, len(classes))
	}
	root := ind.build(tbl, 0)
	ind.tree = tree.New(root, tbl.Columns(), classes)
	return nil
}

/*
Predict takes a feature matrix and returns a vector with the class
predicted by the grown tree for each row, in input order. It returns an
error wrapping ErrNotFitted if Fit has not succeeded yet, and an error
wrapping ErrInvalidInput if a row's column count differs from the one
the tree was grown with.
*/
func (ind *Inducer) Predict(features [][]float64) ([]int, error) {
	if ind.tree == nil {
		return nil, ErrNotFitted
	}
	labels := make([]int, len(features))
	for i, row := range features {
		if len(row) != ind.tree.Columns {
			return nil, fmt.Errorf("%w: row %d has %d columns, tree was grown on %d", ErrInvalidInput, i, len(row), ind.tree.Columns)
		}
		label, err := ind.tree.Predict(row)
		if err != nil {
			return nil, err
		}
		labels[i] = label
	}
	return labels, nil
}

// Tree returns the tree grown by the last successful Fit, or nil if
// the inducer has not been fitted.
func (ind *Inducer) Tree() *tree.Tree {
	return ind.tree
}

/*
build develops the given table into a node at the given depth. It
returns a leaf when the table is pure, empty, at the configured depth
limit or unsplittable, and a decision node over the best split's two
subtables otherwise.
*/
func (ind *Inducer) build(tbl *dataset.Table, depth int) tree.Node {
	if tbl.IsPure() {
		return &tree.Leaf{Class: tbl.Label(0)}
	}
	if tbl.Rows() == 0 || (ind.maxDepth >= 0 && depth >= ind.maxDepth) {
		return &tree.Leaf{Class: tbl.MajorityClass()}
	}
	sp := bestSplit(tbl)
	if sp == nil {
		return &tree.Leaf{Class: tbl.MajorityClass()}
	}
	return &tree.Decision{
		Feature:   sp.feature,
		Threshold: sp.threshold,
		Left:      ind.build(sp.left, depth+1),
		Right:     ind.build(sp.right, depth+1),
	}
}
