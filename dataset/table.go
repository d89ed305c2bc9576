/*
Package dataset provides the in-memory tabular representation of
labeled numeric data that trees are grown from: a rectangular feature
matrix paired with an integer class-label vector.
*/
package dataset

import (
	"fmt"
	"sort"
)

/*
Table is an immutable collection of samples: a rectangular matrix of
float64 feature values and one non-negative class label per row. A
Table is never mutated after construction; subsetting operations
materialize new tables.
*/
type Table struct {
	features [][]float64
	labels   []int
	columns  int
}

/*
New takes a feature matrix and a label vector and returns a Table built
with copies of them, or an error if the matrix is not rectangular, the
number of rows differs from the number of labels, or a label is
negative. The column count of an empty matrix is 0.
*/
func New(features [][]float64, labels []int) (*Table, error) {
	if len(features) != len(labels) {
		return nil, fmt.Errorf("feature matrix has %d rows but label vector has %d values", len(features), len(labels))
	}
	var columns int
	if len(features) > 0 {
		columns = len(features[0])
	}
	rows := make([][]float64, len(features))
	for i, row := range features {
		if len(row) != columns {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", i, len(row), columns)
		}
		rows[i] = append([]float64(nil), row...)
	}
	rowLabels := make([]int, len(labels))
	for i, label := range labels {
		if label < 0 {
			return nil, fmt.Errorf("label for row %d is %d, labels must be non-negative class indices", i, label)
		}
		rowLabels[i] = label
	}
	return &Table{features: rows, labels: rowLabels, columns: columns}, nil
}

// Rows returns the number of samples in the table.
func (t *Table) Rows() int {
	return len(t.features)
}

// Columns returns the number of feature columns in the table.
func (t *Table) Columns() int {
	return t.columns
}

// Row returns the feature values of the sample at index i. The
// returned slice is owned by the table and must not be modified.
func (t *Table) Row(i int) []float64 {
	return t.features[i]
}

// Label returns the class label of the sample at index i.
func (t *Table) Label(i int) int {
	return t.labels[i]
}

// Features returns the feature matrix of the table. The returned
// slices are owned by the table and must not be modified.
func (t *Table) Features() [][]float64 {
	return t.features
}

// Labels returns the label vector of the table. The returned slice is
// owned by the table and must not be modified.
func (t *Table) Labels() []int {
	return t.labels
}

// Classes returns the distinct class labels present in the table in
// ascending order.
func (t *Table) Classes() []int {
	seen := make(map[int]bool)
	var classes []int
	for _, label := range t.labels {
		if !seen[label] {
			seen[label] = true
			classes = append(classes, label)
		}
	}
	sort.Ints(classes)
	return classes
}

// IsPure returns true if the table holds at least one sample and all
// its samples belong to the same class.
func (t *Table) IsPure() bool {
	if len(t.labels) == 0 {
		return false
	}
	for _, label := range t.labels[1:] {
		if label != t.labels[0] {
			return false
		}
	}
	return true
}

/*
MajorityClass returns the most frequent class label in the table,
computed as an explicit frequency count over the label domain. Ties are
resolved deterministically: the lowest class index wins. An empty table
has majority class 0.
*/
func (t *Table) MajorityClass() int {
	if len(t.labels) == 0 {
		return 0
	}
	counts := make(map[int]int)
	maxClass := 0
	for _, label := range t.labels {
		counts[label]++
		if label > maxClass {
			maxClass = label
		}
	}
	best, bestCount := 0, -1
	for class := 0; class <= maxClass; class++ {
		if counts[class] > bestCount {
			best, bestCount = class, counts[class]
		}
	}
	return best
}

/*
SplitOn partitions the table's samples on the given feature column and
threshold and returns two freshly materialized tables: one with the
rows whose value for the feature is less than or equal to the threshold
and one with the remaining rows. Either side may be empty.
*/
func (t *Table) SplitOn(feature int, threshold float64) (*Table, *Table) {
	var leftFeatures, rightFeatures [][]float64
	var leftLabels, rightLabels []int
	for i, row := range t.features {
		if row[feature] <= threshold {
			leftFeatures = append(leftFeatures, row)
			leftLabels = append(leftLabels, t.labels[i])
		} else {
			rightFeatures = append(rightFeatures, row)
			rightLabels = append(rightLabels, t.labels[i])
		}
	}
	left := &Table{features: leftFeatures, labels: leftLabels, columns: t.columns}
	right := &Table{features: rightFeatures, labels: rightLabels, columns: t.columns}
	return left, right
}

// DistinctValues returns the distinct values present in the given
// feature column in ascending order.
func (t *Table) DistinctValues(feature int) []float64 {
	seen := make(map[float64]bool)
	values := make([]float64, 0, len(t.features))
	for _, row := range t.features {
		if !seen[row[feature]] {
			seen[row[feature]] = true
			values = append(values, row[feature])
		}
	}
	sort.Float64s(values)
	return values
}
