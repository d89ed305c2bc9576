package grove_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grove-ml/grove"
	"github.com/grove-ml/grove/tree"
)

func TestFitGrowsThresholdSplit(t *testing.T) {
	ind := grove.New()
	err := ind.Fit([][]float64{{1.0}, {2.0}, {3.0}, {4.0}}, []int{0, 0, 1, 1})
	require.NoError(t, err)

	root, ok := ind.Tree().Root.(*tree.Decision)
	require.True(t, ok, "root should be a decision node")
	assert.Equal(t, 0, root.Feature)
	assert.Equal(t, 2.0, root.Threshold)

	left, ok := root.Left.(*tree.Leaf)
	require.True(t, ok, "left child should be a leaf")
	assert.Equal(t, 0, left.Class)
	right, ok := root.Right.(*tree.Leaf)
	require.True(t, ok, "right child should be a leaf")
	assert.Equal(t, 1, right.Class)

	labels, err := ind.Predict([][]float64{{1.5}, {3.5}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, labels)
}

func TestFitWithMaxDepthZeroYieldsMajorityLeaf(t *testing.T) {
	ind := grove.New(grove.WithMaxDepth(0))
	err := ind.Fit([][]float64{{1.0}, {2.0}, {3.0}, {4.0}}, []int{0, 0, 1, 1})
	require.NoError(t, err)

	leaf, ok := ind.Tree().Root.(*tree.Leaf)
	require.True(t, ok, "root should be a leaf")
	assert.Equal(t, 0, leaf.Class, "tie between classes 0 and 1 should resolve to the lowest index")

	labels, err := ind.Predict([][]float64{{10.0}, {-3.0}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, labels)
}

func TestFitPureDatasetYieldsSingleLeaf(t *testing.T) {
	ind := grove.New()
	err := ind.Fit([][]float64{{1.0, 5.0}, {2.0, 6.0}, {3.0, 7.0}}, []int{7, 7, 7})
	require.NoError(t, err)

	leaf, ok := ind.Tree().Root.(*tree.Leaf)
	require.True(t, ok, "root should be a leaf")
	assert.Equal(t, 7, leaf.Class)
	assert.Equal(t, 0, ind.Tree().Depth())

	labels, err := ind.Predict([][]float64{{1.0, 5.0}, {100.0, -100.0}})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7}, labels)
}

func TestFitUnsplittableDatasetYieldsMajorityLeaf(t *testing.T) {
	ind := grove.New()
	err := ind.Fit([][]float64{{1.0, 2.0}, {1.0, 2.0}, {1.0, 2.0}}, []int{0, 1, 0})
	require.NoError(t, err)

	leaf, ok := ind.Tree().Root.(*tree.Leaf)
	require.True(t, ok, "identical rows cannot be partitioned, root should be a leaf")
	assert.Equal(t, 0, leaf.Class)
}

func TestFitRejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		features [][]float64
		labels   []int
	}{
		{"mismatched rows and labels", [][]float64{{1.0}, {2.0}}, []int{0}},
		{"no rows", [][]float64{}, []int{}},
		{"ragged matrix", [][]float64{{1.0, 2.0}, {3.0}}, []int{0, 1}},
		{"negative label", [][]float64{{1.0}, {2.0}}, []int{0, -1}},
		{"no columns with two classes", [][]float64{{}, {}}, []int{0, 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ind := grove.New()
			err := ind.Fit(tc.features, tc.labels)
			require.ErrorIs(t, err, grove.ErrInvalidInput)
			assert.Nil(t, ind.Tree(), "a failed fit should not leave a tree behind")
		})
	}
}

func TestFitAcceptsZeroColumnsWithSingleClass(t *testing.T) {
	ind := grove.New()
	err := ind.Fit([][]float64{{}, {}}, []int{1, 1})
	require.NoError(t, err)

	leaf, ok := ind.Tree().Root.(*tree.Leaf)
	require.True(t, ok, "root should be a leaf")
	assert.Equal(t, 1, leaf.Class)

	labels, err := ind.Predict([][]float64{{}})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, labels)
}

func TestPredictBeforeFit(t *testing.T) {
	ind := grove.New()
	_, err := ind.Predict([][]float64{{1.0}})
	require.ErrorIs(t, err, grove.ErrNotFitted)
}

func TestPredictRejectsMismatchedColumns(t *testing.T) {
	ind := grove.New()
	err := ind.Fit([][]float64{{1.0, 2.0}, {3.0, 4.0}}, []int{0, 1})
	require.NoError(t, err)

	_, err = ind.Predict([][]float64{{1.0}})
	require.ErrorIs(t, err, grove.ErrInvalidInput)
}

func TestMaxDepthBoundsEveryPath(t *testing.T) {
	features := make([][]float64, 16)
	labels := make([]int, 16)
	for i := range features {
		features[i] = []float64{float64(i)}
		labels[i] = i % 2
	}
	for _, maxDepth := range []int{1, 2, 3} {
		ind := grove.New(grove.WithMaxDepth(maxDepth))
		require.NoError(t, ind.Fit(features, labels))
		assert.LessOrEqual(t, ind.Tree().Depth(), maxDepth)
	}
}

func TestFitIsDeterministic(t *testing.T) {
	features := [][]float64{
		{5.1, 3.5}, {4.9, 3.0}, {6.2, 2.9}, {5.9, 3.0},
		{5.5, 2.3}, {6.5, 2.8}, {4.6, 3.1}, {5.0, 3.6},
	}
	labels := []int{0, 0, 1, 1, 1, 1, 0, 0}
	probe := [][]float64{{5.0, 3.2}, {6.0, 2.9}, {5.4, 3.0}, {4.8, 3.4}}

	first := grove.New()
	require.NoError(t, first.Fit(features, labels))
	firstLabels, err := first.Predict(probe)
	require.NoError(t, err)

	second := grove.New()
	require.NoError(t, second.Fit(features, labels))
	secondLabels, err := second.Predict(probe)
	require.NoError(t, err)

	assert.Equal(t, firstLabels, secondLabels)
}

func TestRefitReplacesTree(t *testing.T) {
	ind := grove.New()
	require.NoError(t, ind.Fit([][]float64{{0.0}, {1.0}}, []int{0, 1}))
	require.NoError(t, ind.Fit([][]float64{{0.0}, {1.0}}, []int{1, 0}))

	labels, err := ind.Predict([][]float64{{0.0}, {1.0}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, labels)
}

func TestPredictedLabelsBelongToFittedClasses(t *testing.T) {
	ind := grove.New()
	require.NoError(t, ind.Fit([][]float64{{1.0}, {2.0}, {3.0}, {4.0}}, []int{2, 2, 5, 5}))

	probe := [][]float64{{0.0}, {1.7}, {2.5}, {3.3}, {9.9}}
	labels, err := ind.Predict(probe)
	require.NoError(t, err)
	require.Len(t, labels, len(probe))
	for _, label := range labels {
		assert.Contains(t, []int{2, 5}, label)
	}
}
