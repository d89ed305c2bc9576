package grove

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntropy(t *testing.T) {
	testCases := []struct {
		name     string
		labels   []int
		expected float64
	}{
		{"empty", nil, 0},
		{"single label", []int{3}, 0},
		{"single class", []int{1, 1, 1, 1}, 0},
		{"two balanced classes", []int{0, 1}, 1},
		{"two balanced classes repeated", []int{0, 0, 1, 1}, 1},
		{"four balanced classes", []int{0, 1, 2, 3}, 2},
		{"skewed classes", []int{0, 0, 0, 1}, -0.75*math.Log2(0.75) - 0.25*math.Log2(0.25)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, entropy(tc.labels), 1e-6)
		})
	}
}

func TestEntropyBounds(t *testing.T) {
	testCases := []struct {
		name    string
		labels  []int
		classes int
	}{
		{"two classes", []int{0, 0, 1}, 2},
		{"three classes", []int{0, 1, 1, 2, 2, 2}, 3},
		{"five classes", []int{0, 1, 2, 3, 4, 4, 4, 4}, 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := entropy(tc.labels)
			assert.GreaterOrEqual(t, e, 0.0)
			assert.LessOrEqual(t, e, math.Log2(float64(tc.classes))+1e-9)
			assert.False(t, math.IsNaN(e))
		})
	}
}

func TestInformationGainOfPerfectSplit(t *testing.T) {
	parent := []int{0, 0, 1, 1}
	gain := informationGain(parent, []int{0, 0}, []int{1, 1})
	assert.InDelta(t, 1.0, gain, 1e-6, "separating both classes should recover the whole parent entropy")
}

func TestInformationGainWithEmptyChild(t *testing.T) {
	parent := []int{0, 0, 1, 1}
	gain := informationGain(parent, parent, nil)
	assert.InDelta(t, 0.0, gain, 1e-6, "an empty child weighs 0, so the split gains nothing")
}

func TestInformationGainOfUninformativeSplit(t *testing.T) {
	parent := []int{0, 1, 0, 1}
	gain := informationGain(parent, []int{0, 1}, []int{0, 1})
	assert.InDelta(t, 0.0, gain, 1e-6)
}
