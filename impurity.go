package grove

import "math"

// logEpsilon is added inside the logarithm, and only there, so that
// class probabilities whose mass underflows to zero through floating
// rounding never produce a NaN term.
const logEpsilon = 1e-9

/*
entropy computes the Shannon entropy, in bits, of the class
distribution of the given labels. A sequence with a single represented
class, including a sequence of length 1, has entropy exactly 0.
*/
func entropy(labels []int) float64 {
	if len(labels) == 0 {
		return 0
	}
	counts := make(map[int]int)
	for _, label := range labels {
		counts[label]++
	}
	if len(counts) == 1 {
		return 0
	}
	var result float64
	total := float64(len(labels))
	for _, count := range counts {
		p := float64(count) / total
		result -= p * math.Log2(p+logEpsilon)
	}
	return result
}

/*
informationGain computes the reduction in entropy achieved by splitting
the parent labels into the left and right subsets: the parent entropy
minus the sample-count-weighted average of the child entropies. An
empty child has weight 0 and contributes nothing to the average.
*/
func informationGain(parent, left, right []int) float64 {
	total := float64(len(parent))
	weighted := float64(len(left))/total*entropy(left) + float64(len(right))/total*entropy(right)
	return entropy(parent) - weighted
}
