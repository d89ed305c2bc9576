package grove

import (
	"math"

	"github.com/grove-ml/grove/dataset"
)

/*
split represents the partition of a table on a feature and threshold
into the subtable of rows whose feature value is less than or equal to
the threshold and the subtable of the remaining rows.
*/
type split struct {
	feature   int
	threshold float64
	left      *dataset.Table
	right     *dataset.Table
}

/*
bestSplit considers every feature column of the given table and, for
each column, every distinct value present in it as a threshold, and
returns the candidate split with the greatest information gain. The
comparison is strict, so among candidates with equal gain the first one
found wins, in feature-index then ascending-threshold order.

bestSplit returns nil when the table cannot be partitioned: when it has
no candidate splits at all, or when the winning candidate leaves one of
its sides empty, which happens when every feature is constant across
the table's rows.
*/
func bestSplit(tbl *dataset.Table) *split {
	var best *split
	bestGain := math.Inf(-1)
	parent := tbl.Labels()
	for feature := 0; feature < tbl.Columns(); feature++ {
		for _, threshold := range tbl.DistinctValues(feature) {
			left, right := tbl.SplitOn(feature, threshold)
			gain := informationGain(parent, left.Labels(), right.Labels())
			if gain > bestGain {
				bestGain = gain
				best = &split{feature: feature, threshold: threshold, left: left, right: right}
			}
		}
	}
	if best == nil || best.left.Rows() == 0 || best.right.Rows() == 0 {
		return nil
	}
	return best
}
