package dataset

import "math/rand"

/*
Split randomly partitions the samples of the given table into two
tables. Each sample is sent to the second table with the given
probability, expressed as a percentage between 0 and 100, and kept in
the first one otherwise. The randomizer decides the destination of each
sample, so a seeded randomizer makes the partition reproducible.
*/
func Split(t *Table, randomizer *rand.Rand, splitProbability int) (*Table, *Table) {
	var keptFeatures, splitFeatures [][]float64
	var keptLabels, splitLabels []int
	for i, row := range t.features {
		if 100*randomizer.Float32() <= float32(splitProbability) {
			splitFeatures = append(splitFeatures, row)
			splitLabels = append(splitLabels, t.labels[i])
		} else {
			keptFeatures = append(keptFeatures, row)
			keptLabels = append(keptLabels, t.labels[i])
		}
	}
	kept := &Table{features: keptFeatures, labels: keptLabels, columns: t.columns}
	split := &Table{features: splitFeatures, labels: splitLabels, columns: t.columns}
	return kept, split
}
