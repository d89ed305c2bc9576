/*
Package sqldataset provides loading of dataset tables from SQL
databases through an Adapter interface, with implementations for
SQLite3 and PostgreSQL in its subpackages.
*/
package sqldataset

import (
	"context"
	"fmt"

	"github.com/grove-ml/grove/dataset"
	"github.com/grove-ml/grove/schema"
)

/*
Adapter is an interface providing the methods needed to read a dataset
table from a database backend.
*/
type Adapter interface {
	// ColumnName takes a schema column name and returns the database
	// column name to query for it, or an error if the name cannot be
	// used on the backend.
	ColumnName(string) (string, error)
	// IterateOnSamples runs the given lambda function over every sample
	// row of the backend, passing it the sample's index, its values for
	// the given feature columns and its value for the given label
	// column. If the lambda function returns false the iteration stops.
	// An error is returned if the backend cannot be queried or the
	// lambda function returns an error.
	IterateOnSamples(ctx context.Context, featureColumns []string, labelColumn string, lambda func(i int, features []float64, label int) (bool, error)) error
	// Close closes the adapter, freeing any resources in use.
	Close() error
}

/*
OpenTable takes a context.Context, an Adapter and a schema and returns
a dataset.Table with all the samples read from the adapter's database
or an error if the database cannot be queried or its contents do not
satisfy the schema.
*/
func OpenTable(ctx context.Context, a Adapter, s *schema.Schema) (*dataset.Table, error) {
	featureColumns := make([]string, len(s.Features))
	for i, f := range s.Features {
		c, err := a.ColumnName(f)
		if err != nil {
			return nil, fmt.Errorf("opening dataset: %v", err)
		}
		featureColumns[i] = c
	}
	labelColumn, err := a.ColumnName(s.Label)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %v", err)
	}
	var features [][]float64
	var labels []int
	err = a.IterateOnSamples(ctx, featureColumns, labelColumn, func(_ int, sampleFeatures []float64, label int) (bool, error) {
		features = append(features, sampleFeatures)
		labels = append(labels, label)
		return true, ctx.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %v", err)
	}
	return dataset.New(features, labels)
}
