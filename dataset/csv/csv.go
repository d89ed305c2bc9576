/*
Package csv provides methods to read dataset tables from CSV streams
and write them back, against a schema describing their columns.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/grove-ml/grove/dataset"
	"github.com/grove-ml/grove/schema"
)

/*
ReadTable takes an io.Reader for a CSV stream and a schema and returns
a dataset.Table with the samples parsed from the reader or an error.

The header or first row of the CSV content is expected to contain every
feature column of the schema as well as its label column, in any order
and possibly among other columns, which are ignored. The rest of the
rows should consist of real numbers for the feature columns and
non-negative integers for the label column.
*/
func ReadTable(reader io.Reader, s *schema.Schema) (*dataset.Table, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	featureIndexes, err := columnIndexes(header, s.Features)
	if err != nil {
		return nil, err
	}
	labelIndexes, err := columnIndexes(header, []string{s.Label})
	if err != nil {
		return nil, err
	}
	labelIndex := labelIndexes[0]
	var features [][]float64
	var labels []int
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		values, err := parseFeatureValues(row, featureIndexes)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
		label, err := strconv.Atoi(row[labelIndex])
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: label %q is not an integer", l, row[labelIndex])
		}
		features = append(features, values)
		labels = append(labels, label)
	}
	return dataset.New(features, labels)
}

/*
ReadFeatureMatrix takes an io.Reader for a CSV stream and a schema and
returns the feature matrix parsed from the reader or an error. Only the
schema's feature columns are read: the label column may be absent, and
any other column is ignored.
*/
func ReadFeatureMatrix(reader io.Reader, s *schema.Schema) ([][]float64, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	featureIndexes, err := columnIndexes(header, s.Features)
	if err != nil {
		return nil, err
	}
	var features [][]float64
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		values, err := parseFeatureValues(row, featureIndexes)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
		features = append(features, values)
	}
	return features, nil
}

/*
ReadTableFromFile takes a filepath string and a schema, opens the file
to which the filepath points and uses ReadTable to return a
dataset.Table read from it or an error. It will return an error if the
given filepath cannot be opened for reading.
*/
func ReadTableFromFile(filepath string, s *schema.Schema) (*dataset.Table, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening dataset at %s: %v", filepath, err)
	}
	defer f.Close()
	t, err := ReadTable(f, s)
	if err != nil {
		err = fmt.Errorf("reading dataset at %s: %v", filepath, err)
	}
	return t, err
}

/*
WriteTable takes an io.Writer, a schema and a dataset.Table and writes
the table onto the io.Writer as CSV: a header with the schema's feature
columns followed by its label column, and then one row per sample. An
error is returned if the table's column count does not match the
schema or the writing fails.
*/
func WriteTable(w io.Writer, s *schema.Schema, t *dataset.Table) error {
	if t.Columns() != len(s.Features) {
		return fmt.Errorf("writing dataset: table has %d columns, schema declares %d features", t.Columns(), len(s.Features))
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(s.Columns()); err != nil {
		return fmt.Errorf("writing header: %v", err)
	}
	record := make([]string, len(s.Features)+1)
	for i := 0; i < t.Rows(); i++ {
		for j, v := range t.Row(i) {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		record[len(record)-1] = strconv.Itoa(t.Label(i))
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %v", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func columnIndexes(header []string, columns []string) ([]int, error) {
	indexes := make([]int, len(columns))
	for i, c := range columns {
		index := -1
		for j, h := range header {
			if h == c {
				index = j
				break
			}
		}
		if index == -1 {
			return nil, fmt.Errorf("reading header: no column %q available", c)
		}
		indexes[i] = index
	}
	return indexes, nil
}

func parseFeatureValues(row []string, featureIndexes []int) ([]float64, error) {
	values := make([]float64, len(featureIndexes))
	for j, index := range featureIndexes {
		if index >= len(row) {
			return nil, fmt.Errorf("row has %d columns, expected at least %d", len(row), index+1)
		}
		v, err := strconv.ParseFloat(row[index], 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a real number", row[index])
		}
		values[j] = v
	}
	return values, nil
}
