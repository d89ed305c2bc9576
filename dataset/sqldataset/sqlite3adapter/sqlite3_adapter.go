/*
Package sqlite3adapter provides an implementation of the Adapter
interface in the sqldataset package that works over an SQLite3
database file.
*/
package sqlite3adapter

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/grove-ml/grove/dataset/sqldataset"
)

// SampleTableName is the name of the table samples are read from.
const SampleTableName = "samples"

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and a limit to the number
of open connections (0 meaning no limit) and returns an Adapter that
works on the file's database or an error if it fails to open as an
sqlite3 database.
*/
func New(path string, maxConns int) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &adapter{db}, nil
}

func (a *adapter) ColumnName(columnName string) (string, error) {
	if columnName == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as a column name`, columnName)
	}
	if strings.ContainsAny(columnName, `"`) {
		return "", fmt.Errorf(`column name '%s' contains invalid character '"'`, columnName)
	}
	return columnName, nil
}

func (a *adapter) IterateOnSamples(ctx context.Context, featureColumns []string, labelColumn string, lambda func(int, []float64, int) (bool, error)) error {
	rows, err := a.db.QueryContext(ctx, selectSamplesQuery(featureColumns, labelColumn))
	if err != nil {
		return fmt.Errorf("querying samples: %v", err)
	}
	defer rows.Close()
	values := make([]float64, len(featureColumns))
	var label int
	dest := make([]interface{}, 0, len(featureColumns)+1)
	for j := range values {
		dest = append(dest, &values[j])
	}
	dest = append(dest, &label)
	for i := 0; rows.Next(); i++ {
		if err = rows.Scan(dest...); err != nil {
			return fmt.Errorf("scanning sample %d: %v", i, err)
		}
		ok, err := lambda(i, append([]float64(nil), values...), label)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return rows.Err()
}

func (a *adapter) Close() error {
	return a.db.Close()
}

func selectSamplesQuery(featureColumns []string, labelColumn string) string {
	var b bytes.Buffer
	b.WriteString("SELECT ")
	for _, c := range featureColumns {
		fmt.Fprintf(&b, `"%s", `, c)
	}
	fmt.Fprintf(&b, `"%s" FROM %s`, labelColumn, SampleTableName)
	return b.String()
}
