package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	mgo "gopkg.in/mgo.v2"

	"github.com/grove-ml/grove/dataset"
	"github.com/grove-ml/grove/dataset/csv"
	"github.com/grove-ml/grove/dataset/mongodataset"
	"github.com/grove-ml/grove/dataset/sqldataset"
	"github.com/grove-ml/grove/dataset/sqldataset/pgadapter"
	"github.com/grove-ml/grove/dataset/sqldataset/sqlite3adapter"
	"github.com/grove-ml/grove/schema"
)

/*
loadTable reads a labeled dataset table from the given input: STDIN as
CSV when empty, a PostgreSQL database for postgresql:// URLs, a MongoDB
database for mongodb:// URLs, an SQLite3 database for .db files and a
CSV file otherwise.
*/
func (rcc *rootCmdConfig) loadTable(ctx context.Context, input string, s *schema.Schema, maxDBConns int) (*dataset.Table, error) {
	if input == "" {
		rcc.Logf("Reading dataset from STDIN...")
		return csv.ReadTable(os.Stdin, s)
	}
	if strings.HasPrefix(input, "postgresql://") {
		rcc.Logf("Creating PostgreSQL adapter for url %s to read dataset...", input)
		adapter, err := pgadapter.New(input)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqldataset.OpenTable(ctx, adapter, s)
	}
	if strings.HasPrefix(input, "mongodb://") {
		rcc.Logf("Connecting to MongoDB at %s to read dataset...", input)
		session, err := mgo.Dial(input)
		if err != nil {
			return nil, fmt.Errorf("connecting to %s: %v", input, err)
		}
		defer session.Close()
		return mongodataset.OpenTable(ctx, session, s)
	}
	if strings.HasSuffix(input, ".db") {
		rcc.Logf("Creating SQLite3 adapter for file %s to read dataset...", input)
		adapter, err := sqlite3adapter.New(input, maxDBConns)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqldataset.OpenTable(ctx, adapter, s)
	}
	rcc.Logf("Opening %s to read dataset...", input)
	return csv.ReadTableFromFile(input, s)
}
