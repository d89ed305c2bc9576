/*
Package mongodataset provides loading of dataset tables from a MongoDB
database, where every document of the samples collection holds one
sample with a property per schema column.
*/
package mongodataset

import (
	"context"
	"fmt"

	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/grove-ml/grove/dataset"
	"github.com/grove-ml/grove/schema"
)

const samplesCollectionName = "samples"

/*
OpenTable takes a context.Context, a MongoDB database session and a
schema and returns a dataset.Table with all the samples read from the
samples collection of the session's default database, or an error if
the collection cannot be read or a document does not satisfy the
schema.
*/
func OpenTable(ctx context.Context, session *mgo.Session, s *schema.Schema) (*dataset.Table, error) {
	iter := session.DB("").C(samplesCollectionName).Find(nil).Iter()
	var doc bson.M
	var features [][]float64
	var labels []int
	for iter.Next(&doc) {
		row := make([]float64, len(s.Features))
		for j, f := range s.Features {
			v, ok := doc[f]
			if !ok {
				iter.Close()
				return nil, fmt.Errorf("sample %d has no value for feature %q", len(features), f)
			}
			fv, err := floatValue(v)
			if err != nil {
				iter.Close()
				return nil, fmt.Errorf("sample %d: feature %q: %v", len(features), f, err)
			}
			row[j] = fv
		}
		v, ok := doc[s.Label]
		if !ok {
			iter.Close()
			return nil, fmt.Errorf("sample %d has no value for label %q", len(features), s.Label)
		}
		label, err := intValue(v)
		if err != nil {
			iter.Close()
			return nil, fmt.Errorf("sample %d: label %q: %v", len(features), s.Label, err)
		}
		features = append(features, row)
		labels = append(labels, label)
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading samples collection: %v", err)
	}
	return dataset.New(features, labels)
}

func floatValue(v interface{}) (float64, error) {
	switch value := v.(type) {
	case float64:
		return value, nil
	case float32:
		return float64(value), nil
	case int:
		return float64(value), nil
	case int64:
		return float64(value), nil
	}
	return 0, fmt.Errorf("value %v of type %T is not a real number", v, v)
}

func intValue(v interface{}) (int, error) {
	switch value := v.(type) {
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case float64:
		if value != float64(int(value)) {
			return 0, fmt.Errorf("value %v is not an integer", v)
		}
		return int(value), nil
	}
	return 0, fmt.Errorf("value %v of type %T is not an integer", v, v)
}
