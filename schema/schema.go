/*
Package schema provides parsing of dataset metadata from YAML
documents: the names of the feature columns of a dataset and the name
of its label column.
*/
package schema

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

/*
Schema describes the columns of a labeled dataset: the feature columns,
whose values are real numbers, in the order they appear in the feature
matrix, and the label column, whose values are non-negative integer
class indices.
*/
type Schema struct {
	Features []string `yaml:"features"`
	Label    string   `yaml:"label"`
}

/*
Read takes a slice of bytes with a schema in YAML and returns the
Schema parsed from it or an error. The YAML is expected to be an object
with a features property listing the feature column names and a label
property with the label column name. The label cannot appear among the
features and feature names cannot repeat.
*/
func Read(md []byte) (*Schema, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(md, s); err != nil {
		return nil, fmt.Errorf("parsing yml schema: %v", err)
	}
	if len(s.Features) == 0 {
		return nil, fmt.Errorf("schema declares no feature columns")
	}
	if s.Label == "" {
		return nil, fmt.Errorf("schema declares no label column")
	}
	seen := make(map[string]bool)
	for _, f := range s.Features {
		if f == s.Label {
			return nil, fmt.Errorf("label column %q also declared as a feature column", s.Label)
		}
		if seen[f] {
			return nil, fmt.Errorf("feature column %q declared more than once", f)
		}
		seen[f] = true
	}
	return s, nil
}

/*
ReadFromFile takes a filepath string, reads its contents and uses Read
to parse it and return a Schema or an error. If the file indicated by
the filepath cannot be opened for reading an error will be returned.
*/
func ReadFromFile(filepath string) (*Schema, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading schema yml file %s: %v", filepath, err)
	}
	s, err := Read(md)
	if err != nil {
		err = fmt.Errorf("parsing schema yml file %s: %v", filepath, err)
	}
	return s, err
}

// Columns returns the names of all columns of the schema: the feature
// columns in order followed by the label column.
func (s *Schema) Columns() []string {
	columns := make([]string, 0, len(s.Features)+1)
	columns = append(columns, s.Features...)
	return append(columns, s.Label)
}
