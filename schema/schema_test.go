package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grove-ml/grove/schema"
)

func TestRead(t *testing.T) {
	s, err := schema.Read([]byte(`
features:
  - sepal_length
  - sepal_width
label: species
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"sepal_length", "sepal_width"}, s.Features)
	assert.Equal(t, "species", s.Label)
	assert.Equal(t, []string{"sepal_length", "sepal_width", "species"}, s.Columns())
}

func TestReadRejectsMalformedSchemas(t *testing.T) {
	testCases := []struct {
		name string
		yml  string
	}{
		{"not yaml", `{"features": [`},
		{"no features", "label: species\n"},
		{"no label", "features:\n  - sepal_length\n"},
		{"repeated feature", "features:\n  - a\n  - a\nlabel: species\n"},
		{"label among features", "features:\n  - a\n  - species\nlabel: species\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schema.Read([]byte(tc.yml))
			assert.Error(t, err)
		})
	}
}

func TestReadFromFile(t *testing.T) {
	_, err := schema.ReadFromFile("testdata/does-not-exist.yml")
	assert.Error(t, err)
}
