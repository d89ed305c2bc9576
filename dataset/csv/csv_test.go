package csv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grove-ml/grove/dataset"
	"github.com/grove-ml/grove/dataset/csv"
	"github.com/grove-ml/grove/schema"
)

func testSchema() *schema.Schema {
	return &schema.Schema{Features: []string{"a", "b"}, Label: "class"}
}

func TestReadTable(t *testing.T) {
	input := `a,b,class
1.5,2,0
3,4.25,1
`
	tbl, err := csv.ReadTable(strings.NewReader(input), testSchema())
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, 2, tbl.Columns())
	assert.Equal(t, []float64{1.5, 2.0}, tbl.Row(0))
	assert.Equal(t, []float64{3.0, 4.25}, tbl.Row(1))
	assert.Equal(t, []int{0, 1}, tbl.Labels())
}

func TestReadTableIgnoresExtraColumnsAndOrder(t *testing.T) {
	input := `id,class,b,a
x,1,2,1
y,0,4,3
`
	tbl, err := csv.ReadTable(strings.NewReader(input), testSchema())
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 2.0}, tbl.Row(0), "feature values follow the schema order, not the header order")
	assert.Equal(t, []int{1, 0}, tbl.Labels())
}

func TestReadTableErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"missing feature column", "a,class\n1,0\n"},
		{"missing label column", "a,b\n1,2\n"},
		{"feature value not a number", "a,b,class\nnope,2,0\n"},
		{"label not an integer", "a,b,class\n1,2,maybe\n"},
		{"negative label", "a,b,class\n1,2,-1\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csv.ReadTable(strings.NewReader(tc.input), testSchema())
			assert.Error(t, err)
		})
	}
}

func TestReadFeatureMatrixWithoutLabelColumn(t *testing.T) {
	input := `a,b
1,2
3,4
`
	features, err := csv.ReadFeatureMatrix(strings.NewReader(input), testSchema())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1.0, 2.0}, {3.0, 4.0}}, features)
}

func TestWriteTableRoundTrip(t *testing.T) {
	s := testSchema()
	tbl, err := dataset.New([][]float64{{1.5, 2.0}, {3.0, 4.25}}, []int{0, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, csv.WriteTable(&buf, s, tbl))
	assert.True(t, strings.HasPrefix(buf.String(), "a,b,class\n"))

	parsed, err := csv.ReadTable(&buf, s)
	require.NoError(t, err)
	assert.Equal(t, tbl.Features(), parsed.Features())
	assert.Equal(t, tbl.Labels(), parsed.Labels())
}

func TestWriteTableRejectsMismatchedSchema(t *testing.T) {
	tbl, err := dataset.New([][]float64{{1.0}}, []int{0})
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.Error(t, csv.WriteTable(&buf, testSchema(), tbl))
}
