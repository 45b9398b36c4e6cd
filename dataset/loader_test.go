package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

const irisSample = `sepal_length,sepal_width,petal_length,petal_width,species
5.1,3.5,1.4,0.2,setosa
4.9,3.0,1.4,0.2,setosa
7.0,3.2,4.7,1.4,versicolor
6.3,3.3,6.0,2.5,virginica
`

func TestLoadCSV(t *testing.T) {
	d, err := LoadCSV(strings.NewReader(irisSample), DefaultFeatureCount)
	require.NoError(t, err)
	require.Len(t, d, 4)

	assert.Equal(t, []float64{5.1, 3.5, 1.4, 0.2}, d[0].Features)
	assert.Equal(t, "setosa", d[0].Label)
	assert.Equal(t, "virginica", d[3].Label)
}

func TestLoadCSVKeepsNumericLookingLabelsAsText(t *testing.T) {
	input := "a,b,class\n1,2,0\n3,4,1\n"
	d, err := LoadCSV(strings.NewReader(input), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, d.Labels())
}

func TestLoadCSVMalformedFeature(t *testing.T) {
	input := "a,b,c,d,class\n1,2,3,4,x\n1,two,3,4,y\n"
	_, err := LoadCSV(strings.NewReader(input), DefaultFeatureCount)
	require.Error(t, err)

	var malformed *errors.MalformedInputError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 1, malformed.Row)
	assert.Equal(t, 1, malformed.Column)
	assert.Equal(t, "two", malformed.Value)
}

func TestLoadCSVRejectsNonFinite(t *testing.T) {
	input := "a,b,class\n1,NaN,x\n"
	_, err := LoadCSV(strings.NewReader(input), 2)

	var malformed *errors.MalformedInputError
	require.True(t, errors.As(err, &malformed))
	var numErr *errors.NumericalInstabilityError
	assert.True(t, errors.As(err, &numErr))
}

func TestReadRowsFieldCountMismatch(t *testing.T) {
	input := "a,b,class\n1,2,x\n1,2\n"
	_, err := ReadRows(strings.NewReader(input))

	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 3, dimErr.Expected)
	assert.Equal(t, 2, dimErr.Got)
}

func TestReadRowsEmptyInput(t *testing.T) {
	_, err := ReadRows(strings.NewReader(""))
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	rows, err := ReadRows(strings.NewReader("a,b,class\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name         string
		row          []string
		featureCount int
		want         Record
		wantErr      bool
	}{
		{
			name:         "label is the last column",
			row:          []string{"1", " 2.5", "ignored", "label"},
			featureCount: 2,
			want:         Record{Features: []float64{1, 2.5}, Label: "label"},
		},
		{
			name:         "too few columns",
			row:          []string{"1", "2"},
			featureCount: 2,
			wantErr:      true,
		},
		{
			name:         "zero feature count",
			row:          []string{"1", "a"},
			featureCount: 0,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(tt.row, tt.featureCount, 0)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iris.csv")
	require.NoError(t, os.WriteFile(path, []byte(irisSample), 0o600))

	d, err := LoadFile(path, DefaultFeatureCount)
	require.NoError(t, err)
	assert.Len(t, d, 4)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"), DefaultFeatureCount)
	assert.Error(t, err)
}
