package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

// writeCSV は2クラスがはっきり分かれたCSVを書き出す
func writeCSV(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("sepal_length,sepal_width,petal_length,petal_width,species\n")
	for i := 0; i < n; i++ {
		d := float64(i%5) * 0.01
		if i%2 == 0 {
			fmt.Fprintf(&b, "%.2f,%.2f,%.2f,%.2f,setosa\n", 5.0+d, 3.4+d, 1.4+d, 0.2+d)
		} else {
			fmt.Fprintf(&b, "%.2f,%.2f,%.2f,%.2f,virginica\n", 6.6+d, 3.0+d, 5.6+d, 2.0+d)
		}
	}
	path := filepath.Join(t.TempDir(), "flowers.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func TestClassifyText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"classify", writeCSV(t, 60)}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "No. training sets: ")
	assert.Contains(t, out, "No. test sets: ")
	assert.Contains(t, out, "Predicted: ")
	assert.True(t, strings.HasSuffix(out, "Accuracy of test data: 100.0%\n"), out)
}

func TestClassifyTableWithPlot(t *testing.T) {
	plotPath := filepath.Join(t.TempDir(), "out.png")
	var stdout, stderr bytes.Buffer
	err := run([]string{
		"classify", writeCSV(t, 60),
		"-k", "5", "--scaling=minmax", "--format=table", "--plot", plotPath,
	}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "PRECISION")
	_, err = os.Stat(plotPath)
	assert.NoError(t, err)
}

func TestClassifyReadsEnvironment(t *testing.T) {
	t.Setenv("KNN_K", "0")

	var stdout, stderr bytes.Buffer
	err := run([]string{"classify", writeCSV(t, 30)}, &stdout, &stderr)

	var valErr *errors.ValidationError
	assert.True(t, errors.As(err, &valErr))
	assert.Empty(t, stdout.String())
}

func TestClassifyMalformedInputPrintsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "a,b,c,d,label\n1,2,3,4,x\n1,oops,3,4,y\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var stdout, stderr bytes.Buffer
	err := run([]string{"classify", path, "--train-fraction=0.5"}, &stdout, &stderr)

	var malformed *errors.MalformedInputError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 1, malformed.Row)
	assert.Empty(t, stdout.String())
}

func TestNormalize(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"normalize", "1", "2", "3"}, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "Min-max scaling for: [1.0, 2.0, 3.0] -> [0.0, 0.5, 1.0]")
}

func TestNormalizeConstantValues(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"normalize", "4", "4"}, &stdout, &stderr)
	assert.True(t, errors.Is(err, errors.ErrDivisionByZero))
	assert.Empty(t, stdout.String())
}

func TestUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Error(t, run([]string{"classify", "--no-such-flag"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}
