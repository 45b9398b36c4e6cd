package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

// DefaultFeatureCount is the number of leading numeric columns in the iris
// flower data set.
const DefaultFeatureCount = 4

// ReadRows reads CSV rows from r, dropping the header row. Every row must
// have as many columns as the header.
func ReadRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(errors.ErrEmptyData, "missing header row")
		}
		return nil, errors.Wrap(err, "failed to read header row")
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
				return nil, errors.Wrapf(
					errors.NewDimensionError("ReadRows", reader.FieldsPerRecord, len(row), 1),
					"line %d", parseErr.Line)
			}
			return nil, errors.Wrap(err, "failed to read rows")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadFile opens path and calls ReadRows on it.
func ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()
	return ReadRows(f)
}

// ParseRecord converts a raw row into a Record. The first featureCount
// columns must parse as finite floats; the last column is the label and is
// kept as text. rowIndex is only used in error messages.
func ParseRecord(row []string, featureCount, rowIndex int) (Record, error) {
	if featureCount < 1 {
		return Record{}, errors.NewValidationError("featureCount", "must be at least 1", featureCount)
	}
	if len(row) < featureCount+1 {
		return Record{}, errors.NewDimensionError("ParseRecord", featureCount+1, len(row), 1)
	}

	features := make([]float64, featureCount)
	for col := 0; col < featureCount; col++ {
		raw := strings.TrimSpace(row[col])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Record{}, errors.NewMalformedInputError(rowIndex, col, row[col], err)
		}
		if err := errors.CheckScalar("ParseRecord", v); err != nil {
			return Record{}, errors.NewMalformedInputError(rowIndex, col, row[col], err)
		}
		features[col] = v
	}

	return Record{
		Features: features,
		Label:    strings.TrimSpace(row[len(row)-1]),
	}, nil
}

// ParseRows converts every row with ParseRecord.
func ParseRows(rows [][]string, featureCount int) (Dataset, error) {
	out := make(Dataset, 0, len(rows))
	for i, row := range rows {
		rec, err := ParseRecord(row, featureCount, i)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// LoadCSV reads and parses a whole CSV stream.
func LoadCSV(r io.Reader, featureCount int) (Dataset, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	return ParseRows(rows, featureCount)
}

// LoadFile reads and parses the CSV file at path.
func LoadFile(path string, featureCount int) (Dataset, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRows(rows, featureCount)
}
