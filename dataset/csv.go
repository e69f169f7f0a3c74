package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/khaeru/iamc-sdmx-demo/errors"
	"github.com/khaeru/iamc-sdmx-demo/structure"
)

// ideColumns are the identifying columns of the wide format, in their
// conventional order. Header matching is case-insensitive.
var ideColumns = []string{"model", "scenario", "region", "variable", "unit"}

// ReadCSV reads a wide IAMC CSV file into a dataset structured by dsd.
// Every column beyond the identifying five must be a YEAR column labelled
// with an integer year; any other column fails the read rather than being
// misread as data. Empty cells are skipped. Each VARIABLE label is
// resolved through the structure's code list.
func ReadCSV(r io.Reader, dsd *structure.DataStructureDefinition) (*DataSet, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.WrapMalformed(errors.ErrEmptyData, "DataSet", "ReadCSV", "read header")
	}
	if err != nil {
		return nil, errors.WrapMalformed(err, "DataSet", "ReadCSV", "read header")
	}

	ide, years, err := splitHeader(header)
	if err != nil {
		return nil, errors.WrapMalformed(err, "DataSet", "ReadCSV", "check header")
	}

	ds := &DataSet{Structure: dsd}

	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapMalformed(err, "DataSet", "ReadCSV", fmt.Sprintf("read row %d", row))
		}

		// Resolve the VARIABLE label by walking the code hierarchy; an
		// undefined code or one out of its hierarchy fails the read.
		label := record[ide["variable"]]
		code, err := dsd.Variables.Resolve(label)
		if err != nil {
			return nil, errors.Wrap(err, "DataSet", "ReadCSV", fmt.Sprintf("resolve variable on row %d", row))
		}

		key := SeriesKey{
			Values: map[string]string{
				DimModel:    record[ide["model"]],
				DimScenario: record[ide["scenario"]],
				DimRegion:   record[ide["region"]],
				DimVariable: code.Path(),
			},
			Attrib: map[string]string{
				AttrUnit: record[ide["unit"]],
			},
		}

		series := Series{Key: key}
		for _, yc := range years {
			cell := strings.TrimSpace(record[yc.col])
			if cell == "" {
				continue
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.WrapMalformed(
					fmt.Errorf("%w: %q at row %d, column %q", errors.ErrInvalidValue, cell, row, yc.label),
					"DataSet", "ReadCSV", "parse observation")
			}
			series.Observations = append(series.Observations, Observation{Dimension: yc.label, Value: value})
		}

		ds.Series = append(ds.Series, series)
	}

	return ds, nil
}

// ReadCSVFile reads the wide IAMC CSV file at path.
func ReadCSVFile(path string, dsd *structure.DataStructureDefinition) (*DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapInternal(err, "DataSet", "ReadCSVFile", "open data file")
	}
	defer f.Close()

	return ReadCSV(f, dsd)
}

// yearColumn pairs a column index with its YEAR label.
type yearColumn struct {
	col   int
	label string
}

// splitHeader locates the identifying columns and collects the remaining
// columns as YEAR columns in file order. A remaining column whose label is
// not an integer year is rejected.
func splitHeader(header []string) (ide map[string]int, years []yearColumn, err error) {
	ide = make(map[string]int, len(ideColumns))

	for col, name := range header {
		lower := strings.ToLower(strings.TrimSpace(name))
		if isIdeColumn(lower) {
			if _, dup := ide[lower]; dup {
				return nil, nil, fmt.Errorf("column %q appears twice", lower)
			}
			ide[lower] = col
			continue
		}
		label := strings.TrimSpace(name)
		if _, err := strconv.Atoi(label); err != nil {
			return nil, nil, fmt.Errorf("column %q is neither an identifying column nor a year", label)
		}
		years = append(years, yearColumn{col: col, label: label})
	}

	for _, name := range ideColumns {
		if _, ok := ide[name]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", errors.ErrMissingColumn, name)
		}
	}

	return ide, years, nil
}

func isIdeColumn(name string) bool {
	for _, c := range ideColumns {
		if c == name {
			return true
		}
	}
	return false
}

// WriteLongCSV writes the dataset in long form: a header row followed by
// one row per observation.
func (ds *DataSet) WriteLongCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"model", "scenario", "region", "variable", "unit", "year", "value"}); err != nil {
		return errors.WrapInternal(err, "DataSet", "WriteLongCSV", "write header")
	}

	for _, rec := range ds.Records() {
		row := []string{
			rec.Model,
			rec.Scenario,
			rec.Region,
			rec.Variable,
			rec.Unit,
			rec.Year,
			strconv.FormatFloat(rec.Value, 'g', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return errors.WrapInternal(err, "DataSet", "WriteLongCSV", "write row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.WrapInternal(err, "DataSet", "WriteLongCSV", "flush output")
	}
	return nil
}
